// Package log holds the process-wide logger.
package log

import (
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
)

// Logger is shared by every component; take a Named child for each one.
var Logger logSDK.Logger

func init() {
	var err error
	if Logger, err = logSDK.NewConsoleWithName("quran-wbw", logSDK.LevelInfo); err != nil {
		logSDK.Shared.Panic("new logger", zap.Error(err))
	}
}

// SetLevel changes the level of Logger, e.g. "debug", "info", "error".
func SetLevel(level string) error {
	return Logger.ChangeLevel(logSDK.Level(level))
}
