package main

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"quran-wbw/internal/prompt"
)

var promptCMD = &cobra.Command{
	Use:   "prompt",
	Short: "Plain line-by-line prompt instead of the full-screen UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &prompt.Prompt{
			In:      os.Stdin,
			Out:     os.Stdout,
			Fetcher: shared.service,
			Copy:    clipboard.WriteAll,
			Layout:  layoutFor(shared.settings),
		}
		return p.Run(cmd.Context())
	},
}

func init() {
	rootCMD.AddCommand(promptCMD)
}
