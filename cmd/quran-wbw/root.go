package main

import (
	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"quran-wbw/internal/api"
	"quran-wbw/internal/cache"
	"quran-wbw/internal/log"
	"quran-wbw/internal/settings"
	"quran-wbw/internal/ui"
	"quran-wbw/internal/verses"
)

var rootCMD = &cobra.Command{
	Use:   "quran-wbw",
	Short: "Fetch Quran verses with translations and word-by-word glosses",
	Long: `Fetch Quran verses with English and Urdu translations and word-by-word
glosses from quran.com, show them and copy them to the clipboard.

Enter a starting verse such as 2:29 and a verse count; ranges may cross
chapter boundaries.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().String("log-level", "info", "`debug/info/warn/error`")
	rootCMD.PersistentFlags().String("settings", "", "settings file path (default: user config dir)")
	rootCMD.PersistentFlags().String("base-url", "", "content API base URL")
	rootCMD.PersistentFlags().Int("cache-ttl", -1, "seconds to reuse API responses, 0 disables (default: from settings)")
}

// app is everything the commands share once flags and settings are loaded.
type app struct {
	settingsPath string
	settings     settings.Settings
	service      *verses.Service
}

var shared app

func initialize(cmd *cobra.Command) error {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	if gconfig.Shared.GetBool("debug") {
		gconfig.Shared.Set("log-level", "debug")
	}
	lvl := gconfig.Shared.GetString("log-level")
	if err := log.SetLevel(lvl); err != nil {
		return errors.Wrapf(err, "change log level to %q", lvl)
	}

	path := gconfig.Shared.GetString("settings")
	if path == "" {
		var err error
		if path, err = settings.DefaultPath(); err != nil {
			return err
		}
	}
	st, err := settings.Load(path)
	if err != nil {
		return errors.Wrap(err, "load settings")
	}
	if u := gconfig.Shared.GetString("base-url"); u != "" {
		st.BaseURL = u
	}
	if ttl := gconfig.Shared.GetInt("cache-ttl"); ttl >= 0 {
		st.CacheTTLSeconds = ttl
	}

	client := api.NewClient(
		api.WithBaseURL(st.BaseURL),
		api.WithTimeout(st.Timeout()),
	)
	if st.CacheTTL() > 0 {
		client.SetCache(cache.NewCache(st.CacheTTL()))
	}

	shared = app{
		settingsPath: path,
		settings:     st,
		service:      verses.NewService(client),
	}
	log.Logger.Debug("initialized",
		zap.String("settings", path),
		zap.String("base_url", st.BaseURL),
		zap.Int("cache_ttl", st.CacheTTLSeconds))
	return nil
}

func layoutFor(st settings.Settings) verses.Layout {
	layout := verses.DefaultLayout()
	layout.ShowWords = !st.HideWords
	return layout
}

func runTUI() error {
	// log lines would draw over the alternate screen
	if !gconfig.Shared.GetBool("debug") {
		if err := log.SetLevel("error"); err != nil {
			return errors.Wrap(err, "quiet logger")
		}
	}

	model := ui.NewModel(ui.Config{
		Fetcher: shared.service,
		Layout:  layoutFor(shared.settings),
		Theme:   shared.settings.Theme,
		SaveTheme: func(key string) error {
			shared.settings.Theme = key
			return settings.Save(shared.settingsPath, shared.settings)
		},
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return errors.WithStack(err)
}
