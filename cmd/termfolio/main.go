package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/renato0307/termfolio/internal/app"
	"github.com/renato0307/termfolio/internal/clipboard"
	"github.com/renato0307/termfolio/internal/config"
	"github.com/renato0307/termfolio/internal/device"
	"github.com/renato0307/termfolio/internal/logging"
	"github.com/renato0307/termfolio/internal/notify"
	"github.com/renato0307/termfolio/internal/opener"
	"github.com/renato0307/termfolio/internal/types"
	"github.com/renato0307/termfolio/internal/ui"
)

type options struct {
	theme         string
	profilePath   string
	envFile       string
	logFile       string
	logLevel      string
	logFormat     string
	userAgent     string
	desktopNotify bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "termfolio",
		Short:        "A personal portfolio in your terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(logging.Config{
				FilePath:   opts.logFile,
				Level:      logging.ParseLevel(opts.logLevel),
				Format:     logging.ParseFormat(opts.logFormat),
				MaxSizeMB:  10,
				MaxBackups: 3,
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Shutdown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.theme, "theme", "charm", "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	flags.StringVar(&opts.profilePath, "profile", "", "Profile YAML file (default: built-in profile)")
	flags.StringVar(&opts.envFile, "env-file", "", "File with "+config.EnvEmail+"-style overrides (default: .env if present)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (disabled when empty)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	flags.StringVar(&opts.userAgent, "user-agent", "", "User agent used to detect a mobile device (env "+config.EnvUserAgent+")")
	flags.BoolVar(&opts.desktopNotify, "desktop-notify", false, "Mirror notifications to the desktop")

	root.AddCommand(newCopyCmd(opts), newOpenCmd(opts), newThemesCmd())
	return root
}

func runTUI(opts *options) error {
	// The renderer and the OSC 52 fallback share one serialised writer.
	tty := clipboard.NewTerminal(os.Stdout)

	appCtx, err := buildAppContext(opts, tty)
	if err != nil {
		return err
	}

	var appOpts []app.Option
	if opts.desktopNotify {
		appOpts = append(appOpts, app.WithNotifier(notify.NewDesktop("termfolio")))
	}

	p := tea.NewProgram(
		app.NewModel(appCtx, appOpts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(tty),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// buildAppContext loads configuration and wires the platform ports. OSC 52
// sequences for the clipboard fallback are written to term.
func buildAppContext(opts *options, term io.Writer) (*types.AppContext, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return nil, err
	}

	var profile config.Profile
	var err error
	logging.Time("load profile", func() {
		profile, err = loadProfile(opts.profilePath)
	})
	if err != nil {
		return nil, err
	}
	profile, err = profile.WithOverrides(os.LookupEnv)
	if err != nil {
		return nil, err
	}

	userAgent := opts.userAgent
	if userAgent == "" {
		userAgent = os.Getenv(config.EnvUserAgent)
	}
	dev := device.Detect(userAgent, os.Getenv)
	termux := os.Getenv("TERMUX_VERSION") != ""

	clip := clipboard.New(
		clipboard.NewSystem(),
		clipboard.NewOSC52(term, os.Getenv),
	)

	urlOpener := opener.New(termux)
	if err := urlOpener.CheckAvailable(); err != nil {
		// Links and mail fail with an error toast; copying still works.
		logging.Warn("URL opener unavailable", "error", err)
	}

	logging.Info("Starting termfolio",
		"theme", opts.theme,
		"profile", opts.profilePath,
		"mobile", dev.IsMobile(),
	)

	return types.NewAppContext(ui.GetTheme(opts.theme), profile, clip, dev, urlOpener), nil
}

func loadProfile(path string) (config.Profile, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
