package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bookmgr/internal/api"
	"github.com/blackwell-systems/bookmgr/internal/config"
	"github.com/blackwell-systems/bookmgr/internal/locale"
	"github.com/blackwell-systems/bookmgr/internal/logging"
	"github.com/blackwell-systems/bookmgr/internal/tui"
	"github.com/blackwell-systems/bookmgr/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg      *config.Config
	client   *api.Client
	logger   = zap.NewNop()
	loc      *locale.Localizer
	closeLog = func() error { return nil }

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
	flagAPIURL        string
	flagLang          string
	flagLogLevel      string
	flagRoute         string
)

var rootCmd = &cobra.Command{
	Use:   "bookmgr",
	Short: "Manage a book catalog served by a REST API",
	Long: `bookmgr lists, registers, reviews and deletes books held by a remote
books API.

Run 'bookmgr' with no arguments to open the interactive catalog, or use the
subcommands for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runUI()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookmgr/config.yml)")
	pf.StringVar(&flagAPIURL, "api-url", "", "Books API base URL (overrides api.base_url)")
	pf.StringVar(&flagLang, "lang", "", "UI language, e.g. en or pt-BR (overrides ui.language)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")

	rootCmd.Flags().StringVar(&flagRoute, "route", "/", "Route to open, e.g. / or /review?id=5")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		applyFlags(cmd, cfg)

		// config show/init must work on a broken config so it can be fixed.
		if !isConfigCmd(cmd) {
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
		}

		l, closer, err := logging.New(cfg.Log)
		if err != nil {
			warn("Logging disabled: %v", err)
		} else {
			logger, closeLog = l, closer
		}

		client = api.New(cfg.API.BaseURL,
			api.WithTimeout(cfg.API.Timeout),
			api.WithLogger(logger),
		)

		loc, err = locale.New(cfg.UI.Language)
		if err != nil {
			return fmt.Errorf("loading messages: %w", err)
		}
		logger.Debug("started",
			zap.String("command", cmd.CommandPath()),
			zap.String("api", client.BaseURL()),
			zap.String("lang", loc.Language()))
		return nil
	}

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newReviewCmd(),
		newDeleteCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// applyFlags lets explicitly set flags override the loaded config.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		c.API.BaseURL = flagAPIURL
	}
	if flags.Changed("lang") {
		c.UI.Language = flagLang
	}
	if flags.Changed("log-level") {
		c.Log.Level = flagLogLevel
	}
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
