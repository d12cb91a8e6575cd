package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	mdwlog "github.com/msto63/termio/foundation/core/log"
	"github.com/msto63/termio/internal/console"
	"github.com/msto63/termio/internal/tui/prompt"
	"github.com/msto63/termio/pkg/core/config"
	"github.com/msto63/termio/pkg/core/logging"
)

var (
	cfgFile        string
	verbose        bool
	uiMode         string
	locale         string
	legacyMessages bool
)

var rootCmd = &cobra.Command{
	Use:   "termio",
	Short: "termio - validated terminal input",
	Long: `termio reads typed values from the terminal and asks again until the
input is valid: integers, decimals, bounded numbers, ISO dates,
enumerated and pattern-matched text.

Commands:
  employee  - demo: read an employee record
  read      - read a single value of a given kind
  version   - show version information`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/termio.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logs on stderr")
	rootCmd.PersistentFlags().StringVar(&uiMode, "ui", "", "input mode: plain, tui or auto (default from config)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "message locale: "+fmt.Sprint(console.Locales()))
	rootCmd.PersistentFlags().BoolVar(&legacyMessages, "legacy-messages", false, "use the legacy rejection texts")
}

// session bundles what a command needs to talk to the terminal
type session struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	reader *console.Reader
	closer io.Closer
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	if uiMode != "" {
		cfg.Console.UI = uiMode
	}
	if locale != "" {
		cfg.Console.Locale = locale
	}
	if legacyMessages {
		cfg.Console.LegacyMessages = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.NewLogger(logging.FromConfig("termio", cfg.Logging, verbose))
	if err != nil {
		return nil, err
	}

	catalog := cfg.Console.Locale
	if cfg.Console.LegacyMessages {
		catalog = console.LocaleLegacy
	}
	messages, err := console.NewMessages(catalog)
	if err != nil {
		closer.Close()
		return nil, mdwerror.Wrap(err, "unknown locale").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.openSession").
			WithDetail("locale", catalog)
	}

	src, mode := newSource(cmd, cfg.Console.UI)
	logger.Debug("session started", mdwlog.Fields{
		"config":  cfg.Path,
		"ui":      mode,
		"locale":  messages.Locale(),
		"command": cmd.Name(),
	})

	return &session{
		cfg:    cfg,
		logger: logger,
		reader: console.NewReader(src, console.WithLogger(logger), console.WithMessages(messages)),
		closer: closer,
	}, nil
}

// newSource picks the line source for mode and reports the mode used
func newSource(cmd *cobra.Command, mode string) (console.LineSource, string) {
	if mode == config.UIAuto {
		mode = config.UIPlain
		if prompt.IsInteractive() {
			mode = config.UITUI
		}
	}

	if mode == config.UITUI {
		return prompt.NewSource(cmd.OutOrStdout(), prompt.WithInput(cmd.InOrStdin())), mode
	}
	return console.NewStdSource(cmd.InOrStdin(), cmd.OutOrStdout()), mode
}

// finish logs a fatal error and releases the session
func (s *session) finish(err error) error {
	if err != nil {
		s.logger.LogError(err, "command failed")
	}
	s.closer.Close()
	return err
}
