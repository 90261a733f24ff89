package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/soyeahso/playground/internal/config"
	"github.com/soyeahso/playground/internal/identity"
	"github.com/soyeahso/playground/internal/logging"
	"github.com/soyeahso/playground/internal/notify"
	"github.com/soyeahso/playground/internal/playground"
	"github.com/soyeahso/playground/internal/routes"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	logLevel     string
	endpointFlag string
	outputFormat string

	// loaded in PersistentPreRunE
	paths    config.Paths
	cfg      config.Config
	log      *logging.Logger
	notifier *notify.Dispatcher
	ident    identity.Identity
	client   *playground.Client

	// set by the config subtree, which runs without a loadable file
	loadErr error
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Command-line client for an agent playground",
		Long:  "playground lists agents, checks service status and manages chat sessions on a remote agent playground.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.ErrOrStderr())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.playground/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level ("+strings.Join(logging.ValidLevels, ", ")+")")
	cmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "playground base URL (overrides config)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newAgentsCmd())
	cmd.AddCommand(newSessionsCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newWhoamiCmd())

	return cmd
}

// setup loads config, builds the logger and resolves identity, then wires
// the playground client.
func setup(stderr io.Writer) error {
	if err := loadConfig(); err != nil {
		return err
	}
	for _, issue := range config.Validate(&cfg) {
		log.Warn().Str("path", issue.Path).Msg(issue.Message)
	}

	notifier = newNotifier(cfg.Notify.Mode, stderr)

	var err error
	ident, err = identity.Resolve(cfg.Identity, paths.UserID)
	if err != nil {
		log.Warn().Err(err).Msg("continuing without user id")
	}
	log.Debug().Str("source", string(ident.Source)).Bool("present", ident.Present()).Msg("identity resolved")

	client = playground.New(
		routes.New(cfg.Routes.Prefix),
		log,
		playground.WithUserID(ident.UserID),
		playground.WithNotifier(notifier),
	)
	return nil
}

// loadConfig resolves paths, reads the config file and applies flag
// overrides. The logger is built even when the file fails to load.
func loadConfig() error {
	var err error
	paths, err = config.ResolvePaths()
	if err != nil {
		return err
	}
	if cfgFile != "" {
		paths.Config = cfgFile
	}

	cfg, err = config.Load(paths.Config)
	if err != nil {
		cfg = config.Defaults()
	}
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	log = logging.NewStyled(nil, cfg.Logging.Level, cfg.Logging.ConsoleStyle)
	return err
}

func newNotifier(mode string, stderr io.Writer) *notify.Dispatcher {
	d := notify.NewDispatcher(log)
	switch mode {
	case "silent":
	case "log":
		d.On("log", notify.LogSink(log.Sub("notify")))
	default:
		d.On("console", notify.WriterSink(stderr))
	}
	return d
}

// commandContext is cancelled on SIGINT/SIGTERM and, when configured, after
// http.timeoutSeconds.
func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	if cfg.HTTP.TimeoutSeconds <= 0 {
		return ctx, stop
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	return ctx, func() {
		cancel()
		stop()
	}
}

// Execute runs the root command.
func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if notifier != nil {
		notifier.Flush()
	}
	if err != nil {
		cmd.PrintErrln("Error:", err)
	}
	return err
}
