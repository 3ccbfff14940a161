package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/giantswarm/loggrep/internal/filter"
	"github.com/giantswarm/loggrep/internal/inspect"
	"github.com/giantswarm/loggrep/internal/k8s"
	"github.com/giantswarm/loggrep/internal/logging"
	"github.com/giantswarm/loggrep/internal/report"
)

// rootOptions holds the flag values of the root command.
type rootOptions struct {
	// Filter mode flags; the actual mode is resolved from command-line
	// order, these exist so the flags parse and show up in usage.
	all      bool
	errors   bool
	warnings bool
	http     bool
	search   string
	rgArgs   string

	// Report target
	file string

	// Cluster access
	kubeconfig  string
	kubeContext string
	inCluster   bool
	timeout     time.Duration

	debug bool
	help  bool
}

var rootOpts rootOptions

// rootCmd represents the base command for the loggrep application. Running it
// executes the inspection pipeline; there is no required subcommand.
var rootCmd = &cobra.Command{
	Use:   "loggrep [flags] <namespace>",
	Short: "Inspect container logs across a Kubernetes namespace",
	Long: `loggrep enumerates every pod and container in a Kubernetes namespace,
fetches their logs, and optionally filters them with a search pattern
(grep-style, with context lines and smart-case matching).

Results go to the terminal, or to a Markdown report file with --file.
Filtering modes are mutually exclusive; if several are given, the last
one on the command line wins.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	RunE:         runRoot,
	Args:         cobra.ArbitraryArgs,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "loggrep version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra itself usually prints the error. Exiting with a non-zero status code
		// indicates that an error occurred during execution.
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()

	f.BoolVarP(&rootOpts.all, "all", "a", false, "match error|warn|fatal (default mode)")
	f.BoolVarP(&rootOpts.errors, "error", "e", false, "match \"error\"")
	f.BoolVarP(&rootOpts.warnings, "warn", "w", false, "match \"warn\"")
	f.BoolVarP(&rootOpts.http, "http", "h", false, "match HTTP error status codes (404|403|500|502|503|504)")
	f.StringVarP(&rootOpts.search, "search", "s", "", "custom search pattern")
	f.StringVar(&rootOpts.rgArgs, "rg-args", "", "raw passthrough arguments for the search step")

	f.StringVarP(&rootOpts.file, "file", "f", "", "write a Markdown report to this path instead of the terminal")

	f.StringVar(&rootOpts.kubeconfig, "kubeconfig", "", "path to the kubeconfig file (default: $KUBECONFIG or ~/.kube/config)")
	f.StringVar(&rootOpts.kubeContext, "context", "", "kubeconfig context to use (default: current context)")
	f.BoolVar(&rootOpts.inCluster, "in-cluster", false, "use in-cluster service account authentication")
	f.DurationVar(&rootOpts.timeout, "timeout", 0, "timeout for each cluster API call")

	f.BoolVar(&rootOpts.debug, "debug", false, "enable debug logging")

	// The -h shorthand belongs to --http, so the help flag is registered
	// here with its long form only before cobra adds its default.
	f.BoolVar(&rootOpts.help, "help", false, "help for loggrep")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// modeByName maps long mode flag names to their modes.
var modeByName = map[string]filter.Mode{
	"all":   filter.ModeAll,
	"error": filter.ModeError,
	"warn":  filter.ModeWarn,
	"http":  filter.ModeHTTP,
}

// modeByShorthand maps shorthand letters to their modes.
var modeByShorthand = map[byte]filter.Mode{
	'a': filter.ModeAll,
	'e': filter.ModeError,
	'w': filter.ModeWarn,
	'h': filter.ModeHTTP,
}

// longValueFlags are the long flags whose value may arrive as the following
// token. The scan must skip those values so a value that looks like a mode
// flag (e.g. --file followed by a path named "-e") is not misread.
var longValueFlags = map[string]bool{
	"search":     true,
	"file":       true,
	"rg-args":    true,
	"kubeconfig": true,
	"context":    true,
	"timeout":    true,
}

// modeSelections extracts the mode-selecting flags from argv in command-line
// order. Order matters: the resolver applies last-one-wins semantics, which
// pflag's unordered flag set cannot express. The scan mirrors pflag's
// tokenization — grouped boolean shorthands (-ea), attached shorthand values
// (-stimeout, -s=val), and --flag=value forms all count.
func modeSelections(argv []string) []filter.Selection {
	var selections []filter.Selection

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			break
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")

			if name == "search" {
				if !hasValue && i+1 < len(argv) {
					value = argv[i+1]
					i++
				}
				selections = append(selections, filter.Selection{Mode: filter.ModeCustom, Custom: value})
				continue
			}

			if mode, ok := modeByName[name]; ok {
				// pflag accepts --error=false; only an affirmative
				// value selects the mode.
				if hasValue {
					if on, err := strconv.ParseBool(value); err != nil || !on {
						continue
					}
				}
				selections = append(selections, filter.Selection{Mode: mode})
				continue
			}

			if longValueFlags[name] && !hasValue {
				i++ // the next token is this flag's value
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// A shorthand group: boolean shorthands may be stacked, and a
			// value-taking shorthand consumes the rest of the token (or the
			// next one) as its value, exactly as pflag parses them.
			body := arg[1:]
			for j := 0; j < len(body); j++ {
				if mode, ok := modeByShorthand[body[j]]; ok {
					selections = append(selections, filter.Selection{Mode: mode})
					continue
				}

				if body[j] == 's' || body[j] == 'f' {
					value := strings.TrimPrefix(body[j+1:], "=")
					if value == "" && i+1 < len(argv) {
						value = argv[i+1]
						i++
					}
					if body[j] == 's' {
						selections = append(selections, filter.Selection{Mode: filter.ModeCustom, Custom: value})
					}
				}
				// Anything else is a shorthand pflag rejects upstream.
				break
			}
		}
	}

	return selections
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if cmd.Flags().NFlag() == 0 {
			return cmd.Help()
		}
		return fmt.Errorf("namespace is required")
	}
	if len(args) > 1 {
		return fmt.Errorf("unknown argument %q", args[1])
	}
	namespace := args[0]

	logger := newLogger(rootOpts.debug)

	spec := filter.Resolve(modeSelections(os.Args[1:]), rootOpts.rgArgs)
	engine, err := filter.NewEngine(spec)
	if err != nil {
		return err
	}

	client, err := k8s.NewClient(&k8s.ClientConfig{
		KubeconfigPath: rootOpts.kubeconfig,
		Context:        rootOpts.kubeContext,
		InCluster:      rootOpts.inCluster,
		Timeout:        rootOpts.timeout,
		DebugMode:      rootOpts.debug,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	var sink report.Sink
	var closeSink func() error
	if rootOpts.file != "" {
		md, err := report.NewMarkdownSink(rootOpts.file)
		if err != nil {
			return err
		}
		sink = md
		closeSink = md.Close
	} else {
		sink = report.NewTerminalSink()
	}

	runner := &inspect.Runner{
		Client: client,
		Spec:   spec,
		Engine: engine,
		Sink:   sink,
		Logger: logging.WithOperation(logger, "inspect"),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if err := runner.Run(ctx, namespace); err != nil {
		return err
	}

	if closeSink != nil {
		return closeSink()
	}
	return nil
}
