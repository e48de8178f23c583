package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nsgo-dev/nsgo"
	"github.com/nsgo-dev/nsgo/internal/config"
	"github.com/nsgo-dev/nsgo/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	flags := &rootFlags{}
	err := newRootCmd(flags).ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err, flags.errorFormat)
		os.Exit(1)
	}
}

type rootFlags struct {
	config      string
	errorFormat string
}

func newRootCmd(flags *rootFlags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nsgo",
		Short: "Inspect and serve native element registries",
		Long: `nsgo builds the native element registry an application renders with:
the built-in elements, custom elements declared in nsgo.json, and
element manifests from disk or S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.errorFormat {
			case errorFormatAuto, errorFormatPretty, errorFormatCompact, errorFormatJSON:
				return nil
			}
			return errors.Newf(errors.CategoryCLI, "unknown --error-format %q", flags.errorFormat)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "",
		"path to nsgo.json or its directory (default: ./nsgo.json if present)")
	rootCmd.PersistentFlags().StringVar(&flags.errorFormat, "error-format", errorFormatAuto,
		"error output: auto, pretty, compact or json")

	rootCmd.AddCommand(
		elementsCmd(flags),
		resolveCmd(flags),
		inspectCmd(flags),
		initCmd(),
		explainCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the configured nsgo.json. Without --config a missing
// ./nsgo.json falls back to defaults.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	if f.config == "" {
		cfg, err := config.Load(".")
		if errors.Is(err, errors.New("E121")) {
			return config.New(), nil
		}
		return cfg, err
	}
	st, err := os.Stat(f.config)
	if err == nil && st.IsDir() {
		return config.Load(f.config)
	}
	return config.LoadFile(filepath.Clean(f.config))
}

// buildApp loads the config and builds the application root.
func (f *rootFlags) buildApp(ctx context.Context) (*nsgo.App, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	return nsgo.New(ctx, cfg)
}
