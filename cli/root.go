// Package cli provides the vsproj command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/vsproj/config"
	"github.com/viant/vsproj/generator"
)

// Version information (set at build time).
var Version = "0.1.0"

type options struct {
	configFile string
	verbose    bool
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "vsproj",
		Short: "vsproj - IDE project generator",
		Long: `vsproj generates Visual Studio project, filters and solution files from
target descriptions (*.target.yaml), keeping identifiers of previously generated files.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().StringP("platform", "p", "", "target platform (e.g., win32, linux)")
	rootCmd.PersistentFlags().String("msbuild-platform", "", "platform written to build configurations (e.g., Win32, x64)")
	rootCmd.PersistentFlags().String("project-ext", "", "project file extension")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newGenerateCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newWatchCommand(opts))
	return rootCmd
}

// generator creates a generator for targets under root, configuration comes from the
// --config flag or the nearest configuration file above root, overridden by flags.
func (o *options) generator(cmd *cobra.Command, root string) (*generator.Generator, error) {
	cfg, location, err := o.load(cmd, root)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())
	if location != "" {
		logger.Debug("using config file", "location", location)
	}
	reload := func() (*config.Config, error) {
		cfg, _, err := o.load(cmd, root)
		return cfg, err
	}
	return generator.New(cfg, generator.WithLogger(logger), generator.WithReload(reload)), nil
}

func (o *options) load(cmd *cobra.Command, root string) (*config.Config, string, error) {
	location := o.configFile
	if location == "" {
		location = config.Locate(root)
	}
	cfg, err := config.LoadWithFlags(location, cmd.Root().PersistentFlags())
	if err != nil {
		return nil, "", err
	}
	if o.verbose {
		cfg.LogLevel = slog.LevelDebug.String()
	}
	return cfg, location, nil
}

func rootArg(args []string) (string, error) {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid root %v: %w", root, err)
	}
	return abs, nil
}
