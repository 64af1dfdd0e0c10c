package foamslides

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dasdy/foamslides/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigPath = "./.foamslides.toml"

var (
	cfgFile   string
	assetsDir string
	stepwise  bool
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "foamslides",
	Short: "Build and present the foamUT talk",
	Long: `foamslides scripts the foamUT unit-testing talk as a sequence of slides.
It can render them to SVG, serve them to a browser, show them in a terminal
and follow a presenter clicker.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", ".", "directory holding the talk's images")
	rootCmd.PersistentFlags().BoolVar(&stepwise, "stepwise", false, "reveal list items one step at a time")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("toml")

	// Set environment variable prefix
	viper.SetEnvPrefix("foamslides")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			slog.Debug("No config file, using defaults", "path", cfgFile)

			return
		}

		slog.Error("Error reading config file", "path", cfgFile, "error", err)
		os.Exit(1)
	}

	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
}

func preRun(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}

	if verbose {
		slog.SetDefault(slog.New(logging.New(os.Stderr, slog.LevelDebug)))
	}

	return nil
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command) error {
	var err error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Since viper does case-insensitive comparisons, we only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if f.Changed || err != nil {
			return
		}

		for _, name := range []string{f.Name, configName} {
			if !viper.IsSet(name) {
				continue
			}

			val := viper.Get(name)
			if setErr := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); setErr != nil {
				err = fmt.Errorf("could not set flag %s from config: %w", f.Name, setErr)

				return
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)

			return
		}
	})

	return err
}
