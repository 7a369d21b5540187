// Package cli provides command-line interface commands for bitarith.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/libreseed/bitarith/internal/config"
	"github.com/libreseed/bitarith/internal/logging"
	"github.com/libreseed/bitarith/pkg/arith"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	tracer  *arith.Tracer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitarith",
	Short: "16-bit arithmetic from shifts, additions and subtractions",
	Long: `bitarith computes products, quotients and integer square roots of
16-bit unsigned integers using only shift, add, subtract and compare.

Commands:
  - multiply X Y   shift-and-add multiplication
  - divide X Y     recursive or iterative (long) division
  - sqrt X         bit-by-bit floor square root
  - verify         check the primitives against known vectors

Pass --trace to log every step of the algorithm.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}

		level := cfg.Log.Level
		if cfg.Trace.Enabled {
			level = "debug"
		}
		logger, err = logging.NewLogger(level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		tracer = arith.NewTracer(nil)
		if cfg.Trace.Enabled {
			tracer = arith.NewTracer(logger)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts cancel long-running commands such as an exhaustive verify.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./bitarith.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (json, console)")
	rootCmd.PersistentFlags().BoolP("trace", "t", false, "log every algorithm step")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("trace.enabled", rootCmd.PersistentFlags().Lookup("trace"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.SetConfigName("bitarith")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BITARITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
