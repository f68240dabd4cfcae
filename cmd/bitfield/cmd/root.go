package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wirekit/bitcursor/config"
)

var (
	// Version is the version of the binary, set by main.
	Version string

	// Commit is the commit hash of the binary, set by main.
	Commit string

	cfg     = config.DefaultConfig()
	cfgFile string
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "bitfield",
	Short: "Pack and unpack sub-byte protocol fields",
	Long: `bitfield reads and writes binary layouts whose fields occupy less than a
byte: header flags, short enumerations and the like. A layout is a
comma-separated list of field widths in bits (each 1-8); fields are laid out
MSB-first and never cross a byte boundary - a field that does not fit the
bits remaining in the current byte starts on the next one, with the gap
zero-filled.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		level := zapcore.InfoLevel
		if cfg.Verbose {
			level = zapcore.DebugLevel
		}
		zcfg := zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		logger = l.Sugar()
		return nil
	},
}

func Execute() {
	rootCmd.Version = fmt.Sprintf("%s+%s", Version, Commit)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&cfg.Layout, "layout", cfg.Layout, "comma-separated field widths, in bits (each 1-8)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
}

// loadConfig merges the config file into cfg. Flags set on the command line
// keep priority over file values.
func loadConfig(cmd *cobra.Command) error {
	vip := viper.New()
	if cfgFile != "" {
		vip.SetConfigFile(cfgFile)
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := vip.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg.Validate()
}
