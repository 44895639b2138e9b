package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/withobsrvr/recordctl/internal/config"
	"github.com/withobsrvr/recordctl/internal/utils/logger"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	output      string
	logLevel    string
	databaseURL string

	settings    *config.Settings
	settingsErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recordctl",
	Short: "Turn inputs into sequentially numbered records",
	Long: `recordctl runs inputs through a record processor. Every input becomes a
record tagged with its position and a "processed" status. Records can be
printed, persisted to a BoltDB file and listed again later.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/recordctl/recordctl.yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table|json|yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "record store, memory:// or bolt://path")

	bindConfigFlags()
}

// bindConfigFlags binds persistent flags to their viper keys
func bindConfigFlags() {
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home + "/.config/recordctl")
		viper.SetConfigType("yaml")
		viper.SetConfigName("recordctl")
	}

	viper.SetEnvPrefix("RECORDCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	readErr := viper.ReadInConfig()
	settings, settingsErr = config.Load(viper.GetViper())

	level := logLevel
	if settingsErr == nil {
		level = settings.LogLevel(logLevel)
	}
	if err := logger.Init(level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if readErr == nil {
		logger.Info("Using config file", zap.String("file", viper.ConfigFileUsed()))
	} else if cfgFile != "" {
		logger.Warn("Failed to read config file", zap.String("file", cfgFile), zap.Error(readErr))
	}
}

// currentSettings returns the settings loaded by initConfig
func currentSettings() (*config.Settings, error) {
	if settingsErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", settingsErr)
	}
	if settings == nil {
		return config.Default(), nil
	}
	return settings, nil
}
