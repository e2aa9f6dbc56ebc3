// Package cmd implements the printlog command-line interface.
package cmd

import (
	"strings"

	"github.com/Iron-Ham/printlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "printlog",
	Short: "Print-style logging with daily files",
	Long: `Printlog tags, timestamps, and colorizes print-style output while
appending every message to a daily-rotating log file. This command
demonstrates the library and exercises its configuration surface.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./printlog.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	setDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("printlog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/printlog")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PRINTLOG")
	// PRINTLOG_RETENTION_DAYS for retention_days, and so on
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// setDefaults registers default values with viper
func setDefaults() {
	defaults := printlog.DefaultConfig()

	viper.SetDefault("dir", defaults.Dir)
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("retention_days", defaults.RetentionDays)
	viper.SetDefault("file_logging", defaults.FileLogging)
	viper.SetDefault("console", defaults.ConsoleLogging)
	viper.SetDefault("colors", defaults.ColorEnabled)
	viper.SetDefault("capture_stderr", defaults.CaptureStderr)
	viper.SetDefault("filename_format", defaults.FilenameFormat)
	viper.SetDefault("timestamp_format", defaults.TimestampFormat)
}
