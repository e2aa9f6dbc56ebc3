package cmd

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/printlog"
	"github.com/spf13/viper"
)

// configFromViper assembles a printlog.Config from the resolved viper state
// (defaults, config file, environment, flags).
func configFromViper() (printlog.Config, error) {
	cfg := printlog.DefaultConfig()

	loc, err := time.LoadLocation(viper.GetString("timezone"))
	if err != nil {
		return cfg, fmt.Errorf("invalid timezone %q: %w", viper.GetString("timezone"), err)
	}

	cfg.Dir = viper.GetString("dir")
	cfg.Location = loc
	cfg.RetentionDays = viper.GetInt("retention_days")
	cfg.FileLogging = viper.GetBool("file_logging")
	cfg.ConsoleLogging = viper.GetBool("console")
	cfg.ColorEnabled = viper.GetBool("colors")
	cfg.CaptureStderr = viper.GetBool("capture_stderr")
	cfg.FilenameFormat = viper.GetString("filename_format")
	cfg.TimestampFormat = viper.GetString("timestamp_format")

	return cfg, nil
}
