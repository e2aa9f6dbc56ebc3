package cmd

import (
	"fmt"

	"github.com/Iron-Ham/printlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write a sample of every severity to the console and log file",
	Long: `Run a short demonstration: one message per severity, a progress
line built up across calls and then overwritten in place, and a simulated
crash routed through the stderr capture adapter.

Examples:
  # Default settings (logs/ directory, 7 day retention)
  printlog demo

  # Custom directory and timezone, colors off
  printlog demo --dir /tmp/logs --timezone America/New_York --no-color`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().String("dir", "logs", "log directory")
	demoCmd.Flags().Int("retention", 7, "days of log files to keep")
	demoCmd.Flags().String("timezone", "UTC", "IANA timezone for rotation and timestamps")
	demoCmd.Flags().Bool("no-color", false, "disable console colors")

	_ = viper.BindPFlag("dir", demoCmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("retention_days", demoCmd.Flags().Lookup("retention"))
	_ = viper.BindPFlag("timezone", demoCmd.Flags().Lookup("timezone"))
}

func runDemo(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("no-color") {
		viper.Set("colors", false)
	}

	cfg, err := configFromViper()
	if err != nil {
		return err
	}

	p, err := printlog.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	p.Print("System initializing...")

	// Build one logical line across several calls, then overwrite it.
	partial := printlog.DefaultOptions()
	partial.End = ""
	p.Emit(printlog.SeverityNormal, partial, "Loading modules...")
	p.Print(" done")
	p.Print("\rAll 14 modules loaded")

	p.Info("Listening on :8080")
	p.Success("Database connected successfully.")
	p.Warning("High latency detected:", "450ms")
	p.Error("Connection dropped.")
	p.Debug("Variable state:", map[string]int{"x": 10, "y": 20})
	p.Critical("System failure! Shutting down.")

	// Route a simulated crash through the capture adapter the way a host
	// would wire a subprocess or panic handler.
	if capture := p.Capture(); capture != nil {
		fmt.Fprint(capture, "panic: runtime error: integer divide by zero\n")
		fmt.Fprint(capture, "goroutine 1 [running]:\n")
		fmt.Fprint(capture, "main.divide(0x0)") // unterminated; flushed by Close
	}

	return nil
}
