package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mvieira/go-mcp2210/configurator"
	"github.com/mvieira/go-mcp2210/mcp2210"
)

// rootOptions holds the device selection flags shared by every
// subcommand.
type rootOptions struct {
	vid     string
	pid     string
	serial  string
	verbose bool

	logger *zap.SugaredLogger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mcp2210cfg",
		Short: "Configure MCP2210 USB-to-SPI bridge chips",
		Long: `mcp2210cfg reads and writes the NVRAM and volatile configuration of
MCP2210 USB-to-SPI bridge chips attached over USB.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				opts.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.vid, "vid", fmt.Sprintf("%04x", mcp2210.VID), "vendor ID of the device, hexadecimal")
	flags.StringVar(&opts.pid, "pid", fmt.Sprintf("%04x", mcp2210.PID), "product ID of the device, hexadecimal")
	flags.StringVarP(&opts.serial, "serial", "s", "", "serial number of the device; first match when empty")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newReadCommand(opts),
		newWriteCommand(opts),
		newBitrateCommand(opts),
		newPasswordCommand(opts),
		newEEPROMCommand(opts),
	)
	return cmd
}

func (o *rootOptions) setupLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if o.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	o.logger = logger.Sugar()
	return nil
}

// openDevice opens the device selected by the persistent flags.
func (o *rootOptions) openDevice() (*mcp2210.Device, error) {
	vid, err := parseID("vid", o.vid)
	if err != nil {
		return nil, err
	}
	pid, err := parseID("pid", o.pid)
	if err != nil {
		return nil, err
	}

	o.logger.Debugw("opening device", "vid", o.vid, "pid", o.pid, "serial", o.serial)
	dev, err := mcp2210.Open(vid, pid, o.serial)
	if err != nil {
		return nil, fmt.Errorf("open device %s:%s: %w", o.vid, o.pid, err)
	}
	return dev, nil
}

// newSession opens the device and wraps it in a configuration session
// wired to the CLI logger.
func (o *rootOptions) newSession(extra ...configurator.Option) (*configurator.Session, *mcp2210.Device, error) {
	dev, err := o.openDevice()
	if err != nil {
		return nil, nil, err
	}
	opts := append([]configurator.Option{
		configurator.WithLogger(zapLogger{o.logger}),
	}, extra...)
	return configurator.NewSession(dev, opts...), dev, nil
}

func parseID(name, value string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	parsed, err := strconv.ParseUint(trimmed, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("--%s %q is not a 16-bit hexadecimal value", name, value)
	}
	return uint16(parsed), nil
}

// zapLogger adapts the zap sugared logger to the configurator's Logger
// interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, keysAndValues ...interface{}) { l.s.Debugw(msg, keysAndValues...) }
func (l zapLogger) Info(msg string, keysAndValues ...interface{})  { l.s.Infow(msg, keysAndValues...) }
func (l zapLogger) Error(msg string, keysAndValues ...interface{}) { l.s.Errorw(msg, keysAndValues...) }
