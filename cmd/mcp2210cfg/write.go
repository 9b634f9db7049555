package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvieira/go-mcp2210/configfile"
	"github.com/mvieira/go-mcp2210/configurator"
	"github.com/mvieira/go-mcp2210/mcp2210"
)

func newWriteCommand(opts *rootOptions) *cobra.Command {
	var (
		apply      bool
		protect    bool
		lock       bool
		password   string
		unlockWith string
	)

	cmd := &cobra.Command{
		Use:   "write <file>",
		Short: "Write a configuration file to the device NVRAM",
		Long: `Load a YAML configuration file, diff it against the device's current
NVRAM contents, and write only the fields that differ. The written
configuration is verified by reading it back.

The chip's NVRAM is one-time-programmable in its access mode: --lock is
irreversible, and fields written before a failure stay written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if protect && lock {
				return fmt.Errorf("--protect and --lock are mutually exclusive")
			}
			if protect && password == "" {
				return fmt.Errorf("--protect requires --password")
			}

			edited, err := configfile.Load(args[0])
			if err != nil {
				return err
			}

			var extra []configurator.Option
			if protect {
				extra = append(extra,
					configurator.WithAccessMode(mcp2210.AccessPassword),
					configurator.WithPassword(password),
				)
			}
			if lock {
				extra = append(extra, configurator.WithAccessMode(mcp2210.AccessLocked))
			}
			extra = append(extra, configurator.WithProgressCallback(func(p configurator.TaskProgress) {
				fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s\n", p.Index+1, p.Total, p.Task)
			}))

			session, dev, err := opts.newSession(extra...)
			if err != nil {
				return err
			}
			defer dev.Close()

			if outcome := session.ReadDeviceConfiguration(); !outcome.OK() {
				return outcome.Err()
			}

			if session.AccessMode() == mcp2210.AccessPassword && unlockWith != "" {
				status, err := session.UsePassword(unlockWith)
				if err != nil {
					return err
				}
				if status != mcp2210.PasswordCompleted {
					return fmt.Errorf("password not accepted: %s", status)
				}
			}

			session.SetEditedConfiguration(edited)
			if outcome := session.Configure(apply); !outcome.OK() {
				return outcome.Err()
			}

			fmt.Fprintln(cmd.OutOrStdout(), "device configured")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&apply, "apply", false, "also apply differing chip and SPI settings to the volatile registers")
	flags.BoolVar(&protect, "protect", false, "password-protect the NVRAM when writing chip settings")
	flags.BoolVar(&lock, "lock", false, "permanently lock the NVRAM when writing chip settings (irreversible)")
	flags.StringVar(&password, "password", "", "new NVRAM password for --protect")
	flags.StringVar(&unlockWith, "unlock-with", "", "current NVRAM password of a protected device")
	return cmd
}
