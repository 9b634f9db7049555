package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvieira/go-mcp2210/configfile"
)

func newReadCommand(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read the device configuration",
		Long: `Read the NVRAM configuration and the access control mode from the
device and print it as YAML, or save it to a file with --output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, dev, err := opts.newSession()
			if err != nil {
				return err
			}
			defer dev.Close()

			if outcome := session.ReadDeviceConfiguration(); !outcome.OK() {
				return outcome.Err()
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "access control: %s\n", session.AccessMode())

			cfg := session.DeviceConfiguration()
			if output != "" {
				return configfile.Save(output, cfg)
			}
			return configfile.SaveWriter(os.Stdout, cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the configuration to this file instead of stdout")
	return cmd
}
