package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBitrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bitrate <hz>",
		Short: "Find the nearest SPI bit rate the chip supports",
		Long: `Probe the device's SPI clock divider to find the achievable bit rate
nearest to the requested one. The device's volatile SPI settings are
restored before the command returns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("%q is not a bit rate in Hz", args[0])
			}

			session, dev, err := opts.newSession()
			if err != nil {
				return err
			}
			defer dev.Close()

			rate, outcome := session.NearestCompatibleBitRate(uint32(requested))
			if !outcome.OK() {
				return outcome.Err()
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", rate)
			return nil
		},
	}
}
