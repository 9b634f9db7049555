package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvieira/go-mcp2210/mcp2210"
)

func newPasswordCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "password <password>",
		Short: "Submit the NVRAM access password",
		Long: `Submit the access password of a password-protected device, unlocking
NVRAM writes for the rest of the USB session. The chip blocks further
attempts after too many wrong passwords until it is power-cycled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, dev, err := opts.newSession()
			if err != nil {
				return err
			}
			defer dev.Close()

			status, err := session.UsePassword(args[0])
			if err != nil {
				return err
			}
			if status != mcp2210.PasswordCompleted {
				return fmt.Errorf("password not accepted: %s", status)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "access granted")
			return nil
		},
	}
}
