package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvieira/go-mcp2210/mcp2210"
)

func newEEPROMCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eeprom",
		Short: "Access the 256-byte user EEPROM",
	}
	cmd.AddCommand(newEEPROMReadCommand(opts), newEEPROMWriteCommand(opts))
	return cmd
}

func newEEPROMReadCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read [addr]",
		Short: "Read one byte, or the whole EEPROM when no address is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dev, err := opts.openDevice()
			if err != nil {
				return err
			}
			defer dev.Close()

			if len(args) == 1 {
				addr, err := parseEEPROMByte("address", args[0])
				if err != nil {
					return err
				}
				value, err := dev.ReadEEPROM(addr)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "0x%02X\n", value)
				return nil
			}

			for addr := 0; addr < mcp2210.EEPROMSize; addr++ {
				value, err := dev.ReadEEPROM(byte(addr))
				if err != nil {
					return err
				}
				if addr%16 == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%02x:", addr)
				}
				fmt.Fprintf(cmd.OutOrStdout(), " %02x", value)
				if addr%16 == 15 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			}
			return nil
		},
	}
}

func newEEPROMWriteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "write <addr> <value>",
		Short: "Write one byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseEEPROMByte("address", args[0])
			if err != nil {
				return err
			}
			value, err := parseEEPROMByte("value", args[1])
			if err != nil {
				return err
			}

			dev, err := opts.openDevice()
			if err != nil {
				return err
			}
			defer dev.Close()

			return dev.WriteEEPROM(addr, value)
		},
	}
}

func parseEEPROMByte(name, value string) (byte, error) {
	parsed, err := strconv.ParseUint(value, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a byte value", name, value)
	}
	return byte(parsed), nil
}
