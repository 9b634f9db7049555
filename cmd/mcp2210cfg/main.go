// mcp2210cfg reads and writes the configuration of MCP2210 USB-to-SPI
// bridge chips.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
