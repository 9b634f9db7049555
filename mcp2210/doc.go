// Package mcp2210 implements the Microchip MCP2210 USB-to-SPI bridge HID
// command protocol and a device handle built on top of it.
//
// The MCP2210 is a USB HID-class device. All communication happens through
// 64-byte command/response reports:
//
//	Command:  [CMD][SUB/DATA...............................] (64 bytes)
//	Response: [CMD][STATUS][DATA...........................] (64 bytes)
//
// Where the first response byte echoes the command code and STATUS is 0x00
// on success.
//
// # Command Builders and Response Parsers
//
// Use the Build* functions to create command reports and the Parse*
// functions to extract typed values from response reports:
//
//	cmd := mcp2210.BuildGetNVRAMCmd(mcp2210.NVManufacturerName)
//	// ... exchange with the device ...
//	name, err := mcp2210.ParseStringDescriptor(rsp)
//
// # Device Handle
//
// Device wraps a USB HID connection (github.com/karalabe/hid) and exposes
// one method per chip operation:
//
//	dev, err := mcp2210.Open(mcp2210.VID, mcp2210.PID, "0001234567")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	settings, err := dev.SPISettings()
//
// NVRAM writes are one-time-programmable on locked-down parts; callers
// deciding what to write should go through the configurator package, which
// implements the diff/write/verify sequence.
//
// # Reference
//
// MCP2210 datasheet: http://ww1.microchip.com/downloads/en/DeviceDoc/22288A.pdf
package mcp2210
