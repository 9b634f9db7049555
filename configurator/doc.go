// Package configurator orchestrates MCP2210 configuration sessions.
//
// # Overview
//
// This package drives the multi-step NVRAM write/verify sequence and the
// compatible-bitrate search against an open device:
//   - Diffing the user's edited configuration against the device-resident one
//   - Building the minimal ordered task list to apply the changes
//   - Executing the task list with short-circuit-on-failure semantics
//   - Verifying the written configuration by reading it back
//   - Negotiating the nearest SPI bit rate the chip's divider can produce
//
// # Basic Usage
//
// The simplest way to configure a device:
//
//	dev, err := mcp2210.Open(mcp2210.VID, mcp2210.PID, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	session := configurator.NewSession(dev)
//	if outcome := session.ReadDeviceConfiguration(); !outcome.OK() {
//	    log.Fatal(outcome.Message)
//	}
//
//	edited := session.DeviceConfiguration()
//	edited.Product = "My SPI Bridge"
//	session.SetEditedConfiguration(edited)
//
//	if outcome := session.Configure(false); !outcome.OK() {
//	    log.Fatal(outcome.Message)
//	}
//
// # Task Lists
//
// Configure writes only what changed. The task list is a pure function of
// the two configurations and can be inspected up front:
//
//	tasks := configurator.BuildTaskList(edited, device, true)
//	for _, task := range tasks {
//	    fmt.Println(task)
//	}
//
// Tasks run strictly in order and the first failure stops the sequence.
// NVRAM fields written before the failing step stay written; the chip's
// one-time-programmable storage cannot be rolled back.
//
// # Bit Rate Negotiation
//
// The chip's SPI clock divider only produces discrete rates. The session
// discovers the nearest achievable rate by probing the hardware:
//
//	rate, outcome := session.NearestCompatibleBitRate(1_000_000)
//	if outcome.OK() {
//	    fmt.Printf("chip can do %d Hz\n", rate)
//	}
//
// The device's volatile SPI settings are restored before the call returns,
// success or failure.
//
// # Concurrency
//
// A Session holds one device and allows one operation at a time; its
// methods are mutually exclusive critical sections over the device handle.
// Do not touch the same device through another handle while a session
// operation is in flight.
package configurator
