package mcp2210

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// ParseResponse validates the fixed header of a response report: the
// report must be full-length, echo the command code in byte 0, and carry
// StatusSuccess in byte 1.
//
// Returns the report itself for further field extraction, or a
// *CommandError when the chip refused the command.
func ParseResponse(report []byte, cmd byte) ([]byte, error) {
	if len(report) < ReportSize {
		return nil, fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}
	if report[0] != cmd {
		return nil, fmt.Errorf("response echoes command 0x%02X, want 0x%02X", report[0], cmd)
	}
	if report[1] != StatusSuccess {
		return nil, &CommandError{Command: cmd, Status: report[1]}
	}
	return report, nil
}

// ParseChipSettings extracts chip settings from a Get Chip Settings or
// Get NVRAM (chip settings) response. The payload mirrors the layout
// written by the set commands.
func ParseChipSettings(report []byte) (ChipSettings, error) {
	if len(report) < ReportSize {
		return ChipSettings{}, fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}

	var settings ChipSettings
	for i := range settings.GP {
		settings.GP[i].Function = PinFunction(report[4+i])
	}
	output := binary.LittleEndian.Uint16(report[13:15])
	direction := binary.LittleEndian.Uint16(report[15:17])
	for i := range settings.GP {
		if direction&(1<<uint(i)) == 0 {
			settings.GP[i].Direction = PinOutput
		}
		settings.GP[i].DefaultOutput = output&(1<<uint(i)) != 0
	}

	other := report[17]
	settings.RemoteWakeup = other&(1<<4) != 0
	settings.InterruptMode = InterruptMode((other >> 1) & 0x07)
	settings.SPIBusCaptive = other&(1<<0) != 0
	return settings, nil
}

// ParseAccessMode extracts the NVRAM access control mode from a Get NVRAM
// (chip settings) response.
func ParseAccessMode(report []byte) (AccessMode, error) {
	if len(report) < ReportSize {
		return AccessFull, fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}
	mode := AccessMode(report[18])
	switch mode {
	case AccessFull, AccessPassword, AccessLocked:
		return mode, nil
	default:
		return AccessFull, fmt.Errorf("unknown access control mode 0x%02X", report[18])
	}
}

// ParseSPISettings extracts SPI transfer settings from a Get SPI Transfer
// Settings or Get NVRAM (SPI settings) response.
func ParseSPISettings(report []byte) (SPISettings, error) {
	if len(report) < ReportSize {
		return SPISettings{}, fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}
	return SPISettings{
		BitRate:          binary.LittleEndian.Uint32(report[4:8]),
		IdleCSValue:      binary.LittleEndian.Uint16(report[8:10]),
		ActiveCSValue:    binary.LittleEndian.Uint16(report[10:12]),
		CSToDataDelay:    binary.LittleEndian.Uint16(report[12:14]),
		DataToCSDelay:    binary.LittleEndian.Uint16(report[14:16]),
		InterByteDelay:   binary.LittleEndian.Uint16(report[16:18]),
		BytesPerTransfer: binary.LittleEndian.Uint16(report[18:20]),
		Mode:             report[20],
	}, nil
}

// ParseUSBParameters extracts the USB key parameters from a Get NVRAM
// (USB parameters) response. Unlike the other parameter blocks, the chip
// reports these at different offsets than the write command uses:
//
//	[12..13] vendor ID (little-endian)
//	[14..15] product ID (little-endian)
//	[29]     power attributes
//	[30]     requested current in 2 mA units
func ParseUSBParameters(report []byte) (USBParameters, error) {
	if len(report) < ReportSize {
		return USBParameters{}, fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}
	params := USBParameters{
		VID:      binary.LittleEndian.Uint16(report[12:14]),
		PID:      binary.LittleEndian.Uint16(report[14:16]),
		MaxPower: report[30],
	}
	attr := report[29]
	if attr&(1<<6) != 0 {
		params.PowerMode = PowerModeSelf
	}
	params.RemoteWakeup = attr&(1<<5) != 0
	return params, nil
}

// ParseStringDescriptor extracts a UTF-16LE string descriptor from a Get
// NVRAM (product or manufacturer name) response.
//
//	[4]   descriptor length: 2 + 2*chars
//	[5]   descriptor type, 0x03
//	[6..] UTF-16LE code units
func ParseStringDescriptor(report []byte) (string, error) {
	if len(report) < ReportSize {
		return "", fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}
	length := int(report[4])
	if length < 2 || length > 2+2*DescriptorMaxChars || length%2 != 0 {
		return "", fmt.Errorf("invalid string descriptor length %d", length)
	}
	if report[5] != 0x03 {
		return "", fmt.Errorf("invalid string descriptor type 0x%02X", report[5])
	}
	count := (length - 2) / 2
	units := make([]uint16, count)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(report[6+2*i : 8+2*i])
	}
	return string(utf16.Decode(units)), nil
}

// ParseEEPROMByte extracts the data byte from a Read EEPROM response.
func ParseEEPROMByte(report []byte) (byte, error) {
	if len(report) < ReportSize {
		return 0, fmt.Errorf("short response: got %d bytes, want %d", len(report), ReportSize)
	}
	return report[3], nil
}

// ParsePasswordStatus maps the status byte of a Send Access Password
// response to the password submission outcome.
func ParsePasswordStatus(status byte) PasswordStatus {
	switch status {
	case StatusSuccess:
		return PasswordCompleted
	case StatusAccessDenied:
		return PasswordBlocked
	case StatusWrongPassword:
		return PasswordWrong
	default:
		return PasswordRejected
	}
}
