package mcp2210

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// makeReport allocates a zeroed command report of the fixed 64-byte size.
func makeReport(cmd byte) []byte {
	report := make([]byte, ReportSize)
	report[0] = cmd
	return report
}

// encodeChipSettings fills the chip settings payload shared by the
// volatile set command and the NVRAM write command.
//
// Layout (byte offsets within the report):
//
//	[4..12]  GP0..GP8 pin designation
//	[13..14] default GPIO output mask (little-endian, pin 0 = bit 0)
//	[15..16] GPIO direction mask (little-endian, set bit = input)
//	[17]     other settings: bit 4 remote wake-up, bits 3-1 interrupt
//	         mode, bit 0 SPI bus captive
func encodeChipSettings(report []byte, settings ChipSettings) {
	for i, pin := range settings.GP {
		report[4+i] = byte(pin.Function)
	}
	binary.LittleEndian.PutUint16(report[13:15], settings.DefaultOutputMask())
	binary.LittleEndian.PutUint16(report[15:17], settings.DirectionMask())

	var other byte
	if settings.RemoteWakeup {
		other |= 1 << 4
	}
	other |= byte(settings.InterruptMode) << 1
	if settings.SPIBusCaptive {
		other |= 1 << 0
	}
	report[17] = other
}

// encodeSPISettings fills the SPI transfer settings payload shared by the
// volatile set command and the NVRAM write command.
//
// Layout (byte offsets within the report):
//
//	[4..7]   bit rate in Hz (little-endian)
//	[8..9]   idle chip-select value
//	[10..11] active chip-select value
//	[12..13] chip-select-to-data delay
//	[14..15] data-to-chip-select delay
//	[16..17] inter-byte delay
//	[18..19] bytes per transfer
//	[20]     SPI mode
func encodeSPISettings(report []byte, settings SPISettings) {
	binary.LittleEndian.PutUint32(report[4:8], settings.BitRate)
	binary.LittleEndian.PutUint16(report[8:10], settings.IdleCSValue)
	binary.LittleEndian.PutUint16(report[10:12], settings.ActiveCSValue)
	binary.LittleEndian.PutUint16(report[12:14], settings.CSToDataDelay)
	binary.LittleEndian.PutUint16(report[14:16], settings.DataToCSDelay)
	binary.LittleEndian.PutUint16(report[16:18], settings.InterByteDelay)
	binary.LittleEndian.PutUint16(report[18:20], settings.BytesPerTransfer)
	report[20] = settings.Mode
}

// BuildGetNVRAMCmd constructs a Get NVRAM Parameter command for the given
// sub-code (NVSPISettings, NVChipSettings, NVUSBParameters, NVProductName
// or NVManufacturerName).
func BuildGetNVRAMCmd(sub byte) []byte {
	report := makeReport(CmdGetNVRAM)
	report[1] = sub
	return report
}

// BuildGetSPISettingsCmd constructs a Get (volatile) SPI Transfer Settings
// command.
func BuildGetSPISettingsCmd() []byte {
	return makeReport(CmdGetSPISettings)
}

// BuildSetSPISettingsCmd constructs a Set (volatile) SPI Transfer Settings
// command. The chip silently rounds the bit rate down to the nearest value
// its divider can produce; read the settings back to observe the rate
// actually in effect.
func BuildSetSPISettingsCmd(settings SPISettings) ([]byte, error) {
	if settings.Mode > SPIModeMax {
		return nil, fmt.Errorf("invalid SPI mode: %d", settings.Mode)
	}
	report := makeReport(CmdSetSPISettings)
	encodeSPISettings(report, settings)
	return report, nil
}

// BuildGetChipSettingsCmd constructs a Get (volatile) Chip Settings command.
func BuildGetChipSettingsCmd() []byte {
	return makeReport(CmdGetChipSettings)
}

// BuildSetChipSettingsCmd constructs a Set (volatile) Chip Settings
// command. Volatile chip settings carry no access control byte.
func BuildSetChipSettingsCmd(settings ChipSettings) []byte {
	report := makeReport(CmdSetChipSettings)
	encodeChipSettings(report, settings)
	return report
}

// BuildWriteNVChipSettingsCmd constructs a Set NVRAM command writing the
// power-up chip settings, the NVRAM access mode, and (for AccessPassword)
// the new password.
//
// Additional layout on top of the shared chip settings payload:
//
//	[18]     access control mode
//	[19..26] new password, ASCII, zero padded
func BuildWriteNVChipSettingsCmd(settings ChipSettings, mode AccessMode, password string) ([]byte, error) {
	if len(password) > PasswordMaxChars {
		return nil, fmt.Errorf("password exceeds %d characters", PasswordMaxChars)
	}
	report := makeReport(CmdSetNVRAM)
	report[1] = NVChipSettings
	encodeChipSettings(report, settings)
	report[18] = byte(mode)
	copy(report[19:19+PasswordMaxChars], password)
	return report, nil
}

// BuildWriteNVSPISettingsCmd constructs a Set NVRAM command writing the
// power-up SPI transfer settings.
func BuildWriteNVSPISettingsCmd(settings SPISettings) ([]byte, error) {
	if settings.Mode > SPIModeMax {
		return nil, fmt.Errorf("invalid SPI mode: %d", settings.Mode)
	}
	report := makeReport(CmdSetNVRAM)
	report[1] = NVSPISettings
	encodeSPISettings(report, settings)
	return report, nil
}

// BuildWriteUSBParametersCmd constructs a Set NVRAM command writing the
// USB key parameters.
//
// Layout:
//
//	[4..5] vendor ID (little-endian)
//	[6..7] product ID (little-endian)
//	[8]    power attributes: bit 7 reserved-set, bit 6 self-powered,
//	       bit 5 remote wake-up capable
//	[9]    requested current in 2 mA units
func BuildWriteUSBParametersCmd(params USBParameters) []byte {
	report := makeReport(CmdSetNVRAM)
	report[1] = NVUSBParameters
	binary.LittleEndian.PutUint16(report[4:6], params.VID)
	binary.LittleEndian.PutUint16(report[6:8], params.PID)
	report[8] = encodePowerAttributes(params)
	report[9] = params.MaxPower
	return report
}

// BuildWriteStringCmd constructs a Set NVRAM command writing the product
// or manufacturer string descriptor (sub NVProductName or
// NVManufacturerName).
//
// Layout:
//
//	[4]    descriptor length: 2 + 2*len(s)
//	[5]    descriptor type, always 0x03 (USB string)
//	[6..]  UTF-16LE code units
func BuildWriteStringCmd(sub byte, s string) ([]byte, error) {
	if sub != NVProductName && sub != NVManufacturerName {
		return nil, fmt.Errorf("sub-code 0x%02X is not a string descriptor", sub)
	}
	units := utf16.Encode([]rune(s))
	if len(units) > DescriptorMaxChars {
		return nil, fmt.Errorf("descriptor exceeds %d characters", DescriptorMaxChars)
	}
	report := makeReport(CmdSetNVRAM)
	report[1] = sub
	report[4] = byte(2 + 2*len(units))
	report[5] = 0x03
	for i, u := range units {
		binary.LittleEndian.PutUint16(report[6+2*i:8+2*i], u)
	}
	return report, nil
}

// BuildSendPasswordCmd constructs a Send Access Password command.
//
// Layout:
//
//	[4..11] password, ASCII, zero padded
func BuildSendPasswordCmd(password string) ([]byte, error) {
	if len(password) > PasswordMaxChars {
		return nil, fmt.Errorf("password exceeds %d characters", PasswordMaxChars)
	}
	report := makeReport(CmdSendPassword)
	copy(report[4:4+PasswordMaxChars], password)
	return report, nil
}

// BuildReadEEPROMCmd constructs a Read EEPROM command for one byte at the
// given address.
func BuildReadEEPROMCmd(addr byte) []byte {
	report := makeReport(CmdReadEEPROM)
	report[1] = addr
	return report
}

// BuildWriteEEPROMCmd constructs a Write EEPROM command for one byte at
// the given address.
func BuildWriteEEPROMCmd(addr byte, value byte) []byte {
	report := makeReport(CmdWriteEEPROM)
	report[1] = addr
	report[2] = value
	return report
}

// encodePowerAttributes packs the power mode and wake-up capability into
// the USB bmAttributes-style byte the chip stores.
func encodePowerAttributes(params USBParameters) byte {
	attr := byte(1 << 7)
	if params.PowerMode == PowerModeSelf {
		attr |= 1 << 6
	}
	if params.RemoteWakeup {
		attr |= 1 << 5
	}
	return attr
}
