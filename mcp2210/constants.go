package mcp2210

// VID and PID are the default vendor and product identifiers assigned by
// the USB-IF to the MCP2210. Both can be rewritten in NVRAM, so devices in
// the field may enumerate under different values.
const (
	VID uint16 = 0x04D8
	PID uint16 = 0x00DE
)

// ReportSize is the size in bytes of every command and response report.
const ReportSize = 64

// Command codes, sent as the first byte of a command report and echoed
// back as the first byte of the response.
const (
	// CmdGetChipSettings reads the volatile (current) chip settings
	CmdGetChipSettings = 0x20

	// CmdSetChipSettings writes the volatile chip settings
	CmdSetChipSettings = 0x21

	// CmdSetSPISettings writes the volatile SPI transfer settings
	CmdSetSPISettings = 0x40

	// CmdGetSPISettings reads the volatile SPI transfer settings
	CmdGetSPISettings = 0x41

	// CmdReadEEPROM reads one byte from the user EEPROM
	CmdReadEEPROM = 0x50

	// CmdWriteEEPROM writes one byte to the user EEPROM
	CmdWriteEEPROM = 0x51

	// CmdSetNVRAM writes a power-up (NVRAM) parameter, selected by sub-code
	CmdSetNVRAM = 0x60

	// CmdGetNVRAM reads a power-up (NVRAM) parameter, selected by sub-code
	CmdGetNVRAM = 0x61

	// CmdSendPassword submits the NVRAM access password
	CmdSendPassword = 0x70
)

// NVRAM sub-codes, sent as the second byte of CmdSetNVRAM and CmdGetNVRAM
// commands to select the parameter block.
const (
	// NVSPISettings selects the power-up SPI transfer settings
	NVSPISettings = 0x10

	// NVChipSettings selects the power-up chip settings
	NVChipSettings = 0x20

	// NVUSBParameters selects the USB key parameters (VID, PID, power)
	NVUSBParameters = 0x30

	// NVProductName selects the USB product string descriptor
	NVProductName = 0x40

	// NVManufacturerName selects the USB manufacturer string descriptor
	NVManufacturerName = 0x50
)

// Status codes returned in the second byte of a response report.
const (
	// StatusSuccess indicates the command was accepted and executed
	StatusSuccess = 0x00

	// StatusBusy indicates an SPI transfer is in progress and the
	// requested settings change was refused
	StatusBusy = 0xF8

	// StatusUnknownCommand indicates the command code is not recognized
	StatusUnknownCommand = 0xF9

	// StatusWriteFailure indicates an EEPROM or NVRAM write failed
	StatusWriteFailure = 0xFA

	// StatusAccessDenied indicates NVRAM access is blocked; on password
	// submission it means too many failed attempts
	StatusAccessDenied = 0xFB

	// StatusAccessRejected indicates the NVRAM is permanently locked
	StatusAccessRejected = 0xFC

	// StatusWrongPassword indicates the submitted password did not match
	StatusWrongPassword = 0xFD
)

// Chip limits.
const (
	// BitRateMin is the lowest SPI bit rate the clock divider can produce (Hz)
	BitRateMin uint32 = 1464

	// BitRateMax is the highest SPI bit rate the chip supports (Hz)
	BitRateMax uint32 = 12000000

	// SPIModeMax is the highest valid SPI mode number
	SPIModeMax = 3

	// MaxPowerMax is the highest raw max-power value (2 mA units, 500 mA)
	MaxPowerMax = 0xFA

	// DescriptorMaxChars is the maximum length of the manufacturer and
	// product string descriptors. Strings are stored as UTF-16LE in the
	// report payload: (64 - 6 header bytes) / 2 bytes per code unit.
	DescriptorMaxChars = 29

	// PasswordMaxChars is the maximum NVRAM password length
	PasswordMaxChars = 8

	// EEPROMSize is the size of the user EEPROM in bytes
	EEPROMSize = 256

	// PinCount is the number of general-purpose pins (GP0 through GP8)
	PinCount = 9
)
