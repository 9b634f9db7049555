package configurator

import "github.com/mvieira/go-mcp2210/mcp2210"

// Channel is the device access surface the session drives. *mcp2210.Device
// implements it; tests substitute simulated channels.
//
// All operations are blocking and must not be invoked concurrently on the
// same underlying device.
type Channel interface {
	// ManufacturerDesc reads the manufacturer string descriptor from NVRAM
	ManufacturerDesc() (string, error)

	// ProductDesc reads the product string descriptor from NVRAM
	ProductDesc() (string, error)

	// USBParameters reads the USB key parameters from NVRAM
	USBParameters() (mcp2210.USBParameters, error)

	// NVChipSettings reads the power-up chip settings from NVRAM
	NVChipSettings() (mcp2210.ChipSettings, error)

	// NVSPISettings reads the power-up SPI transfer settings from NVRAM
	NVSPISettings() (mcp2210.SPISettings, error)

	// AccessControlMode reads the NVRAM write-protection state
	AccessControlMode() (mcp2210.AccessMode, error)

	// SPISettings reads the volatile SPI transfer settings
	SPISettings() (mcp2210.SPISettings, error)

	// ConfigureSPISettings writes the volatile SPI transfer settings
	ConfigureSPISettings(settings mcp2210.SPISettings) error

	// ConfigureChipSettings writes the volatile chip settings
	ConfigureChipSettings(settings mcp2210.ChipSettings) error

	// WriteManufacturerDesc writes the manufacturer string descriptor to NVRAM
	WriteManufacturerDesc(manufacturer string) error

	// WriteProductDesc writes the product string descriptor to NVRAM
	WriteProductDesc(product string) error

	// WriteUSBParameters writes the USB key parameters to NVRAM
	WriteUSBParameters(params mcp2210.USBParameters) error

	// WriteNVChipSettings writes the power-up chip settings together with
	// the access control mode and, for password protection, the new password
	WriteNVChipSettings(settings mcp2210.ChipSettings, mode mcp2210.AccessMode, password string) error

	// UsePassword submits the NVRAM access password
	UsePassword(password string) (mcp2210.PasswordStatus, error)

	// Disconnected reports whether the device dropped off the bus
	Disconnected() bool

	// IsOpen reports whether the channel is usable
	IsOpen() bool

	// Close releases the device
	Close() error
}
