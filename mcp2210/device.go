package mcp2210

import (
	"fmt"

	usb "github.com/karalabe/hid"
)

// ReportTransport is the minimal HID surface the device handle needs:
// writing a command report, reading a response report, and closing the
// connection. *hid.Device satisfies it; tests and exotic transports can
// substitute their own implementation.
type ReportTransport interface {
	Write(p []byte) (int, error)
	Read(p []byte) (int, error)
	Close() error
}

// Device is an open MCP2210. It owns a single USB HID connection and
// issues one command/response exchange at a time; callers must not issue
// a second operation while one is outstanding.
type Device struct {
	transport    ReportTransport
	serial       string
	open         bool
	disconnected bool
}

// Enumerate returns the HID descriptors of all attached devices matching
// the given vendor and product ID.
func Enumerate(vid uint16, pid uint16) []usb.DeviceInfo {
	return usb.Enumerate(vid, pid)
}

// Open enumerates devices matching vid and pid and opens the one with the
// given serial number. An empty serial opens the first device found.
//
// Returns ErrInit if the USB HID layer is unavailable (fatal for the
// process), ErrNotFound if no device matches, or an error wrapping
// ErrBusy if the interface could not be claimed.
func Open(vid uint16, pid uint16, serial string) (*Device, error) {
	if !usb.Supported() {
		return nil, ErrInit
	}

	var info *usb.DeviceInfo
	for _, candidate := range usb.Enumerate(vid, pid) {
		if serial == "" || candidate.Serial == serial {
			c := candidate
			info = &c
			break
		}
	}
	if info == nil {
		return nil, ErrNotFound
	}

	transport, err := info.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBusy, err)
	}

	return &Device{
		transport: transport,
		serial:    info.Serial,
		open:      true,
	}, nil
}

// NewDevice wraps an already-open transport in a device handle. Intended
// for tests and for transports other than the built-in HID binding.
func NewDevice(transport ReportTransport) *Device {
	if transport == nil {
		panic("transport cannot be nil")
	}
	return &Device{transport: transport, open: true}
}

// Serial returns the USB serial number the device enumerated with.
func (d *Device) Serial() string { return d.serial }

// IsOpen reports whether the device handle is usable.
func (d *Device) IsOpen() bool { return d != nil && d.open }

// Disconnected reports whether a transport-level failure has been
// observed, which on a hot-unplugged device is the first symptom. The
// flag is detected reactively: the operation that hits the failure sets
// it.
func (d *Device) Disconnected() bool { return d != nil && d.disconnected }

// Close releases the USB HID connection. Closing an already-closed
// device has no effect.
func (d *Device) Close() error {
	if d == nil || !d.open {
		return nil
	}
	d.open = false
	return d.transport.Close()
}

// exchangeRaw performs one command/response round trip and validates the
// command echo, but not the status byte. A transport failure marks the
// device disconnected.
func (d *Device) exchangeRaw(report []byte) ([]byte, error) {
	if !d.IsOpen() {
		return nil, ErrClosed
	}

	cmd := report[0]
	if _, err := d.transport.Write(report); err != nil {
		d.disconnected = true
		return nil, fmt.Errorf("write command 0x%02X: %w", cmd, err)
	}

	rsp := make([]byte, ReportSize)
	n, err := d.transport.Read(rsp)
	if err != nil {
		d.disconnected = true
		return nil, fmt.Errorf("read response to command 0x%02X: %w", cmd, err)
	}
	if n < ReportSize {
		return nil, fmt.Errorf("short response to command 0x%02X: %d of %d bytes", cmd, n, ReportSize)
	}
	if rsp[0] != cmd {
		return nil, fmt.Errorf("response echoes command 0x%02X, want 0x%02X", rsp[0], cmd)
	}
	return rsp, nil
}

// exchange performs one round trip and additionally requires a success
// status from the chip.
func (d *Device) exchange(report []byte) ([]byte, error) {
	rsp, err := d.exchangeRaw(report)
	if err != nil {
		return nil, err
	}
	return ParseResponse(rsp, report[0])
}

// ManufacturerDesc reads the manufacturer string descriptor from NVRAM.
func (d *Device) ManufacturerDesc() (string, error) {
	rsp, err := d.exchange(BuildGetNVRAMCmd(NVManufacturerName))
	if err != nil {
		return "", fmt.Errorf("get manufacturer descriptor: %w", err)
	}
	return ParseStringDescriptor(rsp)
}

// ProductDesc reads the product string descriptor from NVRAM.
func (d *Device) ProductDesc() (string, error) {
	rsp, err := d.exchange(BuildGetNVRAMCmd(NVProductName))
	if err != nil {
		return "", fmt.Errorf("get product descriptor: %w", err)
	}
	return ParseStringDescriptor(rsp)
}

// USBParameters reads the USB key parameters from NVRAM.
func (d *Device) USBParameters() (USBParameters, error) {
	rsp, err := d.exchange(BuildGetNVRAMCmd(NVUSBParameters))
	if err != nil {
		return USBParameters{}, fmt.Errorf("get USB parameters: %w", err)
	}
	return ParseUSBParameters(rsp)
}

// NVChipSettings reads the power-up chip settings from NVRAM.
func (d *Device) NVChipSettings() (ChipSettings, error) {
	rsp, err := d.exchange(BuildGetNVRAMCmd(NVChipSettings))
	if err != nil {
		return ChipSettings{}, fmt.Errorf("get NVRAM chip settings: %w", err)
	}
	return ParseChipSettings(rsp)
}

// AccessControlMode reads the NVRAM write-protection state. It rides on
// the same NVRAM block as the power-up chip settings.
func (d *Device) AccessControlMode() (AccessMode, error) {
	rsp, err := d.exchange(BuildGetNVRAMCmd(NVChipSettings))
	if err != nil {
		return AccessFull, fmt.Errorf("get access control mode: %w", err)
	}
	return ParseAccessMode(rsp)
}

// NVSPISettings reads the power-up SPI transfer settings from NVRAM.
func (d *Device) NVSPISettings() (SPISettings, error) {
	rsp, err := d.exchange(BuildGetNVRAMCmd(NVSPISettings))
	if err != nil {
		return SPISettings{}, fmt.Errorf("get NVRAM SPI settings: %w", err)
	}
	return ParseSPISettings(rsp)
}

// ChipSettings reads the volatile chip settings currently in effect.
func (d *Device) ChipSettings() (ChipSettings, error) {
	rsp, err := d.exchange(BuildGetChipSettingsCmd())
	if err != nil {
		return ChipSettings{}, fmt.Errorf("get chip settings: %w", err)
	}
	return ParseChipSettings(rsp)
}

// SPISettings reads the volatile SPI transfer settings currently in
// effect.
func (d *Device) SPISettings() (SPISettings, error) {
	rsp, err := d.exchange(BuildGetSPISettingsCmd())
	if err != nil {
		return SPISettings{}, fmt.Errorf("get SPI settings: %w", err)
	}
	return ParseSPISettings(rsp)
}

// ConfigureSPISettings writes the volatile SPI transfer settings. The bit
// rate actually in effect afterwards may be lower than requested; read
// the settings back to observe it.
func (d *Device) ConfigureSPISettings(settings SPISettings) error {
	report, err := BuildSetSPISettingsCmd(settings)
	if err != nil {
		return err
	}
	if _, err := d.exchange(report); err != nil {
		return fmt.Errorf("configure SPI settings: %w", err)
	}
	return nil
}

// ConfigureChipSettings writes the volatile chip settings.
func (d *Device) ConfigureChipSettings(settings ChipSettings) error {
	if _, err := d.exchange(BuildSetChipSettingsCmd(settings)); err != nil {
		return fmt.Errorf("configure chip settings: %w", err)
	}
	return nil
}

// WriteManufacturerDesc writes the manufacturer string descriptor to
// NVRAM.
func (d *Device) WriteManufacturerDesc(manufacturer string) error {
	report, err := BuildWriteStringCmd(NVManufacturerName, manufacturer)
	if err != nil {
		return err
	}
	if _, err := d.exchange(report); err != nil {
		return fmt.Errorf("write manufacturer descriptor: %w", err)
	}
	return nil
}

// WriteProductDesc writes the product string descriptor to NVRAM.
func (d *Device) WriteProductDesc(product string) error {
	report, err := BuildWriteStringCmd(NVProductName, product)
	if err != nil {
		return err
	}
	if _, err := d.exchange(report); err != nil {
		return fmt.Errorf("write product descriptor: %w", err)
	}
	return nil
}

// WriteUSBParameters writes the USB key parameters to NVRAM.
func (d *Device) WriteUSBParameters(params USBParameters) error {
	if _, err := d.exchange(BuildWriteUSBParametersCmd(params)); err != nil {
		return fmt.Errorf("write USB parameters: %w", err)
	}
	return nil
}

// WriteNVChipSettings writes the power-up chip settings, the access
// control mode, and (for AccessPassword) the new password to NVRAM.
func (d *Device) WriteNVChipSettings(settings ChipSettings, mode AccessMode, password string) error {
	report, err := BuildWriteNVChipSettingsCmd(settings, mode, password)
	if err != nil {
		return err
	}
	if _, err := d.exchange(report); err != nil {
		return fmt.Errorf("write NVRAM chip settings: %w", err)
	}
	return nil
}

// WriteNVSPISettings writes the power-up SPI transfer settings to NVRAM.
func (d *Device) WriteNVSPISettings(settings SPISettings) error {
	report, err := BuildWriteNVSPISettingsCmd(settings)
	if err != nil {
		return err
	}
	if _, err := d.exchange(report); err != nil {
		return fmt.Errorf("write NVRAM SPI settings: %w", err)
	}
	return nil
}

// UsePassword submits the NVRAM access password. A refused password is
// reported through the PasswordStatus, not through the error, which is
// reserved for transport failures.
func (d *Device) UsePassword(password string) (PasswordStatus, error) {
	report, err := BuildSendPasswordCmd(password)
	if err != nil {
		return PasswordRejected, err
	}
	rsp, err := d.exchangeRaw(report)
	if err != nil {
		return PasswordRejected, fmt.Errorf("use password: %w", err)
	}
	return ParsePasswordStatus(rsp[1]), nil
}

// ReadEEPROM reads one byte from the user EEPROM.
func (d *Device) ReadEEPROM(addr byte) (byte, error) {
	rsp, err := d.exchange(BuildReadEEPROMCmd(addr))
	if err != nil {
		return 0, fmt.Errorf("read EEPROM address 0x%02X: %w", addr, err)
	}
	return ParseEEPROMByte(rsp)
}

// WriteEEPROM writes one byte to the user EEPROM.
func (d *Device) WriteEEPROM(addr byte, value byte) error {
	if _, err := d.exchange(BuildWriteEEPROMCmd(addr, value)); err != nil {
		return fmt.Errorf("write EEPROM address 0x%02X: %w", addr, err)
	}
	return nil
}
