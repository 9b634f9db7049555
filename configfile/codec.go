// Package configfile reads and writes MCP2210 configurations as YAML
// documents, so a device setup can be kept in version control and applied
// to any number of parts.
//
// Numeric USB identifiers and chip-select masks are stored as hexadecimal
// strings, matching how datasheets and lsusb print them.
package configfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mvieira/go-mcp2210/mcp2210"
)

// fileConfiguration is the YAML document schema. It is deliberately
// separate from the wire-level structs so the file format can stay stable
// across driver changes.
type fileConfiguration struct {
	Manufacturer string   `yaml:"manufacturer"`
	Product      string   `yaml:"product"`
	USB          fileUSB  `yaml:"usb"`
	Chip         fileChip `yaml:"chip"`
	SPI          fileSPI  `yaml:"spi"`
}

type fileUSB struct {
	VID          string `yaml:"vid"`
	PID          string `yaml:"pid"`
	MaxPower     uint16 `yaml:"maxPower"`
	SelfPowered  bool   `yaml:"selfPowered"`
	RemoteWakeup bool   `yaml:"remoteWakeup"`
}

type fileChip struct {
	Pins          []filePin `yaml:"pins"`
	RemoteWakeup  bool      `yaml:"remoteWakeup"`
	InterruptMode string    `yaml:"interruptMode"`
	SPIBusCaptive bool      `yaml:"spiBusCaptive"`
}

type filePin struct {
	Function      string `yaml:"function"`
	Direction     string `yaml:"direction,omitempty"`
	DefaultOutput bool   `yaml:"defaultOutput,omitempty"`
}

type fileSPI struct {
	BitRate          uint32 `yaml:"bitRate"`
	Mode             uint8  `yaml:"mode"`
	IdleChipSelect   string `yaml:"idleChipSelect"`
	ActiveChipSelect string `yaml:"activeChipSelect"`
	CSToDataDelay    uint16 `yaml:"csToDataDelay"`
	DataToCSDelay    uint16 `yaml:"dataToCsDelay"`
	InterByteDelay   uint16 `yaml:"interByteDelay"`
	BytesPerTransfer uint16 `yaml:"bytesPerTransfer"`
}

// Load reads a configuration from the YAML file at path.
func Load(path string) (mcp2210.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return mcp2210.Configuration{}, err
	}
	defer f.Close()

	cfg, err := LoadReader(f)
	if err != nil {
		return mcp2210.Configuration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadReader reads a configuration from a YAML document.
func LoadReader(r io.Reader) (mcp2210.Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return mcp2210.Configuration{}, err
	}

	var file fileConfiguration
	if err := yaml.Unmarshal(data, &file); err != nil {
		return mcp2210.Configuration{}, fmt.Errorf("parse configuration: %w", err)
	}
	return file.toConfiguration()
}

// Save writes a configuration as a YAML file at path, replacing any
// existing file.
func Save(path string, cfg mcp2210.Configuration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SaveWriter(f, cfg); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// SaveWriter writes a configuration as a YAML document.
func SaveWriter(w io.Writer, cfg mcp2210.Configuration) error {
	data, err := yaml.Marshal(fromConfiguration(cfg))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (f fileConfiguration) toConfiguration() (mcp2210.Configuration, error) {
	var cfg mcp2210.Configuration

	if len(f.Manufacturer) > mcp2210.DescriptorMaxChars {
		return cfg, fmt.Errorf("manufacturer exceeds %d characters", mcp2210.DescriptorMaxChars)
	}
	if len(f.Product) > mcp2210.DescriptorMaxChars {
		return cfg, fmt.Errorf("product exceeds %d characters", mcp2210.DescriptorMaxChars)
	}
	cfg.Manufacturer = f.Manufacturer
	cfg.Product = f.Product

	vid, err := parseHex16("usb.vid", f.USB.VID)
	if err != nil {
		return cfg, err
	}
	pid, err := parseHex16("usb.pid", f.USB.PID)
	if err != nil {
		return cfg, err
	}
	if f.USB.MaxPower > mcp2210.MaxPowerMax {
		return cfg, fmt.Errorf("usb.maxPower %d exceeds the chip limit %d", f.USB.MaxPower, mcp2210.MaxPowerMax)
	}
	cfg.USBParameters = mcp2210.USBParameters{
		VID:          vid,
		PID:          pid,
		MaxPower:     uint8(f.USB.MaxPower),
		RemoteWakeup: f.USB.RemoteWakeup,
	}
	if f.USB.SelfPowered {
		cfg.USBParameters.PowerMode = mcp2210.PowerModeSelf
	}

	if len(f.Chip.Pins) > mcp2210.PinCount {
		return cfg, fmt.Errorf("chip.pins lists %d pins, the chip has %d", len(f.Chip.Pins), mcp2210.PinCount)
	}
	for i, pin := range f.Chip.Pins {
		parsed, err := pin.toPinConfig(i)
		if err != nil {
			return cfg, err
		}
		cfg.ChipSettings.GP[i] = parsed
	}
	cfg.ChipSettings.RemoteWakeup = f.Chip.RemoteWakeup
	cfg.ChipSettings.SPIBusCaptive = f.Chip.SPIBusCaptive
	cfg.ChipSettings.InterruptMode, err = parseInterruptMode(f.Chip.InterruptMode)
	if err != nil {
		return cfg, err
	}

	if f.SPI.Mode > mcp2210.SPIModeMax {
		return cfg, fmt.Errorf("spi.mode %d is out of range 0-%d", f.SPI.Mode, mcp2210.SPIModeMax)
	}
	idle, err := parseHex16("spi.idleChipSelect", f.SPI.IdleChipSelect)
	if err != nil {
		return cfg, err
	}
	active, err := parseHex16("spi.activeChipSelect", f.SPI.ActiveChipSelect)
	if err != nil {
		return cfg, err
	}
	cfg.SPISettings = mcp2210.SPISettings{
		BitRate:          f.SPI.BitRate,
		Mode:             f.SPI.Mode,
		IdleCSValue:      idle,
		ActiveCSValue:    active,
		CSToDataDelay:    f.SPI.CSToDataDelay,
		DataToCSDelay:    f.SPI.DataToCSDelay,
		InterByteDelay:   f.SPI.InterByteDelay,
		BytesPerTransfer: f.SPI.BytesPerTransfer,
	}
	return cfg, nil
}

func fromConfiguration(cfg mcp2210.Configuration) fileConfiguration {
	file := fileConfiguration{
		Manufacturer: cfg.Manufacturer,
		Product:      cfg.Product,
		USB: fileUSB{
			VID:          fmt.Sprintf("%04x", cfg.USBParameters.VID),
			PID:          fmt.Sprintf("%04x", cfg.USBParameters.PID),
			MaxPower:     uint16(cfg.USBParameters.MaxPower),
			SelfPowered:  cfg.USBParameters.PowerMode == mcp2210.PowerModeSelf,
			RemoteWakeup: cfg.USBParameters.RemoteWakeup,
		},
		Chip: fileChip{
			RemoteWakeup:  cfg.ChipSettings.RemoteWakeup,
			InterruptMode: interruptModeName(cfg.ChipSettings.InterruptMode),
			SPIBusCaptive: cfg.ChipSettings.SPIBusCaptive,
		},
		SPI: fileSPI{
			BitRate:          cfg.SPISettings.BitRate,
			Mode:             cfg.SPISettings.Mode,
			IdleChipSelect:   fmt.Sprintf("%04x", cfg.SPISettings.IdleCSValue),
			ActiveChipSelect: fmt.Sprintf("%04x", cfg.SPISettings.ActiveCSValue),
			CSToDataDelay:    cfg.SPISettings.CSToDataDelay,
			DataToCSDelay:    cfg.SPISettings.DataToCSDelay,
			InterByteDelay:   cfg.SPISettings.InterByteDelay,
			BytesPerTransfer: cfg.SPISettings.BytesPerTransfer,
		},
	}
	for _, pin := range cfg.ChipSettings.GP {
		file.Chip.Pins = append(file.Chip.Pins, fromPinConfig(pin))
	}
	return file
}

func (p filePin) toPinConfig(index int) (mcp2210.PinConfig, error) {
	var pin mcp2210.PinConfig

	switch p.Function {
	case "gpio", "":
		pin.Function = mcp2210.PinGPIO
	case "chipSelect":
		pin.Function = mcp2210.PinChipSelect
	case "dedicated":
		pin.Function = mcp2210.PinDedicated
	default:
		return pin, fmt.Errorf("chip.pins[%d].function %q is not gpio, chipSelect or dedicated", index, p.Function)
	}

	switch p.Direction {
	case "input", "":
		pin.Direction = mcp2210.PinInput
	case "output":
		pin.Direction = mcp2210.PinOutput
	default:
		return pin, fmt.Errorf("chip.pins[%d].direction %q is not input or output", index, p.Direction)
	}

	pin.DefaultOutput = p.DefaultOutput
	return pin, nil
}

func fromPinConfig(pin mcp2210.PinConfig) filePin {
	out := filePin{DefaultOutput: pin.DefaultOutput}

	switch pin.Function {
	case mcp2210.PinChipSelect:
		out.Function = "chipSelect"
	case mcp2210.PinDedicated:
		out.Function = "dedicated"
	default:
		out.Function = "gpio"
	}
	if pin.Direction == mcp2210.PinOutput {
		out.Direction = "output"
	} else {
		out.Direction = "input"
	}
	return out
}

func parseInterruptMode(name string) (mcp2210.InterruptMode, error) {
	switch name {
	case "none", "":
		return mcp2210.InterruptNone, nil
	case "fallingEdge":
		return mcp2210.InterruptFallingEdge, nil
	case "risingEdge":
		return mcp2210.InterruptRisingEdge, nil
	case "lowPulse":
		return mcp2210.InterruptLowPulse, nil
	case "highPulse":
		return mcp2210.InterruptHighPulse, nil
	default:
		return mcp2210.InterruptNone, fmt.Errorf("chip.interruptMode %q is not a known mode", name)
	}
}

func interruptModeName(mode mcp2210.InterruptMode) string {
	switch mode {
	case mcp2210.InterruptFallingEdge:
		return "fallingEdge"
	case mcp2210.InterruptRisingEdge:
		return "risingEdge"
	case mcp2210.InterruptLowPulse:
		return "lowPulse"
	case mcp2210.InterruptHighPulse:
		return "highPulse"
	default:
		return "none"
	}
}

func parseHex16(field, value string) (uint16, error) {
	if value == "" {
		return 0, nil
	}
	trimmed := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	parsed, err := strconv.ParseUint(trimmed, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a 16-bit hexadecimal value", field, value)
	}
	return uint16(parsed), nil
}
