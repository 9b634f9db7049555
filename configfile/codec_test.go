package configfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mvieira/go-mcp2210/mcp2210"
)

const sampleDocument = `
manufacturer: Microchip Technology Inc.
product: MCP2210 USB-to-SPI Master
usb:
  vid: 04d8
  pid: 00de
  maxPower: 50
  selfPowered: true
  remoteWakeup: true
chip:
  pins:
    - function: chipSelect
    - function: gpio
      direction: output
      defaultOutput: true
    - function: dedicated
  remoteWakeup: true
  interruptMode: risingEdge
  spiBusCaptive: false
spi:
  bitRate: 1500000
  mode: 2
  idleChipSelect: 01ff
  activeChipSelect: 01fd
  csToDataDelay: 5
  dataToCsDelay: 7
  interByteDelay: 9
  bytesPerTransfer: 32
`

func TestLoadReader(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Manufacturer != "Microchip Technology Inc." {
		t.Errorf("manufacturer = %q", cfg.Manufacturer)
	}
	if cfg.USBParameters.VID != 0x04D8 || cfg.USBParameters.PID != 0x00DE {
		t.Errorf("vid:pid = %04x:%04x, want 04d8:00de", cfg.USBParameters.VID, cfg.USBParameters.PID)
	}
	if cfg.USBParameters.PowerMode != mcp2210.PowerModeSelf {
		t.Error("power mode should be self-powered")
	}
	if cfg.USBParameters.MaxPower != 50 {
		t.Errorf("max power = %d, want 50", cfg.USBParameters.MaxPower)
	}

	if cfg.ChipSettings.GP[0].Function != mcp2210.PinChipSelect {
		t.Errorf("pin 0 function = %v, want chip select", cfg.ChipSettings.GP[0].Function)
	}
	if cfg.ChipSettings.GP[1].Direction != mcp2210.PinOutput || !cfg.ChipSettings.GP[1].DefaultOutput {
		t.Error("pin 1 should be an output driven high")
	}
	if cfg.ChipSettings.GP[2].Function != mcp2210.PinDedicated {
		t.Errorf("pin 2 function = %v, want dedicated", cfg.ChipSettings.GP[2].Function)
	}
	// Unlisted pins keep the chip default: GPIO input.
	if cfg.ChipSettings.GP[8] != (mcp2210.PinConfig{}) {
		t.Errorf("pin 8 = %+v, want zero value", cfg.ChipSettings.GP[8])
	}
	if cfg.ChipSettings.InterruptMode != mcp2210.InterruptRisingEdge {
		t.Errorf("interrupt mode = %v, want rising edge", cfg.ChipSettings.InterruptMode)
	}

	wantSPI := mcp2210.SPISettings{
		BitRate:          1500000,
		Mode:             2,
		IdleCSValue:      0x01FF,
		ActiveCSValue:    0x01FD,
		CSToDataDelay:    5,
		DataToCSDelay:    7,
		InterByteDelay:   9,
		BytesPerTransfer: 32,
	}
	if cfg.SPISettings != wantSPI {
		t.Errorf("spi settings = %+v, want %+v", cfg.SPISettings, wantSPI)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	var want mcp2210.Configuration
	want.Manufacturer = "Microchip Technology Inc."
	want.Product = "MCP2210 USB-to-SPI Master"
	want.USBParameters = mcp2210.USBParameters{
		VID:       mcp2210.VID,
		PID:       mcp2210.PID,
		MaxPower:  50,
		PowerMode: mcp2210.PowerModeSelf,
	}
	want.ChipSettings.GP[0].Function = mcp2210.PinChipSelect
	want.ChipSettings.GP[4].Direction = mcp2210.PinOutput
	want.ChipSettings.GP[4].DefaultOutput = true
	want.ChipSettings.InterruptMode = mcp2210.InterruptLowPulse
	want.SPISettings = mcp2210.SPISettings{
		BitRate:          5859375,
		Mode:             3,
		IdleCSValue:      0x01FF,
		ActiveCSValue:    0x01FE,
		BytesPerTransfer: 64,
	}

	var buf bytes.Buffer
	if err := SaveWriter(&buf, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := LoadReader(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadReaderRejects(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "malformed yaml",
			document: "usb: [",
		},
		{
			name:     "bad vid",
			document: "usb:\n  vid: zz04\n",
		},
		{
			name:     "vid too wide",
			document: "usb:\n  vid: 10000\n",
		},
		{
			name:     "max power over limit",
			document: "usb:\n  maxPower: 300\n",
		},
		{
			name:     "spi mode out of range",
			document: "spi:\n  mode: 4\n",
		},
		{
			name:     "too many pins",
			document: "chip:\n  pins:\n" + strings.Repeat("    - function: gpio\n", 10),
		},
		{
			name:     "unknown pin function",
			document: "chip:\n  pins:\n    - function: pwm\n",
		},
		{
			name:     "unknown interrupt mode",
			document: "chip:\n  interruptMode: bothEdges\n",
		},
		{
			name:     "manufacturer too long",
			document: "manufacturer: " + strings.Repeat("x", 30) + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadReader(strings.NewReader(tt.document)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestHexPrefixAccepted(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader("usb:\n  vid: \"0x04d8\"\n  pid: \"0x00de\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.USBParameters.VID != 0x04D8 {
		t.Errorf("vid = %04x, want 04d8", cfg.USBParameters.VID)
	}
}
