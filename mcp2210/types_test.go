package mcp2210

import "testing"

func TestDirectionMask(t *testing.T) {
	tests := []struct {
		name     string
		settings ChipSettings
		want     uint16
	}{
		{
			name:     "zero value is all inputs",
			settings: ChipSettings{},
			want:     0x01FF,
		},
		{
			name: "all outputs",
			settings: func() ChipSettings {
				var c ChipSettings
				for i := range c.GP {
					c.GP[i].Direction = PinOutput
				}
				return c
			}(),
			want: 0x0000,
		},
		{
			name: "pin 0 output occupies bit 0",
			settings: func() ChipSettings {
				var c ChipSettings
				c.GP[0].Direction = PinOutput
				return c
			}(),
			want: 0x01FE,
		},
		{
			name: "pin 8 output occupies bit 8",
			settings: func() ChipSettings {
				var c ChipSettings
				c.GP[8].Direction = PinOutput
				return c
			}(),
			want: 0x00FF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.DirectionMask(); got != tt.want {
				t.Errorf("DirectionMask() = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestDefaultOutputMask(t *testing.T) {
	tests := []struct {
		name     string
		settings ChipSettings
		want     uint16
	}{
		{
			name:     "zero value drives nothing",
			settings: ChipSettings{},
			want:     0x0000,
		},
		{
			name: "pins 0 and 4 high",
			settings: func() ChipSettings {
				var c ChipSettings
				c.GP[0].DefaultOutput = true
				c.GP[4].DefaultOutput = true
				return c
			}(),
			want: 0x0011,
		},
		{
			name: "pin 8 high occupies bit 8",
			settings: func() ChipSettings {
				var c ChipSettings
				c.GP[8].DefaultOutput = true
				return c
			}(),
			want: 0x0100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.DefaultOutputMask(); got != tt.want {
				t.Errorf("DefaultOutputMask() = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestConfigurationComparable(t *testing.T) {
	a := Configuration{
		Manufacturer: "Microchip Technology Inc.",
		Product:      "MCP2210 USB-to-SPI Master",
		USBParameters: USBParameters{
			VID:      VID,
			PID:      PID,
			MaxPower: 50,
		},
	}
	b := a

	if a != b {
		t.Error("identical configurations compare unequal")
	}

	b.USBParameters.MaxPower = 60
	if a == b {
		t.Error("configurations differing in max power compare equal")
	}

	b = a
	b.ChipSettings.GP[3].Direction = PinOutput
	if a == b {
		t.Error("configurations differing in a pin direction compare equal")
	}
}

func TestAccessModeString(t *testing.T) {
	tests := []struct {
		mode AccessMode
		want string
	}{
		{AccessFull, "full access"},
		{AccessPassword, "password protected"},
		{AccessLocked, "permanently locked"},
		{AccessMode(0x55), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("AccessMode(0x%02X).String() = %q, want %q", byte(tt.mode), got, tt.want)
		}
	}
}

func TestPasswordStatusString(t *testing.T) {
	tests := []struct {
		status PasswordStatus
		want   string
	}{
		{PasswordCompleted, "completed"},
		{PasswordBlocked, "blocked"},
		{PasswordRejected, "rejected"},
		{PasswordWrong, "wrong password"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("PasswordStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
