package mcp2210

import (
	"encoding/binary"
	"errors"
	"testing"
)

// response builds a well-formed response report for the given command.
func response(cmd byte) []byte {
	rsp := make([]byte, ReportSize)
	rsp[0] = cmd
	rsp[1] = StatusSuccess
	return rsp
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		report  []byte
		cmd     byte
		wantErr bool
	}{
		{
			name:   "success",
			report: response(CmdGetNVRAM),
			cmd:    CmdGetNVRAM,
		},
		{
			name:    "short report",
			report:  make([]byte, 10),
			cmd:     CmdGetNVRAM,
			wantErr: true,
		},
		{
			name:    "wrong echo",
			report:  response(CmdGetSPISettings),
			cmd:     CmdGetNVRAM,
			wantErr: true,
		},
		{
			name: "chip refused",
			report: func() []byte {
				rsp := response(CmdSetNVRAM)
				rsp[1] = StatusAccessDenied
				return rsp
			}(),
			cmd:     CmdSetNVRAM,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.report, tt.cmd)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseResponseCommandError(t *testing.T) {
	rsp := response(CmdSetNVRAM)
	rsp[1] = StatusWriteFailure

	_, err := ParseResponse(rsp, CmdSetNVRAM)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error type = %T, want *CommandError", err)
	}
	if cmdErr.Command != CmdSetNVRAM {
		t.Errorf("Command = 0x%02X, want 0x%02X", cmdErr.Command, CmdSetNVRAM)
	}
	if cmdErr.Status != StatusWriteFailure {
		t.Errorf("Status = 0x%02X, want 0x%02X", cmdErr.Status, StatusWriteFailure)
	}
	if !IsCommandError(err) {
		t.Error("IsCommandError() = false, want true")
	}
}

func TestParseChipSettings(t *testing.T) {
	rsp := response(CmdGetNVRAM)
	rsp[4] = byte(PinChipSelect)  // GP0
	rsp[10] = byte(PinDedicated)  // GP6
	rsp[12] = byte(PinChipSelect) // GP8
	binary.LittleEndian.PutUint16(rsp[13:15], 0x0012)
	binary.LittleEndian.PutUint16(rsp[15:17], 0x01FD)
	rsp[17] = 1<<4 | byte(InterruptHighPulse)<<1 | 1

	settings, err := ParseChipSettings(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.GP[0].Function != PinChipSelect {
		t.Errorf("GP0 function = %v, want chip select", settings.GP[0].Function)
	}
	if settings.GP[6].Function != PinDedicated {
		t.Errorf("GP6 function = %v, want dedicated", settings.GP[6].Function)
	}
	if settings.GP[1].Direction != PinOutput {
		t.Errorf("GP1 direction = %v, want output", settings.GP[1].Direction)
	}
	if settings.GP[0].Direction != PinInput {
		t.Errorf("GP0 direction = %v, want input", settings.GP[0].Direction)
	}
	if !settings.GP[1].DefaultOutput || !settings.GP[4].DefaultOutput {
		t.Error("GP1 and GP4 default outputs should be high")
	}
	if settings.GP[0].DefaultOutput {
		t.Error("GP0 default output should be low")
	}
	if !settings.RemoteWakeup {
		t.Error("RemoteWakeup = false, want true")
	}
	if settings.InterruptMode != InterruptHighPulse {
		t.Errorf("InterruptMode = %v, want high pulse", settings.InterruptMode)
	}
	if !settings.SPIBusCaptive {
		t.Error("SPIBusCaptive = false, want true")
	}
}

func TestParseChipSettingsRoundTrip(t *testing.T) {
	var want ChipSettings
	want.GP[0].Function = PinChipSelect
	want.GP[3].Direction = PinOutput
	want.GP[3].DefaultOutput = true
	want.GP[8].Direction = PinOutput
	want.InterruptMode = InterruptFallingEdge
	want.RemoteWakeup = true

	report := BuildSetChipSettingsCmd(want)
	rsp := make([]byte, ReportSize)
	copy(rsp, report)
	rsp[0] = CmdGetChipSettings
	rsp[1] = StatusSuccess

	got, err := ParseChipSettings(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestParseAccessMode(t *testing.T) {
	tests := []struct {
		name    string
		value   byte
		want    AccessMode
		wantErr bool
	}{
		{"full", 0x00, AccessFull, false},
		{"password", 0x40, AccessPassword, false},
		{"locked", 0x80, AccessLocked, false},
		{"garbage", 0x7F, AccessFull, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsp := response(CmdGetNVRAM)
			rsp[18] = tt.value

			got, err := ParseAccessMode(rsp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAccessMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAccessMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSPISettings(t *testing.T) {
	rsp := response(CmdGetSPISettings)
	binary.LittleEndian.PutUint32(rsp[4:8], 5859375)
	binary.LittleEndian.PutUint16(rsp[8:10], 0x01FF)
	binary.LittleEndian.PutUint16(rsp[10:12], 0x01EE)
	binary.LittleEndian.PutUint16(rsp[12:14], 1)
	binary.LittleEndian.PutUint16(rsp[14:16], 2)
	binary.LittleEndian.PutUint16(rsp[16:18], 3)
	binary.LittleEndian.PutUint16(rsp[18:20], 64)
	rsp[20] = 3

	got, err := ParseSPISettings(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := SPISettings{
		BitRate:          5859375,
		Mode:             3,
		IdleCSValue:      0x01FF,
		ActiveCSValue:    0x01EE,
		CSToDataDelay:    1,
		DataToCSDelay:    2,
		InterByteDelay:   3,
		BytesPerTransfer: 64,
	}
	if got != want {
		t.Errorf("ParseSPISettings() = %+v, want %+v", got, want)
	}
}

func TestParseUSBParameters(t *testing.T) {
	rsp := response(CmdGetNVRAM)
	binary.LittleEndian.PutUint16(rsp[12:14], 0x04D8)
	binary.LittleEndian.PutUint16(rsp[14:16], 0x00DE)
	rsp[29] = 0xA0 // reserved bit + remote wake-up
	rsp[30] = 50

	got, err := ParseUSBParameters(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := USBParameters{
		VID:          0x04D8,
		PID:          0x00DE,
		MaxPower:     50,
		PowerMode:    PowerModeBus,
		RemoteWakeup: true,
	}
	if got != want {
		t.Errorf("ParseUSBParameters() = %+v, want %+v", got, want)
	}
}

func TestParseStringDescriptor(t *testing.T) {
	rsp := response(CmdGetNVRAM)
	const name = "MCP2210"
	rsp[4] = byte(2 + 2*len(name))
	rsp[5] = 0x03
	for i, r := range name {
		binary.LittleEndian.PutUint16(rsp[6+2*i:8+2*i], uint16(r))
	}

	got, err := ParseStringDescriptor(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != name {
		t.Errorf("ParseStringDescriptor() = %q, want %q", got, name)
	}
}

func TestParseStringDescriptorEmpty(t *testing.T) {
	rsp := response(CmdGetNVRAM)
	rsp[4] = 2
	rsp[5] = 0x03

	got, err := ParseStringDescriptor(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("ParseStringDescriptor() = %q, want empty", got)
	}
}

func TestParseStringDescriptorInvalid(t *testing.T) {
	tests := []struct {
		name   string
		length byte
		typ    byte
	}{
		{"zero length", 0, 0x03},
		{"odd length", 9, 0x03},
		{"over limit", 62, 0x03},
		{"wrong type", 16, 0x02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rsp := response(CmdGetNVRAM)
			rsp[4] = tt.length
			rsp[5] = tt.typ
			if _, err := ParseStringDescriptor(rsp); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseEEPROMByte(t *testing.T) {
	rsp := response(CmdReadEEPROM)
	rsp[3] = 0x5A

	got, err := ParseEEPROMByte(rsp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x5A {
		t.Errorf("ParseEEPROMByte() = 0x%02X, want 0x5A", got)
	}
}

func TestParsePasswordStatus(t *testing.T) {
	tests := []struct {
		status byte
		want   PasswordStatus
	}{
		{StatusSuccess, PasswordCompleted},
		{StatusAccessDenied, PasswordBlocked},
		{StatusWrongPassword, PasswordWrong},
		{StatusAccessRejected, PasswordRejected},
		{0x33, PasswordRejected},
	}

	for _, tt := range tests {
		if got := ParsePasswordStatus(tt.status); got != tt.want {
			t.Errorf("ParsePasswordStatus(0x%02X) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
