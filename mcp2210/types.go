package mcp2210

// PinFunction selects what a general-purpose pin does.
type PinFunction byte

const (
	// PinGPIO makes the pin an ordinary digital input or output
	PinGPIO PinFunction = 0x00

	// PinChipSelect assigns the pin to the SPI chip-select block
	PinChipSelect PinFunction = 0x01

	// PinDedicated assigns the pin its dedicated chip function
	// (interrupt counter, SPI activity LED, etc., depending on the pin)
	PinDedicated PinFunction = 0x02
)

// String returns a human-readable name for the pin function.
func (f PinFunction) String() string {
	switch f {
	case PinGPIO:
		return "GPIO"
	case PinChipSelect:
		return "chip select"
	case PinDedicated:
		return "dedicated function"
	default:
		return "invalid"
	}
}

// PinDirection is the I/O direction of a pin configured as GPIO.
// The zero value is input, matching the chip's power-on default.
type PinDirection byte

const (
	// PinInput reads the pin
	PinInput PinDirection = 0x00

	// PinOutput drives the pin
	PinOutput PinDirection = 0x01
)

// PinConfig describes one general-purpose pin: its function, its GPIO
// direction, and the value it drives at power-up when configured as an
// output. Direction and DefaultOutput are only meaningful for PinGPIO.
type PinConfig struct {
	Function      PinFunction
	Direction     PinDirection
	DefaultOutput bool
}

// InterruptMode selects what the dedicated interrupt-counting pin counts.
type InterruptMode byte

const (
	// InterruptNone disables event counting
	InterruptNone InterruptMode = 0x00

	// InterruptFallingEdge counts falling edges
	InterruptFallingEdge InterruptMode = 0x01

	// InterruptRisingEdge counts rising edges
	InterruptRisingEdge InterruptMode = 0x02

	// InterruptLowPulse counts low pulses
	InterruptLowPulse InterruptMode = 0x03

	// InterruptHighPulse counts high pulses
	InterruptHighPulse InterruptMode = 0x04
)

// ChipSettings holds the general-purpose pin designations and the chip
// behavior flags, as stored in NVRAM (power-up values) or in the volatile
// register bank (current values).
type ChipSettings struct {
	// GP configures pins GP0 through GP8. Pin 0 is the least significant
	// bit of the derived masks.
	GP [PinCount]PinConfig

	// RemoteWakeup enables USB remote wake-up from the interrupt pin
	RemoteWakeup bool

	// InterruptMode selects the event counted by the dedicated
	// interrupt-counting pin function
	InterruptMode InterruptMode

	// SPIBusCaptive keeps the SPI bus owned between transfers instead of
	// releasing it
	SPIBusCaptive bool
}

// DirectionMask packs the per-pin GPIO directions into the chip's wire
// format: pin 0 in bit 0, a set bit meaning input.
func (c ChipSettings) DirectionMask() uint16 {
	var mask uint16
	for i, pin := range c.GP {
		if pin.Direction == PinInput {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// DefaultOutputMask packs the per-pin power-up output values into the
// chip's wire format: pin 0 in bit 0, a set bit meaning driven high.
func (c ChipSettings) DefaultOutputMask() uint16 {
	var mask uint16
	for i, pin := range c.GP {
		if pin.DefaultOutput {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

// PowerMode describes how the device reports drawing power on the bus.
type PowerMode byte

const (
	// PowerModeBus marks the device as bus-powered
	PowerModeBus PowerMode = 0x00

	// PowerModeSelf marks the device as self-powered
	PowerModeSelf PowerMode = 0x01
)

// USBParameters holds the USB enumeration values stored in NVRAM.
type USBParameters struct {
	// VID is the USB vendor ID
	VID uint16

	// PID is the USB product ID
	PID uint16

	// MaxPower is the requested bus current in raw descriptor units of
	// 2 mA (a value of 50 requests 100 mA)
	MaxPower uint8

	// PowerMode selects bus-powered or self-powered reporting
	PowerMode PowerMode

	// RemoteWakeup marks the device as remote wake-up capable
	RemoteWakeup bool
}

// SPISettings holds the SPI transfer parameters, volatile or power-up.
// Delay fields are in quanta of 100 microseconds.
type SPISettings struct {
	// BitRate is the SPI clock rate in Hz. The chip's divider only
	// produces discrete rates; writes are rounded down silently.
	BitRate uint32

	// Mode is the SPI mode (0-3)
	Mode uint8

	// IdleCSValue holds the chip-select line levels between transfers
	IdleCSValue uint16

	// ActiveCSValue holds the chip-select line levels during a transfer
	ActiveCSValue uint16

	// CSToDataDelay is the delay from chip-select assertion to the first
	// data byte
	CSToDataDelay uint16

	// DataToCSDelay is the delay from the last data byte to chip-select
	// de-assertion
	DataToCSDelay uint16

	// InterByteDelay is the delay between consecutive data bytes
	InterByteDelay uint16

	// BytesPerTransfer is the number of bytes exchanged per transaction
	BytesPerTransfer uint16
}

// AccessMode is the NVRAM write-protection state of the chip.
type AccessMode byte

const (
	// AccessFull allows NVRAM writes without restriction
	AccessFull AccessMode = 0x00

	// AccessPassword requires the password before NVRAM writes
	AccessPassword AccessMode = 0x40

	// AccessLocked permanently refuses NVRAM writes
	AccessLocked AccessMode = 0x80
)

// String returns a human-readable name for the access mode.
func (m AccessMode) String() string {
	switch m {
	case AccessFull:
		return "full access"
	case AccessPassword:
		return "password protected"
	case AccessLocked:
		return "permanently locked"
	default:
		return "unknown"
	}
}

// PasswordStatus is the outcome of submitting the NVRAM access password.
type PasswordStatus byte

const (
	// PasswordCompleted means the password was accepted and full NVRAM
	// write access is granted
	PasswordCompleted PasswordStatus = iota

	// PasswordBlocked means too many failed attempts; access stays
	// blocked until the device is power-cycled
	PasswordBlocked

	// PasswordRejected means access was refused for another reason,
	// typically a permanently locked part
	PasswordRejected

	// PasswordWrong means the password did not match
	PasswordWrong
)

// String returns a human-readable name for the password outcome.
func (s PasswordStatus) String() string {
	switch s {
	case PasswordCompleted:
		return "completed"
	case PasswordBlocked:
		return "blocked"
	case PasswordRejected:
		return "rejected"
	case PasswordWrong:
		return "wrong password"
	default:
		return "unknown"
	}
}

// Configuration aggregates everything the configurator reads from and
// writes to a device. Two instances exist per session: the device-resident
// configuration (last successful read) and the user's edited copy.
//
// Configuration is a comparable value type; equality is field-by-field.
type Configuration struct {
	// Manufacturer is the USB manufacturer string descriptor
	Manufacturer string

	// Product is the USB product string descriptor
	Product string

	// USBParameters holds the USB enumeration values
	USBParameters USBParameters

	// ChipSettings holds the power-up pin designations and chip flags
	ChipSettings ChipSettings

	// SPISettings holds the power-up SPI transfer parameters
	SPISettings SPISettings
}
