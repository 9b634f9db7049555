package mcp2210

import (
	"errors"
	"fmt"
)

// Errors returned by Open.
var (
	// ErrInit indicates the USB HID layer failed to initialize. This is
	// unrecoverable for the process.
	ErrInit = errors.New("USB HID layer failed to initialize")

	// ErrNotFound indicates no matching device was enumerated.
	ErrNotFound = errors.New("device not found")

	// ErrBusy indicates the device exists but its interface could not be
	// claimed, usually because another program holds it open.
	ErrBusy = errors.New("device is currently unavailable")
)

// ErrClosed is returned by operations on a device that is not open.
var ErrClosed = errors.New("device is not open")

// CommandError represents a command the chip received but refused.
// Contains the status code from the response report.
type CommandError struct {
	// Command is the command code that failed
	Command byte

	// Status is the status byte from the response
	Status byte
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command 0x%02X failed: %s (0x%02X)", e.Command, statusName(e.Status), e.Status)
}

// IsCommandError returns true if the error is a *CommandError.
func IsCommandError(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}

// statusName returns a human-readable name for a response status code.
func statusName(status byte) string {
	switch status {
	case StatusSuccess:
		return "success"
	case StatusBusy:
		return "SPI transfer in progress"
	case StatusUnknownCommand:
		return "unknown command"
	case StatusWriteFailure:
		return "write failure"
	case StatusAccessDenied:
		return "access denied"
	case StatusAccessRejected:
		return "access rejected"
	case StatusWrongPassword:
		return "wrong password"
	default:
		return fmt.Sprintf("unknown status 0x%02X", status)
	}
}
