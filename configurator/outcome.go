package configurator

import (
	"errors"
	"fmt"
	"strings"
)

// ReconnectMessage is the fixed message reported when an operation fails
// because the device dropped off the bus.
const ReconnectMessage = "Device disconnected.\n\nPlease reconnect it and try again."

// Outcome is the result of one device operation or one configuration
// sequence. It is produced per call and never persisted.
type Outcome struct {
	// Failed reports whether the operation failed
	Failed bool

	// Disconnected reports whether the failure was caused by the device
	// dropping off the bus
	Disconnected bool

	// Message holds the user-facing failure description; empty on success
	Message string
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool { return !o.Failed }

// Err returns the outcome as an error: nil on success, the message
// otherwise.
func (o Outcome) Err() error {
	if !o.Failed {
		return nil
	}
	return errors.New(o.Message)
}

// Validate classifies the errors accumulated by a device operation into a
// single outcome.
//
// No errors means success, regardless of anything else. If the channel
// reports the device disconnected, the outcome carries the fixed reconnect
// prompt and the individual error messages are discarded; the disconnect
// is the actual cause and the accumulated errors are its symptoms.
// Otherwise the outcome message names the failed operation and lists every
// error on its own bulleted line.
func Validate(operation string, errs []error, disconnected bool) Outcome {
	if len(errs) == 0 {
		return Outcome{}
	}
	if disconnected {
		return Outcome{Failed: true, Disconnected: true, Message: ReconnectMessage}
	}

	noun := "error"
	if len(errs) > 1 {
		noun = "errors"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Failed to %s. The operation returned the following %s:", operation, noun)
	for _, err := range errs {
		b.WriteString("\n– ")
		b.WriteString(err.Error())
	}
	return Outcome{Failed: true, Message: b.String()}
}
