package configurator

import "github.com/mvieira/go-mcp2210/mcp2210"

// Config holds the session configuration.
type Config struct {
	// ProgressCallback is called before each task of a configuration
	// sequence (optional)
	ProgressCallback TaskProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// AccessMode is the NVRAM write-protection state written together with
	// the chip settings. Default is full access.
	AccessMode mcp2210.AccessMode

	// Password is the new NVRAM password written when AccessMode is
	// password protected
	Password string
}

// Option is a functional option for configuring the Session.
type Option func(*Config)

// WithProgressCallback sets a callback invoked before each task of a
// configuration sequence.
//
// Example:
//
//	session := configurator.NewSession(dev,
//	    configurator.WithProgressCallback(func(p configurator.TaskProgress) {
//	        fmt.Printf("%d/%d %s\n", p.Index+1, p.Total, p.Task)
//	    }),
//	)
func WithProgressCallback(callback TaskProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the session operations.
//
// Example:
//
//	session := configurator.NewSession(dev, configurator.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithAccessMode sets the NVRAM write-protection state written together
// with the chip settings. Writing mcp2210.AccessLocked is irreversible.
//
// Example:
//
//	session := configurator.NewSession(dev,
//	    configurator.WithAccessMode(mcp2210.AccessPassword),
//	    configurator.WithPassword("secret"),
//	)
func WithAccessMode(mode mcp2210.AccessMode) Option {
	return func(c *Config) {
		c.AccessMode = mode
	}
}

// WithPassword sets the new NVRAM password written when the access mode is
// mcp2210.AccessPassword.
func WithPassword(password string) Option {
	return func(c *Config) {
		c.Password = password
	}
}
