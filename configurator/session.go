package configurator

import (
	"sync"

	"github.com/mvieira/go-mcp2210/mcp2210"
)

// Session owns one configuration session over one open device. It holds
// the device-resident configuration (last successful read), the user's
// edited copy, and the access mode read from hardware.
//
// A session permits one operation at a time; ReadDeviceConfiguration,
// Configure, Run and NearestCompatibleBitRate are mutually exclusive
// critical sections over the device handle.
type Session struct {
	mu      sync.Mutex
	channel Channel
	config  Config

	device mcp2210.Configuration
	edited mcp2210.Configuration
	access mcp2210.AccessMode
}

// NewSession creates a new Session over the given channel.
//
// Example:
//
//	dev, _ := mcp2210.Open(mcp2210.VID, mcp2210.PID, "")
//	session := configurator.NewSession(dev,
//	    configurator.WithProgressCallback(progressFunc),
//	)
func NewSession(channel Channel, opts ...Option) *Session {
	if channel == nil {
		panic("channel cannot be nil")
	}

	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		channel: channel,
		config:  cfg,
	}
}

// DeviceConfiguration returns the device-resident configuration captured
// by the last successful read. Zero value before the first read.
func (s *Session) DeviceConfiguration() mcp2210.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device
}

// EditedConfiguration returns the session's working copy.
func (s *Session) EditedConfiguration() mcp2210.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edited
}

// SetEditedConfiguration replaces the session's working copy. Configure
// diffs this copy against the device-resident configuration.
func (s *Session) SetEditedConfiguration(cfg mcp2210.Configuration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edited = cfg
}

// AccessMode returns the NVRAM write-protection state captured by the last
// successful read.
func (s *Session) AccessMode() mcp2210.AccessMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// ReadDeviceConfiguration reads the full configuration and the access
// control mode from the device. On success the device-resident copy and
// the working copy are both replaced, so a subsequent Configure with an
// untouched working copy only verifies. On failure neither copy changes.
func (s *Session) ReadDeviceConfiguration() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := s.readDeviceConfiguration()
	if outcome.OK() {
		s.edited = s.device
	}
	return outcome
}

// readDeviceConfiguration performs the six reads, collecting errors rather
// than stopping, so a single outcome can report everything that failed.
// The session copy is replaced only when every read succeeded. Callers
// must hold the mutex.
func (s *Session) readDeviceConfiguration() Outcome {
	var (
		errs   []error
		read   mcp2210.Configuration
		access mcp2210.AccessMode
		err    error
	)

	if read.Manufacturer, err = s.channel.ManufacturerDesc(); err != nil {
		errs = append(errs, err)
	}
	if read.Product, err = s.channel.ProductDesc(); err != nil {
		errs = append(errs, err)
	}
	if read.USBParameters, err = s.channel.USBParameters(); err != nil {
		errs = append(errs, err)
	}
	if read.ChipSettings, err = s.channel.NVChipSettings(); err != nil {
		errs = append(errs, err)
	}
	if read.SPISettings, err = s.channel.NVSPISettings(); err != nil {
		errs = append(errs, err)
	}
	if access, err = s.channel.AccessControlMode(); err != nil {
		errs = append(errs, err)
	}

	outcome := Validate("read device configuration", errs, s.channel.Disconnected())
	if outcome.OK() {
		s.device = read
		s.access = access
	}
	return outcome
}

// Configure builds the task list for the current edited configuration and
// runs it. When applyImmediately is set, differing chip and SPI settings
// are additionally written to the volatile register bank after
// verification.
func (s *Session) Configure(applyImmediately bool) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(BuildTaskList(s.edited, s.device, applyImmediately))
}

// Run executes an explicit task list. Tasks run strictly in order; the
// first failure stops the sequence and its outcome is returned unchanged.
// Fields written before the failing step stay written; NVRAM is
// one-time-programmable and cannot be rolled back.
func (s *Session) Run(tasks []Task) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run(tasks)
}

func (s *Session) run(tasks []Task) Outcome {
	for i, task := range tasks {
		s.reportProgress(TaskProgress{Task: task, Index: i, Total: len(tasks)})
		s.logDebug("running task", "task", task.String(), "index", i, "total", len(tasks))

		if outcome := s.runTask(task); !outcome.OK() {
			s.logError("task failed", "task", task.String(), "message", outcome.Message)
			return outcome
		}
	}
	s.logInfo("configuration complete", "tasks", len(tasks))
	return Outcome{}
}

// runTask dispatches one task to its device operation and validates the
// result.
func (s *Session) runTask(task Task) Outcome {
	switch task {
	case TaskWriteManufacturerDesc:
		return s.validate(task, s.channel.WriteManufacturerDesc(s.edited.Manufacturer))
	case TaskWriteProductDesc:
		return s.validate(task, s.channel.WriteProductDesc(s.edited.Product))
	case TaskWriteUSBParameters:
		return s.validate(task, s.channel.WriteUSBParameters(s.edited.USBParameters))
	case TaskWriteChipSettings:
		return s.validate(task, s.channel.WriteNVChipSettings(s.edited.ChipSettings, s.config.AccessMode, s.config.Password))
	case TaskVerifyConfiguration:
		return s.verifyConfiguration()
	case TaskApplyChipSettings:
		return s.validate(task, s.channel.ConfigureChipSettings(s.edited.ChipSettings))
	case TaskApplySPISettings:
		return s.validate(task, s.channel.ConfigureSPISettings(s.edited.SPISettings))
	default:
		return Validate(task.String(), []error{errUnknownTask(task)}, false)
	}
}

// verifyConfiguration re-reads the device configuration and compares it
// field by field against the edited configuration. A mismatch is a
// verification failure, distinct from a transport error.
func (s *Session) verifyConfiguration() Outcome {
	if outcome := s.readDeviceConfiguration(); !outcome.OK() {
		return outcome
	}
	if s.device != s.edited {
		return Outcome{Failed: true, Message: "Failed verification."}
	}
	return Outcome{}
}

// validate wraps a single device operation result for the given task.
func (s *Session) validate(task Task, err error) Outcome {
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	return Validate(task.String(), errs, s.channel.Disconnected())
}

// UsePassword submits the NVRAM access password to the device. The status
// distinguishes a wrong password from a blocked or locked part; the error
// is reserved for transport failures.
func (s *Session) UsePassword(password string) (mcp2210.PasswordStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channel.UsePassword(password)
}

func (s *Session) reportProgress(p TaskProgress) {
	if s.config.ProgressCallback != nil {
		s.config.ProgressCallback(p)
	}
}

func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (s *Session) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

func (s *Session) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
