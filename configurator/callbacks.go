package configurator

// TaskProgress describes the position of a configuration sequence before a
// task executes. Passed to TaskProgressCallback.
type TaskProgress struct {
	// Task is the task about to run
	Task Task

	// Index is the task's position in the sequence (0-based)
	Index int

	// Total is the number of tasks in the sequence
	Total int
}

// TaskProgressCallback is called before each task of a configuration
// sequence runs. Implementations should return quickly; the device waits
// while the callback executes.
//
// Example:
//
//	session := configurator.NewSession(dev,
//	    configurator.WithProgressCallback(func(p configurator.TaskProgress) {
//	        fmt.Printf("[%d/%d] %s\n", p.Index+1, p.Total, p.Task)
//	    }),
//	)
type TaskProgressCallback func(TaskProgress)

// Logger is an optional logging interface that can be provided to the
// session. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	session := configurator.NewSession(dev, configurator.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
