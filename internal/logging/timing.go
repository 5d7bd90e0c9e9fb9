package logging

import "time"

// Timer measures one operation started with Start.
type Timer struct {
	name  string
	start time.Time
	attrs []any
}

// Start begins timing an operation. Attributes are logged with the result.
func Start(name string, attrs ...any) Timer {
	return Timer{name: name, start: time.Now(), attrs: attrs}
}

// End logs the elapsed time at debug level.
func (t Timer) End(extra ...any) time.Duration {
	elapsed := time.Since(t.start)
	if IsEnabled() {
		args := append([]any{"duration", elapsed.String(), "ms", elapsed.Milliseconds()}, t.attrs...)
		Get().Debug(t.name, append(args, extra...)...)
	}
	return elapsed
}

// Time runs fn and logs how long it took.
//
// Example:
//
//	logging.Time("load profile", func() {
//	    profile, err = config.Load(path)
//	})
func Time(name string, fn func()) {
	t := Start(name)
	fn()
	t.End()
}
