package hostlog

// Facade: process-wide registration (Singleton + Facade).
var global = NewRegistrar()

// Install registers l as the process logger. See Registrar.Install.
func Install(l *Logger, hooks ...func(*Logger)) bool {
	return global.Install(l, hooks...)
}

// Register wraps a in a Logger with DefaultThreshold and installs it as the
// process logger. Only the first successful call in a process returns true;
// later calls return false and leave the installed logger untouched.
func Register(a Adapter, hooks ...func(*Logger)) bool {
	l, err := NewBuilder().
		WithAdapter(a).
		WithMinLevel(DefaultThreshold).
		Build()
	if err != nil {
		return false
	}
	return global.Install(l, hooks...)
}

// L returns the process logger. Before registration it returns a logger
// that drops every record.
func L() *Logger { return global.Logger() }

// Registered reports whether a process logger has been installed.
func Registered() bool { return global.Registered() }

// Enabled reports whether records at level would be delivered by the
// process logger. Before registration the Debug floor applies.
func Enabled(level Level) bool { return global.Enabled(level) }
