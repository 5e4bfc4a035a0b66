package hostlog

// Facade helpers using the process logger.
// Usage: hostlog.Info().Msgf("loaded %d signatures", n)

func Trace() Event { return L().Trace() }
func Debug() Event { return L().Debug() }
func Info() Event  { return L().Info() }
func Warn() Event  { return L().Warn() }
func Error() Event { return L().Error() }
