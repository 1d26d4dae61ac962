package core

import "sync"

// Logger is the logging surface the engine writes to. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultLogger discards everything.
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(msg string, args ...any) {}
func (l *DefaultLogger) Info(msg string, args ...any)  {}
func (l *DefaultLogger) Warn(msg string, args ...any)  {}
func (l *DefaultLogger) Error(msg string, args ...any) {}

// Compiler turns administrator policies into constraints against a fixed
// set of system limits. Safe for concurrent use.
type Compiler struct {
	defaults Defaults

	mu     sync.RWMutex
	logger Logger
}

// NewCompiler returns a compiler using the built-in system limits.
func NewCompiler() *Compiler {
	return NewCompilerWithDefaults(DefaultBoundaries())
}

// NewCompilerWithDefaults returns a compiler using the given system limits.
func NewCompilerWithDefaults(defaults Defaults) *Compiler {
	return &Compiler{
		defaults: defaults,
		logger:   &DefaultLogger{},
	}
}

// SetLogger sets the logger for the compiler.
func (c *Compiler) SetLogger(logger Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if logger == nil {
		logger = &DefaultLogger{}
	}
	c.logger = logger
}

// Defaults returns the system limits the compiler was built with.
func (c *Compiler) Defaults() Defaults {
	return c.defaults
}

func (c *Compiler) log() Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

var defaultCompiler = NewCompiler()

// CompilePassword compiles policy against the built-in system limits.
func CompilePassword(policy PasswordPolicy) PasswordPolicyConstraints {
	return defaultCompiler.CompilePassword(policy)
}

// CompilePassphrase compiles policy against the built-in system limits.
func CompilePassphrase(policy PassphrasePolicy) PassphrasePolicyConstraints {
	return defaultCompiler.CompilePassphrase(policy)
}

// readonlyTrueWhen locks a toggle on when enabled and leaves it
// unconstrained otherwise.
func readonlyTrueWhen(enabled bool) *Flag {
	return Maybe(enabled, MaybeReadonly(enabled, RequiresTrue()))
}

func (f *Flag) required() bool {
	return f != nil && f.RequiredValue
}
