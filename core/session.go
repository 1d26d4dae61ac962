package core

import (
	"sync"

	"github.com/google/uuid"
)

// Session runs the edit loop for one generator: every candidate settings
// value is corrected by constraints calibrated against the previous
// result, and the corrected value becomes the next current settings.
// Safe for concurrent use; updates are serialized.
type Session[P any, S any] struct {
	compile func(P) DynamicConstraints[S]
	logger  Logger

	mu          sync.RWMutex
	constraints DynamicConstraints[S]
	fingerprint uuid.UUID
	current     S
	complete    bool
}

// NewPasswordSession starts a password session. initial is corrected
// before it becomes the current settings.
func NewPasswordSession(compiler *Compiler, policy PasswordPolicy, initial PasswordSettings) *Session[PasswordPolicy, PasswordSettings] {
	if compiler == nil {
		compiler = defaultCompiler
	}
	compile := func(p PasswordPolicy) DynamicConstraints[PasswordSettings] {
		return compiler.CompilePassword(p).Dynamic()
	}
	return newSession(compile, compiler.log(), policy, initial)
}

// NewPassphraseSession starts a passphrase session.
func NewPassphraseSession(compiler *Compiler, policy PassphrasePolicy, initial PassphraseSettings) *Session[PassphrasePolicy, PassphraseSettings] {
	if compiler == nil {
		compiler = defaultCompiler
	}
	compile := func(p PassphrasePolicy) DynamicConstraints[PassphraseSettings] {
		return compiler.CompilePassphrase(p).Dynamic()
	}
	return newSession(compile, compiler.log(), policy, initial)
}

func newSession[P any, S any](compile func(P) DynamicConstraints[S], logger Logger, policy P, initial S) *Session[P, S] {
	s := &Session[P, S]{
		compile: compile,
		logger:  logger,
	}
	s.fingerprint = s.fingerprintOf(policy)
	s.constraints = compile(policy)
	s.current = s.constraints.Calibrate(initial).Adjust(initial)
	return s
}

// Current returns the current settings.
func (s *Session[P, S]) Current() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update corrects candidate against constraints calibrated from the
// current settings and stores the result.
func (s *Session[P, S]) Update(candidate S) (S, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete {
		return s.current, ErrSessionComplete
	}

	adjusted := s.constraints.Calibrate(s.current).Adjust(candidate)
	if changes := Changes(candidate, adjusted); len(changes) > 0 {
		s.logger.Debug("settings corrected by policy", "changes", len(changes))
	}
	s.current = adjusted
	return adjusted, nil
}

// SetPolicy recompiles the session against policy and corrects the current
// settings. It reports false, and does nothing, when policy has the same
// fingerprint as the active one.
func (s *Session[P, S]) SetPolicy(policy P) (S, bool) {
	fingerprint := s.fingerprintOf(policy)

	s.mu.Lock()
	defer s.mu.Unlock()

	if fingerprint != uuid.Nil && fingerprint == s.fingerprint {
		return s.current, false
	}

	s.fingerprint = fingerprint
	s.constraints = s.compile(policy)
	s.current = s.constraints.Calibrate(s.current).Adjust(s.current)
	s.logger.Info("generator policy changed", "fingerprint", fingerprint.String())
	return s.current, true
}

// Complete finalizes the current settings and closes the session to
// further updates. Calling it again returns the finalized settings.
func (s *Session[P, S]) Complete() S {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.complete {
		s.current = s.constraints.Calibrate(s.current).Finalize(s.current)
		s.complete = true
	}
	return s.current
}

// Fingerprint returns the fingerprint of the active policy, or uuid.Nil
// when it could not be computed.
func (s *Session[P, S]) Fingerprint() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

func (s *Session[P, S]) fingerprintOf(policy P) uuid.UUID {
	fingerprint, err := Fingerprint(policy)
	if err != nil {
		s.logger.Warn("policy fingerprint unavailable", "error", err)
		return uuid.Nil
	}
	return fingerprint
}
