package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager resolves filter expressions and named presets through one compiler
type Manager struct {
	compiler Compiler
	presets  map[string]string
	mu       sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithPresets registers named expressions
func WithPresets(presets map[string]string) ManagerOption {
	return func(m *Manager) {
		maps.Copy(m.presets, presets)
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler: NewExprCompiler(WithCache(100)),
		presets:  make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterPreset compiles and stores a named expression
func (m *Manager) RegisterPreset(name, expression string) error {
	if _, err := m.compiler.Compile(expression); err != nil {
		return fmt.Errorf("failed to compile preset '%s': %w", name, err)
	}

	m.mu.Lock()
	m.presets[name] = expression
	m.mu.Unlock()

	return nil
}

// Presets returns the registered preset names in order
func (m *Manager) Presets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Resolve picks the filter to apply: an explicit expression wins over a preset.
// It returns nil when neither is given.
func (m *Manager) Resolve(expression, preset string) (CompiledFilter, error) {
	if expression == "" && preset != "" {
		m.mu.RLock()
		presetExpr, ok := m.presets[preset]
		m.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, preset)
		}
		expression = presetExpr
	}

	if expression == "" {
		return nil, nil
	}
	return m.compiler.Compile(expression)
}

// Apply returns the records matching the filter. A nil filter matches everything.
// The first runtime failure aborts with an *EvaluationError.
func Apply[T any](filter CompiledFilter, records []T, env func(T) Env, describe func(T) string) ([]T, error) {
	if filter == nil {
		return records, nil
	}

	matches := make([]T, 0, len(records))
	for _, record := range records {
		ok, err := filter.Match(env(record))
		if err != nil {
			return nil, &EvaluationError{
				Expression: filter.Expression(),
				Record:     describe(record),
				Err:        err,
			}
		}
		if ok {
			matches = append(matches, record)
		}
	}
	return matches, nil
}
