package platform

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

//go:generate mockgen -source=strategy.go -destination=strategy_mock.go -package=platform

var (
	// ErrUnsupportedPlatform is returned when no strategy matches the running OS.
	ErrUnsupportedPlatform = errors.New("no supported platform")

	// ErrCommandBuild is returned when CreateCommand is given an empty event action.
	ErrCommandBuild = errors.New("invalid event action")

	// ErrCommandRejected is returned when a built command fails validation.
	// This indicates a broken strategy template, not bad user input.
	ErrCommandRejected = errors.New("generated command rejected by validator")
)

// Strategy builds the notification command for one operating system.
type Strategy interface {
	// Supported reports whether the strategy applies to the running OS.
	Supported() bool

	// ID returns the platform identifier.
	ID() string

	// SupportsSound reports whether the platform can play a notification sound.
	SupportsSound() bool

	// CreateCommand renders a complete, validated command string announcing
	// the given event action, with an optional sound clause.
	CreateCommand(action string, withSound bool) (string, error)
}

// Registry holds strategies in a fixed priority order. It is an immutable
// value built once at startup; tests construct registries around fake
// strategies instead of mutating shared state.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a registry resolving strategies in the given order.
func NewRegistry(strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// DefaultRegistry creates a registry of all built-in strategies for the
// running OS.
func DefaultRegistry() *Registry {
	return DefaultRegistryFor(runtime.GOOS)
}

// DefaultRegistryFor creates the built-in registry for an explicit GOOS value.
func DefaultRegistryFor(goos string) *Registry {
	return NewRegistry(
		NewDarwinStrategy(goos),
		NewLinuxStrategy(goos),
		NewWindowsStrategy(goos),
	)
}

// Resolve returns the first strategy that supports the running OS.
//
//nolint:ireturn // resolving to the capability interface is the point
func (r *Registry) Resolve() (Strategy, error) {
	for _, strategy := range r.strategies {
		if strategy.Supported() {
			return strategy, nil
		}
	}

	return nil, ErrUnsupportedPlatform
}

// AnySupported reports whether any strategy supports the running OS.
func (r *Registry) AnySupported() bool {
	_, err := r.Resolve()

	return err == nil
}

// Strategies returns a copy of the registry's strategy list.
func (r *Registry) Strategies() []Strategy {
	out := make([]Strategy, len(r.strategies))
	copy(out, r.strategies)

	return out
}
