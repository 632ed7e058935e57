package trampoline

// Step is what a trampolined body returns. It is either a settled value or a
// deferred call the driver still has to run.
type Step[O any] interface {
	// settled returns the final value, or false while a call is pending.
	settled() (O, bool)
}

type done[O any] struct {
	value O
}

func (d done[O]) settled() (O, bool) { return d.value, true }

// tailCall defers handle. target is the callee, kept for diagnostics.
type tailCall[O any] struct {
	target any
	handle func() Step[O]
}

func (tailCall[O]) settled() (O, bool) {
	var zero O
	return zero, false
}

// Done settles a trampolined computation with v.
func Done[O any](v O) Step[O] {
	return done[O]{value: v}
}

// IsDeferred reports whether s still has a call to run.
func IsDeferred[O any](s Step[O]) bool {
	_, ok := s.(tailCall[O])
	return ok
}

// Value returns the settled value of s, or false when s is deferred.
func Value[O any](s Step[O]) (O, bool) {
	if s == nil {
		var zero O
		return zero, false
	}
	return s.settled()
}

// Run drives a hand-built step to its final value.
func Run[O any](s Step[O], config ...Config) O {
	return mustSettle[O](drive(func() Step[O] { return s }, normalizeConfig(config), false))
}
