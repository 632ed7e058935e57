package trampoline

// runner holds what every arity of trampolined function shares.
type runner[O any] struct {
	config Config
}

func (r runner[O]) call(first func() Step[O]) O {
	return mustSettle[O](drive(first, r.config, false))
}

func (r runner[O]) tryCall(first func() Step[O]) (O, error) {
	o, _, err := drive(first, r.config, false)
	return o, err
}

func (r runner[O]) callWithStats(first func() Step[O]) (O, Stats) {
	o, stats, err := drive(first, r.config, true)
	if err != nil {
		panic(err)
	}
	return o, stats
}

// Fn1 is a trampolined function of 1 argument.
type Fn1[I1, O any] struct {
	runner[O]
	body func(I1) Step[O]
}

// Tco1 registers body as trampolined. The optional config bounds the number
// of bounces and sets the logger for every run.
func Tco1[I1, O any](body func(I1) Step[O], config ...Config) *Fn1[I1, O] {
	return &Fn1[I1, O]{runner: runner[O]{config: normalizeConfig(config)}, body: body}
}

// Call drives the body until it settles. It panics with ErrBounceLimit when
// the configured bound is exceeded.
func (f *Fn1[I1, O]) Call(i1 I1) O {
	return f.call(f.bind(i1))
}

// TryCall is like Call but returns ErrBounceLimit instead of panicking.
func (f *Fn1[I1, O]) TryCall(i1 I1) (O, error) {
	return f.tryCall(f.bind(i1))
}

// CallWithStats is like Call and also reports the run id, bounce count and
// time span of the run.
func (f *Fn1[I1, O]) CallWithStats(i1 I1) (O, Stats) {
	return f.callWithStats(f.bind(i1))
}

// Body runs the body once without a driver. A tail call comes back as a
// deferred step.
func (f *Fn1[I1, O]) Body(i1 I1) Step[O] {
	return f.body(i1)
}

// TailCall defers a call to f. The driver runs the body of f directly,
// not another driver, so self and mutual recursion keep a constant stack depth.
func (f *Fn1[I1, O]) TailCall(i1 I1) Step[O] {
	return tailCall[O]{target: f, handle: f.bind(i1)}
}

func (f *Fn1[I1, O]) bind(i1 I1) func() Step[O] {
	return func() Step[O] { return f.body(i1) }
}

// TailCall1 defers a call to an ordinary function and settles with its result.
func TailCall1[I1, O any](fn func(I1) O, i1 I1) Step[O] {
	return tailCall[O]{target: fn, handle: func() Step[O] { return Done(fn(i1)) }}
}

// Fn2 is a trampolined function of 2 arguments.
type Fn2[I1, I2, O any] struct {
	runner[O]
	body func(I1, I2) Step[O]
}

// Tco2 is Tco1 for bodies of 2 arguments.
func Tco2[I1, I2, O any](body func(I1, I2) Step[O], config ...Config) *Fn2[I1, I2, O] {
	return &Fn2[I1, I2, O]{runner: runner[O]{config: normalizeConfig(config)}, body: body}
}

func (f *Fn2[I1, I2, O]) Call(i1 I1, i2 I2) O {
	return f.call(f.bind(i1, i2))
}

func (f *Fn2[I1, I2, O]) TryCall(i1 I1, i2 I2) (O, error) {
	return f.tryCall(f.bind(i1, i2))
}

func (f *Fn2[I1, I2, O]) CallWithStats(i1 I1, i2 I2) (O, Stats) {
	return f.callWithStats(f.bind(i1, i2))
}

func (f *Fn2[I1, I2, O]) Body(i1 I1, i2 I2) Step[O] {
	return f.body(i1, i2)
}

func (f *Fn2[I1, I2, O]) TailCall(i1 I1, i2 I2) Step[O] {
	return tailCall[O]{target: f, handle: f.bind(i1, i2)}
}

func (f *Fn2[I1, I2, O]) bind(i1 I1, i2 I2) func() Step[O] {
	return func() Step[O] { return f.body(i1, i2) }
}

// TailCall2 is TailCall1 for functions of 2 arguments.
func TailCall2[I1, I2, O any](fn func(I1, I2) O, i1 I1, i2 I2) Step[O] {
	return tailCall[O]{target: fn, handle: func() Step[O] { return Done(fn(i1, i2)) }}
}

// Fn3 is a trampolined function of 3 arguments.
type Fn3[I1, I2, I3, O any] struct {
	runner[O]
	body func(I1, I2, I3) Step[O]
}

// Tco3 is Tco1 for bodies of 3 arguments.
func Tco3[I1, I2, I3, O any](body func(I1, I2, I3) Step[O], config ...Config) *Fn3[I1, I2, I3, O] {
	return &Fn3[I1, I2, I3, O]{runner: runner[O]{config: normalizeConfig(config)}, body: body}
}

func (f *Fn3[I1, I2, I3, O]) Call(i1 I1, i2 I2, i3 I3) O {
	return f.call(f.bind(i1, i2, i3))
}

func (f *Fn3[I1, I2, I3, O]) TryCall(i1 I1, i2 I2, i3 I3) (O, error) {
	return f.tryCall(f.bind(i1, i2, i3))
}

func (f *Fn3[I1, I2, I3, O]) CallWithStats(i1 I1, i2 I2, i3 I3) (O, Stats) {
	return f.callWithStats(f.bind(i1, i2, i3))
}

func (f *Fn3[I1, I2, I3, O]) Body(i1 I1, i2 I2, i3 I3) Step[O] {
	return f.body(i1, i2, i3)
}

func (f *Fn3[I1, I2, I3, O]) TailCall(i1 I1, i2 I2, i3 I3) Step[O] {
	return tailCall[O]{target: f, handle: f.bind(i1, i2, i3)}
}

func (f *Fn3[I1, I2, I3, O]) bind(i1 I1, i2 I2, i3 I3) func() Step[O] {
	return func() Step[O] { return f.body(i1, i2, i3) }
}

// TailCall3 is TailCall1 for functions of 3 arguments.
func TailCall3[I1, I2, I3, O any](fn func(I1, I2, I3) O, i1 I1, i2 I2, i3 I3) Step[O] {
	return tailCall[O]{target: fn, handle: func() Step[O] { return Done(fn(i1, i2, i3)) }}
}

// Fn4 is a trampolined function of 4 arguments.
type Fn4[I1, I2, I3, I4, O any] struct {
	runner[O]
	body func(I1, I2, I3, I4) Step[O]
}

// Tco4 is Tco1 for bodies of 4 arguments.
func Tco4[I1, I2, I3, I4, O any](body func(I1, I2, I3, I4) Step[O], config ...Config) *Fn4[I1, I2, I3, I4, O] {
	return &Fn4[I1, I2, I3, I4, O]{runner: runner[O]{config: normalizeConfig(config)}, body: body}
}

func (f *Fn4[I1, I2, I3, I4, O]) Call(i1 I1, i2 I2, i3 I3, i4 I4) O {
	return f.call(f.bind(i1, i2, i3, i4))
}

func (f *Fn4[I1, I2, I3, I4, O]) TryCall(i1 I1, i2 I2, i3 I3, i4 I4) (O, error) {
	return f.tryCall(f.bind(i1, i2, i3, i4))
}

func (f *Fn4[I1, I2, I3, I4, O]) CallWithStats(i1 I1, i2 I2, i3 I3, i4 I4) (O, Stats) {
	return f.callWithStats(f.bind(i1, i2, i3, i4))
}

func (f *Fn4[I1, I2, I3, I4, O]) Body(i1 I1, i2 I2, i3 I3, i4 I4) Step[O] {
	return f.body(i1, i2, i3, i4)
}

func (f *Fn4[I1, I2, I3, I4, O]) TailCall(i1 I1, i2 I2, i3 I3, i4 I4) Step[O] {
	return tailCall[O]{target: f, handle: f.bind(i1, i2, i3, i4)}
}

func (f *Fn4[I1, I2, I3, I4, O]) bind(i1 I1, i2 I2, i3 I3, i4 I4) func() Step[O] {
	return func() Step[O] { return f.body(i1, i2, i3, i4) }
}

// TailCall4 is TailCall1 for functions of 4 arguments.
func TailCall4[I1, I2, I3, I4, O any](fn func(I1, I2, I3, I4) O, i1 I1, i2 I2, i3 I3, i4 I4) Step[O] {
	return tailCall[O]{target: fn, handle: func() Step[O] { return Done(fn(i1, i2, i3, i4)) }}
}
