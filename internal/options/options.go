// Package options provides generic functional options shared by the
// engine constructors.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps a function that may reject its input.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a function that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
