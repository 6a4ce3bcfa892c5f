// Package options implements the functional options shared by strview's
// configurable types.
package options

// Option configures a value of type T. Implementations are created with New.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] func(T) error

func (f optionFunc[T]) apply(target T) error {
	return f(target)
}

// New wraps fn as an Option. fn may reject its argument by returning an error.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
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
