package catalog

import "errors"

var (
	// ErrDuplicateView is returned when registering a view name that already exists.
	ErrDuplicateView = errors.New("view already registered")

	// ErrUnknownView is returned when querying a view name that was never registered.
	ErrUnknownView = errors.New("unknown view")

	// ErrNilPredicate is returned when registering a view without a predicate.
	ErrNilPredicate = errors.New("view predicate must not be nil")

	// ErrFileLimit reports that a rebuild stopped early because the walk
	// visited more files than the configured ceiling. It is a soft
	// condition: the views hold whatever was indexed before the abort.
	ErrFileLimit = errors.New("file limit exceeded during rebuild")
)
