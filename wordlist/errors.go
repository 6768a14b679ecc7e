package wordlist

import "errors"

var (
	// ErrNotLoaded is returned by Future.Result while the load is pending or
	// after it failed. Classification never sees it: an unloaded Future
	// yields empty lists.
	ErrNotLoaded = errors.New("wordlist: lists not loaded")

	// ErrLoadPanic wraps a panic recovered from a load function.
	ErrLoadPanic = errors.New("wordlist: load function panicked")
)
