// Package clock provides a tiny time abstraction.
//
// The credential usecases time every key derivation through Clocker so tests
// can substitute a clock that advances deterministically.
package clock
