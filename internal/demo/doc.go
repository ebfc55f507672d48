// Package demo holds the scenarios that exercise a console's progress line
// against real interleaved output.
//
// Each scenario runs inside Console.Intercept and writes through the
// console's streams, so its stdout and stderr lines scroll above the
// progress line instead of mixing with it:
//
//	r := demo.NewRunner(console.Default(), log, demo.DefaultOptions())
//	if err := r.Run("basic"); err != nil {
//		return err
//	}
//
// Scenarios sleep through a Sleeper so tests can run them instantly.
package demo
