// Package clock provides the timer service used to pace slides.
//
// Standard sleeps through time.Sleep. Precise sleeps most of the interval and
// spins for the remainder, which keeps short per-character intervals accurate
// on platforms with a coarse scheduler tick. Default picks one of the two at
// build time: build with "-tags precise" to select Precise.
package clock
