package domain

import "errors"

// ErrInterrupted is returned by an interruptible WaitForInteraction when Ctrl+C is pressed.
var ErrInterrupted = errors.New("interrupted")

// ErrNegativeDuration is returned when a pacing interval or wait duration is below zero.
var ErrNegativeDuration = errors.New("negative duration")

// ErrNilCommand is returned when a Raw action carries no command.
var ErrNilCommand = errors.New("nil command")
