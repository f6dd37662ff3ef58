package main

import "errors"

var (
	// ErrInspectFailed occurs when one or more addresses could not be
	// inspected.
	ErrInspectFailed = errors.New("one or more addresses failed inspection")

	// ErrCheckFailed occurs when one or more addresses failed their existence
	// probe.
	ErrCheckFailed = errors.New("one or more addresses failed their existence probe")
)
