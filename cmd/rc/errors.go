package main

import "errors"

// ErrApplyCancelled is returned when the user declines the rewrite.
var ErrApplyCancelled = errors.New("rewrite cancelled")
