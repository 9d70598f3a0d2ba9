// Package domain defines the chalan number sequencer contract.
package domain

import (
	"context"
	"errors"
)

// MetaKey is the meta row holding the last issued chalan number.
const MetaKey = "chalan_no"

type Service interface {
	// Next issues the next chalan number: strictly greater than every number
	// issued before, durable before it is returned. A missing or corrupt
	// counter row is recovered from the highest stored chalan number.
	Next(ctx context.Context) (int64, error)
	// Current returns the last issued number without consuming one.
	Current(ctx context.Context) (int64, error)
	// Reset overwrites the counter so the next issued number is to+1.
	// Resetting below the highest stored chalan number is refused unless
	// force is set, since it guarantees a future duplicate.
	Reset(ctx context.Context, to int64, force bool) error
}

var (
	ErrInvalidReset  = errors.New("invalid_reset_value")
	ErrResetBelowMax = errors.New("reset_below_stored_max")
)
