package compound

import (
	"errors"
	"time"
)

var (
	// ErrInvalidBlockInterval seconds per block must be positive
	ErrInvalidBlockInterval = errors.New("secondsPerBlock should not be less than or equal zero")
	// ErrBeforeGenesis time is earlier than genesis
	ErrBeforeGenesis = errors.New("time is before genesis")
)

// CurrentBlock ticks elapsed between genesis and t
func CurrentBlock(t time.Time, genesis, secondsPerBlock int64) (uint64, error) {
	if secondsPerBlock <= 0 {
		return 0, ErrInvalidBlockInterval
	}

	seconds := t.Unix() - genesis
	if seconds < 0 {
		return 0, ErrBeforeGenesis
	}

	return uint64(seconds / secondsPerBlock), nil
}
