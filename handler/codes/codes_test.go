package codes

import (
	"errors"
	"fmt"
	"lending/core"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/twitchtv/twirp"
)

func TestFromError(t *testing.T) {
	data := []struct {
		err    error
		code   twirp.ErrorCode
		custom int
	}{
		{core.ErrZeroAmount, twirp.InvalidArgument, 100101},
		{core.ErrInsufficientCollateral, twirp.FailedPrecondition, 100107},
		{fmt.Errorf("%w: %w", core.ErrCustodyUnavailable, errors.New("allowance")), twirp.Unavailable, 100109},
		{core.ErrClockRegressed, twirp.Internal, 100110},
		{core.ErrDuplicateTrace, twirp.AlreadyExists, 100117},
		{errors.New("boom"), twirp.Internal, 500},
		{twirp.NotFoundError("not found"), twirp.NotFound, 404},
	}

	for _, d := range data {
		twerr := FromError(d.err)
		assert.Equal(t, d.code, twerr.Code())
		assert.Equal(t, d.custom, Of(twerr))
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 412, twirp.ServerHTTPStatusFromErrorCode(FromError(core.ErrNoCollateral).Code()))
	assert.Equal(t, 503, twirp.ServerHTTPStatusFromErrorCode(FromError(core.ErrCustodyUnavailable).Code()))
	assert.Equal(t, InvalidArguments, Get(twirp.InvalidArgument))
}
