package metric

import (
	"errors"
	"fmt"
	"lending/core"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	assert.Equal(t, "ok", Code(nil))
	assert.Equal(t, "100101", Code(core.ErrZeroAmount))
	assert.Equal(t, "100109", Code(fmt.Errorf("%w: vault", core.ErrCustodyUnavailable)))
	assert.Equal(t, "100000", Code(errors.New("boom")))
}

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(operations.WithLabelValues("deposit", "ok"))
	ObserveOperation("deposit", time.Now(), nil)
	assert.Equal(t, before+1, testutil.ToFloat64(operations.WithLabelValues("deposit", "ok")))

	SetLiquidatable(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(liquidatable))
}
