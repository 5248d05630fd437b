package param

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	AssetID string `json:"asset_id" valid:"uuid,required"`
	Amount  string `json:"amount" valid:"numeric"`
}

func TestBindingJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"asset_id":"c6d0c728-2624-429b-8e0d-d9d19b6592fa","amount":"100"}`))

	var b body
	require.Nil(t, Binding(r, &b))
	assert.Equal(t, "100", b.Amount)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"asset_id":"xin","amount":"100"}`))
	assert.NotNil(t, Binding(r, &b))

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"asset_id":"c6d0c728-2624-429b-8e0d-d9d19b6592fa","amount":"-1"}`))
	assert.NotNil(t, Binding(r, &b))
}

func TestBindingQuery(t *testing.T) {
	var q struct {
		From  uint64 `json:"from"`
		Limit int    `json:"limit"`
	}

	r := httptest.NewRequest("GET", "/?from=10&limit=5&other=1", nil)
	require.Nil(t, Binding(r, &q))
	assert.Equal(t, uint64(10), q.From)
	assert.Equal(t, 5, q.Limit)
}
