package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentBlock(t *testing.T) {
	genesis := int64(1603366002)

	b, err := CurrentBlock(time.Unix(genesis, 0), genesis, 15)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), b)

	b, err = CurrentBlock(time.Unix(genesis+14, 0), genesis, 15)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), b)

	b, err = CurrentBlock(time.Unix(genesis+1500, 0), genesis, 15)
	require.Nil(t, err)
	assert.Equal(t, uint64(100), b)

	_, err = CurrentBlock(time.Unix(genesis-1, 0), genesis, 15)
	assert.ErrorIs(t, err, ErrBeforeGenesis)

	_, err = CurrentBlock(time.Now(), genesis, 0)
	assert.ErrorIs(t, err, ErrInvalidBlockInterval)
}
