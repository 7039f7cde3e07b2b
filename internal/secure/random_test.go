package secure

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBytes_length(t *testing.T) {
	t.Parallel()

	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestRandomBytes_zeroLength(t *testing.T) {
	t.Parallel()

	b, err := RandomBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestRandomBytes_differsAcrossCalls(t *testing.T) {
	t.Parallel()

	a, err := RandomBytes(16)
	require.NoError(t, err)
	b, err := RandomBytes(16)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(a, b))
}
