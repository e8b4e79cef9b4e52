package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterNormalizes(t *testing.T) {
	r := NewRegistry()

	host, err := r.Register("http://192.168.1.1:5000")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1:5000", host)

	// scheme-less with a path still yields the network location
	host, err = r.Register("192.168.1.1:5000/extra")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1:5000", host)

	// both normalize to the same entry
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"192.168.1.1:5000"}, r.All())
}

func TestRegisterIdempotent(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register("http://node-a:5000")
	require.NoError(t, err)
	_, err = r.Register("http://node-a:5000")
	require.NoError(t, err)

	assert.Equal(t, 1, r.Len())
}

func TestRegisterInvalid(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register("")

	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Equal(t, 0, r.Len())
}

func TestAllSorted(t *testing.T) {
	r := NewRegistry()

	for _, addr := range []string{"http://b:1", "http://a:1", "http://c:1"} {
		_, err := r.Register(addr)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a:1", "b:1", "c:1"}, r.All())
}
