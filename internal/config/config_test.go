package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerd/ledgerd/pkg/chain"
)

func TestDefaults(t *testing.T) {
	c, err := GetConfig()
	require.NoError(t, err)

	assert.Equal(t, ":5000", c.APIAddr())
	assert.Equal(t, chain.DefaultDifficultyPrefix, c.DifficultyPrefix())
	assert.Equal(t, chain.DefaultPeerTimeout, c.PeerTimeout())
	assert.Equal(t, 30*time.Second, c.SyncInterval())
	assert.Zero(t, c.RateLimit())
	assert.Empty(t, c.Peers())
}

func TestNodeIDGenerated(t *testing.T) {
	c, err := GetConfig()
	require.NoError(t, err)

	// uuid4 with dashes stripped
	assert.Len(t, c.NodeID(), 32)
	assert.NotContains(t, c.NodeID(), "-")
}
