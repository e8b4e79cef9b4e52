package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ledgerd/ledgerd/pkg/chain"
)

var (
	defaults = map[string]interface{}{
		"verbose":           false,
		"api_addr":          ":5000",
		"daemon_addr":       "http://127.0.0.1:5000",
		"difficulty_prefix": chain.DefaultDifficultyPrefix,
		"peer_timeout":      chain.DefaultPeerTimeout,
		"sync_interval":     30 * time.Second,
		"rate_limit":        0,
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("ledgerd")
	viper.AddConfigPath("/etc/ledgerd/")
	viper.AddConfigPath("$HOME/.ledgerd")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("LEDGERD")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logrus.New().Warnf("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	c := &Config{
		apiAddr:          viper.GetString("api_addr"),
		nodeID:           viper.GetString("node_id"),
		difficultyPrefix: viper.GetString("difficulty_prefix"),
		peerTimeout:      viper.GetDuration("peer_timeout"),
		syncInterval:     viper.GetDuration("sync_interval"),
		rateLimit:        viper.GetFloat64("rate_limit"),
		peers:            viper.GetStringSlice("peers"),
	}

	if c.nodeID == "" {
		c.nodeID = strings.ReplaceAll(uuid.New().String(), "-", "")
	}

	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	apiAddr          string
	nodeID           string
	difficultyPrefix string
	peerTimeout      time.Duration
	syncInterval     time.Duration
	rateLimit        float64
	peers            []string
}

func (c *Config) APIAddr() string {
	return c.apiAddr
}

// NodeID identifies this node as a mining reward recipient. Defaults
// to a fresh uuid4 with dashes stripped.
func (c *Config) NodeID() string {
	return c.nodeID
}

func (c *Config) DifficultyPrefix() string {
	return c.difficultyPrefix
}

func (c *Config) PeerTimeout() time.Duration {
	return c.peerTimeout
}

// SyncInterval is the period of the background consensus loop. Zero
// disables background resolution.
func (c *Config) SyncInterval() time.Duration {
	return c.syncInterval
}

// RateLimit is the API request budget in requests per second. Zero
// disables limiting.
func (c *Config) RateLimit() float64 {
	return c.rateLimit
}

// Peers are addresses registered at startup.
func (c *Config) Peers() []string {
	return c.peers
}
