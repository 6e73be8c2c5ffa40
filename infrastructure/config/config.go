package config

import (
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/shardchain/shardchaind/domain/consensus/utils/constants"
	"github.com/shardchain/shardchaind/infrastructure/logger"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "shardchaind.log"
	defaultDataDirname = ".shardchaind"
)

// Config holds the node-level knobs the validation core reads. The core
// owns no CLI surface itself; the embedding node parses these once at
// startup and hands the result to the consensus factory.
type Config struct {
	DataDir        string `long:"datadir" description:"Directory to store data"`
	LogLevel       string `long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	ChainID        uint32 `long:"chainid" description:"Chain identifier transactions must carry"`
	ShardID        uint32 `long:"shardid" description:"The shard this node validates for"`
	NumShards      uint32 `long:"numshards" description:"Number of shards active in the network"`
	LookupNodeMode bool   `long:"lookup" description:"Run as a lookup node"`
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultDataDirname
	}
	return filepath.Join(homeDir, defaultDataDirname)
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		DataDir:   defaultDataDir(),
		LogLevel:  defaultLogLevel,
		ChainID:   constants.DefaultChainID,
		NumShards: 1,
	}
}

// LoadConfig parses the given command-line arguments on top of the
// defaults and validates the result.
func LoadConfig(args []string) (*Config, error) {
	cfg := DefaultConfig()
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	if err != nil {
		return nil, errors.Wrap(err, "parsing configuration flags")
	}

	if cfg.NumShards == 0 {
		return nil, errors.New("numshards must be at least 1")
	}
	if !cfg.LookupNodeMode && cfg.ShardID >= cfg.NumShards {
		return nil, errors.Errorf("shardid %d is out of range for %d shards", cfg.ShardID, cfg.NumShards)
	}

	err = logger.ParseAndSetLogLevels(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogFile returns the path of the node's rotating log file under the
// configured data directory.
func (cfg *Config) LogFile() string {
	return filepath.Join(cfg.DataDir, defaultLogFilename)
}
