package config

import "testing"

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]string{
		"--chainid", "21", "--shardid", "2", "--numshards", "4", "--loglevel", "debug",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ChainID != 21 || cfg.ShardID != 2 || cfg.NumShards != 4 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.LookupNodeMode {
		t.Fatal("lookup mode should default to off")
	}
}

func TestLoadConfigRejectsInvalidShardSetup(t *testing.T) {
	_, err := LoadConfig([]string{"--numshards", "0"})
	if err == nil {
		t.Fatal("zero shards should be rejected")
	}

	_, err = LoadConfig([]string{"--shardid", "4", "--numshards", "4"})
	if err == nil {
		t.Fatal("an out-of-range shard id should be rejected")
	}

	// Lookup nodes have no shard assignment to validate.
	_, err = LoadConfig([]string{"--lookup", "--shardid", "9", "--numshards", "4"})
	if err != nil {
		t.Fatalf("lookup mode should not validate the shard id: %v", err)
	}
}

func TestLoadConfigRejectsUnknownLogLevel(t *testing.T) {
	_, err := LoadConfig([]string{"--loglevel", "noisy"})
	if err == nil {
		t.Fatal("an unknown log level should be rejected")
	}
}
