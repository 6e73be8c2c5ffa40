package model

import "github.com/shardchain/shardchaind/domain/consensus/model/externalapi"

// RosterMutator applies the three deterministic committee evolution rules
// shared network-wide. Each rule takes the roster by value and returns the
// evolved roster; implementations must not alias the input.
type RosterMutator interface {
	// OnDSBlock evolves the DS committee for a newly accepted DS block.
	OnDSBlock(roster externalapi.Committee, block *externalapi.DSBlock) externalapi.Committee

	// OnVCBlock evolves the DS committee after a view change.
	OnVCBlock(roster externalapi.Committee, block *externalapi.VCBlock) externalapi.Committee

	// OnFallback evolves the DS committee after a fallback, promoting the
	// signing shard's leader context into the committee.
	OnFallback(roster externalapi.Committee, block *externalapi.FallbackBlock,
		shards externalapi.ShardingStructure) externalapi.Committee
}
