package committeemanager

import (
	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
)

// committeeManager is the network-wide deterministic set of DS committee
// evolution rules. All three rules operate on a copy and never alias
// their input roster.
type committeeManager struct{}

// New instantiates a new RosterMutator
func New() model.RosterMutator {
	return &committeeManager{}
}

// OnDSBlock inducts the block's incoming members at the front of the
// committee and expels an equal count from the back, preserving the
// committee size. When there are more incoming members than committee
// members, the whole committee is expelled and the result is the incoming
// members alone, so the size grows.
func (*committeeManager) OnDSBlock(roster externalapi.Committee,
	block *externalapi.DSBlock) externalapi.Committee {

	incoming := block.Header.IncomingMembers
	if len(incoming) == 0 {
		return roster.Clone()
	}

	evolved := make(externalapi.Committee, 0, len(roster))
	evolved = append(evolved, incoming...)
	expelled := len(incoming)
	if expelled > len(roster) {
		expelled = len(roster)
	}
	evolved = append(evolved, roster[:len(roster)-expelled]...)
	return evolved
}

// OnVCBlock rotates the faulty leaders named by the view-change block
// from their positions to the back of the committee.
func (*committeeManager) OnVCBlock(roster externalapi.Committee,
	block *externalapi.VCBlock) externalapi.Committee {

	evolved := roster.Clone()
	for i := range block.Header.FaultyLeaders {
		faultyIndex := evolved.IndexOf(&block.Header.FaultyLeaders[i].PubKey)
		if faultyIndex < 0 {
			continue
		}
		faulty := evolved[faultyIndex]
		evolved = append(evolved[:faultyIndex], evolved[faultyIndex+1:]...)
		evolved = append(evolved, faulty)
	}
	return evolved
}

// OnFallback promotes the fallback leader's context into the committee
// front and drops the back member, preserving the committee size.
func (*committeeManager) OnFallback(roster externalapi.Committee,
	block *externalapi.FallbackBlock, shards externalapi.ShardingStructure) externalapi.Committee {

	leader := externalapi.CommitteeMember{
		PubKey: block.Header.LeaderPubKey,
		Peer:   block.Header.LeaderPeer,
	}

	evolved := make(externalapi.Committee, 0, len(roster))
	evolved = append(evolved, leader)
	if len(roster) > 0 {
		evolved = append(evolved, roster[:len(roster)-1]...)
	}
	return evolved
}
