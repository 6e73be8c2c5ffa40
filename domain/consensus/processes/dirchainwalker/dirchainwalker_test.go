package dirchainwalker_test

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/model/externalapi"
	"github.com/shardchain/shardchaind/domain/consensus/processes/committeemanager"
	"github.com/shardchain/shardchaind/domain/consensus/processes/cosigverifier"
	"github.com/shardchain/shardchaind/domain/consensus/processes/dirchainwalker"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensushashing"
	"github.com/shardchain/shardchaind/domain/consensus/utils/consensusserialization"
	"github.com/shardchain/shardchaind/domain/consensus/utils/constants"
	"github.com/shardchain/shardchaind/domain/consensus/utils/multisig"
	"github.com/shardchain/shardchaind/domain/consensus/utils/testutils"
)

func newWalker() model.DirectoryChainWalker {
	return dirchainwalker.New(cosigverifier.New(multisig.NewCryptoAdapter()),
		committeemanager.New(), constants.ShardingStructureVersion)
}

func newDSBlock(t *testing.T, blockNum uint64, shardingHash externalapi.Hash,
	rosterKeys []*secp256k1.PrivateKey) *externalapi.DSBlock {

	block := &externalapi.DSBlock{Header: externalapi.DSBlockHeader{
		BlockNum:     blockNum,
		ShardingHash: shardingHash,
		GasPrice:     1,
		Timestamp:    1000 + blockNum,
	}}
	headerBytes := consensusserialization.SerializeDSBlockHeader(&block.Header)
	block.CoSigs = testutils.CoSign(t, headerBytes, rosterKeys, testutils.AllSet(len(rosterKeys)))
	return block
}

func newVCBlock(t *testing.T, dsEpochNum uint64, faultyLeaders []externalapi.CommitteeMember,
	rosterKeys []*secp256k1.PrivateKey) *externalapi.VCBlock {

	block := &externalapi.VCBlock{Header: externalapi.VCBlockHeader{
		ViewChangeDSEpochNum: dsEpochNum,
		ViewChangeEpochNum:   1,
		FaultyLeaders:        faultyLeaders,
	}}
	headerBytes := consensusserialization.SerializeVCBlockHeader(&block.Header)
	block.CoSigs = testutils.CoSign(t, headerBytes, rosterKeys, testutils.AllSet(len(rosterKeys)))
	return block
}

func countLinks(sideEffects []model.SideEffect) []externalapi.BlockLink {
	var links []externalapi.BlockLink
	for _, sideEffect := range sideEffects {
		if effect, ok := sideEffect.(*model.AppendBlockLinkEffect); ok {
			links = append(links, effect.Link)
		}
	}
	return links
}

func TestWalkSequentialDSBlocks(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	var tipShardingHash externalapi.Hash
	blocks := []externalapi.DirectoryBlock{
		newDSBlock(t, 11, tipShardingHash, rosterKeys),
		newDSBlock(t, 12, tipShardingHash, rosterKeys),
	}

	const startIndex = 30
	ok, evolvedRoster, sideEffects := newWalker().Walk(blocks, roster, startIndex, 10, &tipShardingHash)
	if !ok {
		t.Fatal("a sequential, fully co-signed DS sequence should be accepted")
	}
	if len(evolvedRoster) != len(roster) {
		t.Errorf("roster size changed: %d -> %d", len(roster), len(evolvedRoster))
	}

	links := countLinks(sideEffects)
	if len(links) != len(blocks) {
		t.Fatalf("expected %d block links, got %d", len(blocks), len(links))
	}
	for i, link := range links {
		if link.TotalIndex != startIndex+uint64(i) {
			t.Errorf("link %d: expected total index %d, got %d", i, startIndex+uint64(i), link.TotalIndex)
		}
		if link.DSEpochNum != 11+uint64(i) {
			t.Errorf("link %d: expected DS epoch %d, got %d", i, 11+uint64(i), link.DSEpochNum)
		}
		if link.Kind != externalapi.BlockKindDS {
			t.Errorf("link %d: expected kind DS, got %s", i, link.Kind)
		}
	}

	// The walk is deterministic: identical inputs yield an identical log.
	okAgain, _, sideEffectsAgain := newWalker().Walk(blocks, roster, startIndex, 10, &tipShardingHash)
	if !okAgain || len(sideEffectsAgain) != len(sideEffects) {
		t.Fatal("repeating the walk changed the outcome")
	}
}

func TestWalkRejectsNonSequentialDSBlocks(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	var tipShardingHash externalapi.Hash
	// A gap: block 12 is missing.
	blocks := []externalapi.DirectoryBlock{
		newDSBlock(t, 11, tipShardingHash, rosterKeys),
		newDSBlock(t, 13, tipShardingHash, rosterKeys),
	}

	ok, _, sideEffects := newWalker().Walk(blocks, roster, 0, 10, &tipShardingHash)
	if ok {
		t.Fatal("a gapped DS sequence should be rejected")
	}

	// The first block was accepted before the gap; its side effects stay
	// in the log for the caller to decide over.
	links := countLinks(sideEffects)
	if len(links) != 1 {
		t.Fatalf("expected the accepted prefix's single link, got %d", len(links))
	}
	if links[0].DSEpochNum != 11 {
		t.Errorf("expected the accepted prefix to cover epoch 11, got %d", links[0].DSEpochNum)
	}
}

func TestWalkDSBlockEvolvesRoster(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	incomingKey := testutils.GenerateKeys(t, 1)[0]
	incoming := externalapi.CommitteeMember{PubKey: *multisig.SerializePublicKey(incomingKey.PubKey())}

	var tipShardingHash externalapi.Hash
	block := &externalapi.DSBlock{Header: externalapi.DSBlockHeader{
		BlockNum:        11,
		ShardingHash:    tipShardingHash,
		IncomingMembers: []externalapi.CommitteeMember{incoming},
	}}
	headerBytes := consensusserialization.SerializeDSBlockHeader(&block.Header)
	block.CoSigs = testutils.CoSign(t, headerBytes, rosterKeys, testutils.AllSet(len(rosterKeys)))

	ok, evolvedRoster, _ := newWalker().Walk(
		[]externalapi.DirectoryBlock{block}, roster, 0, 10, &tipShardingHash)
	if !ok {
		t.Fatal("the DS block should be accepted")
	}
	if len(evolvedRoster) != len(roster) {
		t.Fatalf("induction must preserve the committee size, got %d", len(evolvedRoster))
	}
	if !evolvedRoster[0].PubKey.Equal(&incoming.PubKey) {
		t.Error("the inducted member should lead the evolved roster")
	}
	if evolvedRoster.IndexOf(&roster[len(roster)-1].PubKey) != -1 {
		t.Error("the back member should have been expelled")
	}
	// The input roster is not aliased by the walk.
	if !roster[0].PubKey.Equal(&testutils.CommitteeFromKeys(rosterKeys)[0].PubKey) {
		t.Error("the input roster was mutated")
	}
}

func TestWalkVCBlock(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	var tipShardingHash externalapi.Hash
	faulty := []externalapi.CommitteeMember{roster[0]}
	vcBlock := newVCBlock(t, 11, faulty, rosterKeys)

	// The VC applies to epoch 11, which has not landed: a following DS
	// block 11 is co-signed by the rotated roster.
	blocks := []externalapi.DirectoryBlock{
		vcBlock,
		newDSBlock(t, 11, tipShardingHash, rosterKeys),
	}

	ok, evolvedRoster, sideEffects := newWalker().Walk(blocks, roster, 7, 10, &tipShardingHash)
	if !ok {
		t.Fatal("the VC + DS sequence should be accepted")
	}
	if !evolvedRoster[len(evolvedRoster)-1].PubKey.Equal(&roster[0].PubKey) {
		t.Error("the faulty leader should have rotated to the back")
	}

	links := countLinks(sideEffects)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	// Both the VC link and the DS link sit under epoch 11; the VC block
	// does not advance the DS block number.
	if links[0].Kind != externalapi.BlockKindVC || links[0].DSEpochNum != 11 {
		t.Errorf("unexpected VC link: kind %s, epoch %d", links[0].Kind, links[0].DSEpochNum)
	}
	if links[1].Kind != externalapi.BlockKindDS || links[1].DSEpochNum != 11 {
		t.Errorf("unexpected DS link: kind %s, epoch %d", links[1].Kind, links[1].DSEpochNum)
	}

	// A VC block for the wrong epoch fails the walk.
	staleVC := newVCBlock(t, 10, faulty, rosterKeys)
	ok, _, _ = newWalker().Walk([]externalapi.DirectoryBlock{staleVC}, roster, 7, 10, &tipShardingHash)
	if ok {
		t.Fatal("a VC block for the wrong epoch should be rejected")
	}
}

func TestWalkFallbackBlock(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	shardKeys := testutils.GenerateKeys(t, 3)
	shardCommittee := testutils.CommitteeFromKeys(shardKeys)
	shards := externalapi.ShardingStructure{shardCommittee}
	tipShardingHash := *consensushashing.ShardingStructureHash(constants.ShardingStructureVersion, shards)

	leaderKey := shardKeys[0]
	fallback := &externalapi.FallbackBlockWithShards{
		Block: externalapi.FallbackBlock{Header: externalapi.FallbackBlockHeader{
			FallbackDSEpochNum: 11,
			FallbackEpochNum:   1,
			ShardID:            0,
			LeaderPubKey:       *multisig.SerializePublicKey(leaderKey.PubKey()),
		}},
		Shards: shards,
	}
	headerBytes := consensusserialization.SerializeFallbackBlockHeader(&fallback.Block.Header)
	fallback.Block.CoSigs = testutils.CoSign(t, headerBytes, shardKeys, testutils.AllSet(len(shardKeys)))

	ok, evolvedRoster, sideEffects := newWalker().Walk(
		[]externalapi.DirectoryBlock{fallback}, roster, 0, 10, &tipShardingHash)
	if !ok {
		t.Fatal("a well-formed fallback block should be accepted")
	}
	if !evolvedRoster[0].PubKey.Equal(&fallback.Block.Header.LeaderPubKey) {
		t.Error("the fallback leader should have been promoted to the roster front")
	}
	if len(evolvedRoster) != len(roster) {
		t.Errorf("fallback must preserve the committee size, got %d", len(evolvedRoster))
	}

	links := countLinks(sideEffects)
	if len(links) != 1 || links[0].Kind != externalapi.BlockKindFB {
		t.Fatalf("expected a single FB link, got %v", links)
	}
}

// spyCoSigVerifier records calls; it accepts everything.
type spyCoSigVerifier struct {
	calls int
}

func (v *spyCoSigVerifier) VerifyCoSignature(headerBytes []byte,
	coSigs *externalapi.CoSignatures, committee externalapi.Committee) error {
	v.calls++
	return nil
}

func TestWalkFallbackShardingHashMismatch(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	shardKeys := testutils.GenerateKeys(t, 3)
	shards := externalapi.ShardingStructure{testutils.CommitteeFromKeys(shardKeys)}

	fallback := &externalapi.FallbackBlockWithShards{
		Block: externalapi.FallbackBlock{Header: externalapi.FallbackBlockHeader{
			FallbackDSEpochNum: 11,
			ShardID:            0,
		}},
		Shards: shards,
	}

	// The committed sharding hash is something else entirely; the walk
	// must fail before any co-signature check happens.
	var committedHash externalapi.Hash
	committedHash[0] = 0xab

	spy := &spyCoSigVerifier{}
	walker := dirchainwalker.New(spy, committeemanager.New(), constants.ShardingStructureVersion)
	ok, _, sideEffects := walker.Walk(
		[]externalapi.DirectoryBlock{fallback}, roster, 0, 10, &committedHash)
	if ok {
		t.Fatal("a fallback under a mismatched sharding snapshot should be rejected")
	}
	if spy.calls != 0 {
		t.Errorf("the co-signature must not be verified on a sharding hash mismatch, got %d calls", spy.calls)
	}
	if len(sideEffects) != 0 {
		t.Errorf("no side effects should be logged, got %d", len(sideEffects))
	}
}

func TestWalkSkipsUnknownVariant(t *testing.T) {
	rosterKeys := testutils.GenerateKeys(t, 4)
	roster := testutils.CommitteeFromKeys(rosterKeys)

	var tipShardingHash externalapi.Hash
	// A nil entry exercises the lenient default arm: it is skipped, and
	// the walk continues into the following DS block.
	blocks := []externalapi.DirectoryBlock{
		nil,
		newDSBlock(t, 11, tipShardingHash, rosterKeys),
	}

	ok, _, sideEffects := newWalker().Walk(blocks, roster, 0, 10, &tipShardingHash)
	if !ok {
		t.Fatal("an unknown variant should not fail the walk")
	}
	links := countLinks(sideEffects)
	if len(links) != 1 || links[0].TotalIndex != 0 {
		t.Fatalf("the skipped variant must not consume a total index, got %v", links)
	}
}
