package consensus

import (
	"github.com/shardchain/shardchaind/domain/consensus/model"
	"github.com/shardchain/shardchaind/domain/consensus/processes/committeemanager"
	"github.com/shardchain/shardchaind/domain/consensus/processes/cosigverifier"
	"github.com/shardchain/shardchaind/domain/consensus/processes/dirchainwalker"
	"github.com/shardchain/shardchaind/domain/consensus/processes/transactionvalidator"
	"github.com/shardchain/shardchaind/domain/consensus/processes/txchainwalker"
	"github.com/shardchain/shardchaind/domain/consensus/utils/constants"
	"github.com/shardchain/shardchaind/domain/consensus/utils/multisig"
	"github.com/shardchain/shardchaind/infrastructure/config"
)

// Factory instantiates new Consensuses
type Factory interface {
	NewConsensus(cfg *config.Config, nodeContext model.NodeContext,
		accountView model.AccountView, accountStore model.AccountStoreSnapshot,
		persistence model.Persistence, headerChain model.HeaderChain) *Consensus
}

type factory struct {
	cryptoAdapter model.CryptoAdapter
	rosterMutator model.RosterMutator
}

// NewFactory creates a new Consensus factory with the production crypto
// and committee-evolution implementations.
func NewFactory() Factory {
	return &factory{
		cryptoAdapter: multisig.NewCryptoAdapter(),
		rosterMutator: committeemanager.New(),
	}
}

// NewConsensus wires a validation core around the caller-supplied
// collaborators. The collaborators are injected rather than reached for
// as singletons so that callers can substitute test doubles.
func (f *factory) NewConsensus(cfg *config.Config, nodeContext model.NodeContext,
	accountView model.AccountView, accountStore model.AccountStoreSnapshot,
	persistence model.Persistence, headerChain model.HeaderChain) *Consensus {

	coSigVerifier := cosigverifier.New(f.cryptoAdapter)

	return &Consensus{
		transactionValidator: transactionvalidator.New(cfg.ChainID, nodeContext,
			accountView, accountStore, f.cryptoAdapter, headerChain),
		directoryChainWalker: dirchainwalker.New(coSigVerifier, f.rosterMutator,
			constants.ShardingStructureVersion),
		txChainWalker: txchainwalker.New(coSigVerifier),
		persistence:   persistence,
		headerChain:   headerChain,
	}
}
