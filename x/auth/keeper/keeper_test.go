package keeper_test

import (
	"crypto/ecdsa"
	"testing"
	"time"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/testutil"
	"github.com/manus-ai/quorum-bridge/x/auth/keeper"
	"github.com/manus-ai/quorum-bridge/x/auth/types"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx    sdk.Context
	keeper keeper.Keeper

	key  *ecdsa.PrivateKey
	addr chain.Address
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.DefaultContext(s.T(), time.Unix(1000, 0), storeKey)
	s.keeper = keeper.NewKeeper(storeKey)

	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	s.key = key
	s.addr = chain.PubKeyToAddress(key.PublicKey)
}

func (s *KeeperTestSuite) sign(sequence uint64) types.SignedTx {
	tx, err := types.NewSignedTx(s.key, "ledger", "send", []byte(`{"amount":"1"}`), sequence)
	s.Require().NoError(err)
	return tx
}

func (s *KeeperTestSuite) TestVerifyTxConsumesSequence() {
	s.Require().Zero(s.keeper.GetSequence(s.ctx, s.addr))

	s.Require().NoError(s.keeper.VerifyTx(s.ctx, s.sign(0), s.addr))
	s.Require().Equal(uint64(1), s.keeper.GetSequence(s.ctx, s.addr))

	// replaying the same tx fails
	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, s.sign(0), s.addr), types.ErrWrongSequence)
	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, s.sign(5), s.addr), types.ErrWrongSequence)
	s.Require().Equal(uint64(1), s.keeper.GetSequence(s.ctx, s.addr))

	s.Require().NoError(s.keeper.VerifyTx(s.ctx, s.sign(1), s.addr))
	s.Require().Equal(uint64(2), s.keeper.GetSequence(s.ctx, s.addr))
}

func (s *KeeperTestSuite) TestVerifyTxRejectsOtherSigner() {
	victim := chain.AddressFromName("bridge")

	err := s.keeper.VerifyTx(s.ctx, s.sign(0), victim)
	s.Require().ErrorIs(err, types.ErrSignerMismatch)
	s.Require().Zero(s.keeper.GetSequence(s.ctx, victim))
	s.Require().Zero(s.keeper.GetSequence(s.ctx, s.addr))
}

func (s *KeeperTestSuite) TestVerifyTxRejectsTampering() {
	tx := s.sign(0)
	tx.Msg = []byte(`{"amount":"1000000"}`)
	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, tx, s.addr), types.ErrSignerMismatch)

	tx = s.sign(0)
	tx.Route = "bridge"
	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, tx, s.addr), types.ErrSignerMismatch)

	tx = s.sign(0)
	tx.Signature = tx.Signature[:64]
	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, tx, s.addr), types.ErrInvalidSignature)

	tx = s.sign(0)
	tx.Signature = make([]byte, crypto.SignatureLength)
	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, tx, s.addr), types.ErrInvalidSignature)

	s.Require().Zero(s.keeper.GetSequence(s.ctx, s.addr))
}

func (s *KeeperTestSuite) TestGenesisAndQuery() {
	other := chain.AddressFromName("other")
	s.keeper.InitGenesis(s.ctx, types.GenesisState{Accounts: []types.Account{
		{Address: s.addr, Sequence: 3},
		{Address: other, Sequence: 9},
	}})

	s.Require().ErrorIs(s.keeper.VerifyTx(s.ctx, s.sign(0), s.addr), types.ErrWrongSequence)
	s.Require().NoError(s.keeper.VerifyTx(s.ctx, s.sign(3), s.addr))

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate())
	s.Require().ElementsMatch([]types.Account{
		{Address: s.addr, Sequence: 4},
		{Address: other, Sequence: 9},
	}, exported.Accounts)

	res, err := keeper.NewQueryServerImpl(s.keeper).Account(s.ctx, &types.QueryAccountRequest{Address: other})
	s.Require().NoError(err)
	s.Require().Equal(uint64(9), res.Account.Sequence)
}
