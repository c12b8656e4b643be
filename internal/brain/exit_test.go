package brain_test

import (
	"context"
	"testing"

	"github.com/prysmaticlabs/prysm/v5/api/server/structs"
	"github.com/prysmaticlabs/prysm/v5/consensus-types/primitives"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/4rgon4ut/StakingBrain/internal/brain"
	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/unittest"
)

const genesisRoot = "0x4b363db94e286120d76eb905340fdd4e54bfe9f06bf33ff6cf5ad27f511bfe95"

var fork = &structs.Fork{PreviousVersion: "0x03000000", CurrentVersion: "0x04000000", Epoch: "269568"}

// expectChainContext sets up the epoch and fork lookups of an exit.
func expectChainContext(h *harness) {
	h.beacon.EXPECT().GetCurrentEpoch(mock.Anything).Return(primitives.Epoch(300000), nil).Once()
	h.beacon.EXPECT().GetForkFromState(mock.Anything, model.StateHead).Return(fork, nil).Once()
}

func expectIndex(h *harness, pubkey, index string) {
	h.beacon.EXPECT().GetValidatorFromState(mock.Anything, model.StateHead, pubkey).
		Return(&structs.ValidatorContainer{Index: index, Status: "active_ongoing"}, nil).Once()
}

// TestExitSubmitsBeforeRemoving verifies every exit is signed and submitted
// before the validators leave the validating client, the signer and, last, the ledger.
func TestExitSubmitsBeforeRemoving(t *testing.T) {
	h := newHarness(t)
	validators := []model.Validator{
		unittest.ValidatorFixture(t, model.TagSolo),
		unittest.ValidatorFixture(t, model.TagRocketpool),
	}
	h.seed(t, validators...)
	pubkeys := []string{validators[0].Pubkey, validators[1].Pubkey}

	expectChainContext(h)
	h.beacon.EXPECT().GetGenesis(mock.Anything).Return(&structs.Genesis{GenesisValidatorsRoot: genesisRoot}, nil).Once()
	expectIndex(h, pubkeys[0], "1001")
	expectIndex(h, pubkeys[1], "1002")

	signatures := map[string]string{pubkeys[0]: "0xsig1", pubkeys[1]: "0xsig2"}
	for i, pubkey := range pubkeys {
		index := []string{"1001", "1002"}[i]
		h.signer.EXPECT().SignVoluntaryExit(mock.Anything, pubkey, model.VoluntaryExitSigningRequest{
			ForkInfo:      model.ForkInfo{Fork: fork, GenesisValidatorsRoot: genesisRoot},
			VoluntaryExit: &structs.VoluntaryExit{Epoch: "300000", ValidatorIndex: index},
		}).Return(signatures[pubkey], nil).Once()
		h.beacon.EXPECT().PostVoluntaryExits(mock.Anything, &structs.SignedVoluntaryExit{
			Message:   &structs.VoluntaryExit{Epoch: "300000", ValidatorIndex: index},
			Signature: signatures[pubkey],
		}).Return(nil).Once()
	}

	h.validator.EXPECT().DeleteRemoteKeys(mock.Anything, pubkeys).Return(nil, errUnavailable).Once()
	h.signer.EXPECT().DeleteKeystores(mock.Anything, model.DeleteKeystoresRequest{Pubkeys: pubkeys}).
		RunAndReturn(func(context.Context, model.DeleteKeystoresRequest) (*model.DeleteKeystoresResponse, error) {
			h.requireLedger(t, validators...)
			return &model.DeleteKeystoresResponse{Data: []model.KeystoreStatus{
				{Status: model.StatusDeleted},
				{Status: model.StatusDeleted},
			}}, nil
		}).Once()

	require.NoError(t, h.brain.ExitValidators(context.Background(), model.ExitRequest{Pubkeys: pubkeys}))
	h.requireLedger(t)
	h.requireGateRunning(t)
}

// TestExitUsesConfiguredGenesisRoot verifies a configured root is used without asking the beacon node.
func TestExitUsesConfiguredGenesisRoot(t *testing.T) {
	h := newHarness(t, brain.WithGenesisValidatorsRoot(genesisRoot[2:]))
	v := unittest.ValidatorFixture(t, model.TagLido)
	h.seed(t, v)

	expectChainContext(h)
	expectIndex(h, v.Pubkey, "7")
	h.signer.EXPECT().SignVoluntaryExit(mock.Anything, v.Pubkey, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, req model.VoluntaryExitSigningRequest) (string, error) {
			assert.Equal(t, genesisRoot, req.ForkInfo.GenesisValidatorsRoot)
			return "0xsig", nil
		}).Once()
	h.beacon.EXPECT().PostVoluntaryExits(mock.Anything, mock.Anything).Return(nil).Once()
	h.validator.EXPECT().DeleteRemoteKeys(mock.Anything, []string{v.Pubkey}).Return(nil, nil).Once()
	h.signer.EXPECT().DeleteKeystores(mock.Anything, mock.Anything).Return(&model.DeleteKeystoresResponse{}, nil).Once()

	require.NoError(t, h.brain.ExitValidators(context.Background(), model.ExitRequest{Pubkeys: []string{v.Pubkey}}))
	h.requireLedger(t)
}

// TestExitFailuresRemoveNothing verifies an exit that cannot be resolved, signed
// or submitted leaves every service and the ledger untouched.
func TestExitFailuresRemoveNothing(t *testing.T) {
	cases := map[string]func(h *harness, pubkey string){
		"index lookup fails": func(h *harness, pubkey string) {
			expectChainContext(h)
			h.beacon.EXPECT().GetGenesis(mock.Anything).Return(&structs.Genesis{GenesisValidatorsRoot: genesisRoot}, nil).Once()
			h.beacon.EXPECT().GetValidatorFromState(mock.Anything, model.StateHead, pubkey).Return(nil, errUnavailable).Once()
		},
		"genesis root is empty": func(h *harness, pubkey string) {
			expectChainContext(h)
			h.beacon.EXPECT().GetGenesis(mock.Anything).Return(&structs.Genesis{}, nil).Once()
			expectIndex(h, pubkey, "3")
		},
		"epoch lookup fails": func(h *harness, pubkey string) {
			h.beacon.EXPECT().GetCurrentEpoch(mock.Anything).Return(0, errUnavailable).Once()
			h.beacon.EXPECT().GetForkFromState(mock.Anything, model.StateHead).Return(fork, nil).Once()
			h.beacon.EXPECT().GetGenesis(mock.Anything).Return(&structs.Genesis{GenesisValidatorsRoot: genesisRoot}, nil).Once()
			expectIndex(h, pubkey, "3")
		},
		"signing fails": func(h *harness, pubkey string) {
			expectChainContext(h)
			h.beacon.EXPECT().GetGenesis(mock.Anything).Return(&structs.Genesis{GenesisValidatorsRoot: genesisRoot}, nil).Once()
			expectIndex(h, pubkey, "3")
			h.signer.EXPECT().SignVoluntaryExit(mock.Anything, pubkey, mock.Anything).Return("", errUnavailable).Once()
		},
		"submission fails": func(h *harness, pubkey string) {
			expectChainContext(h)
			h.beacon.EXPECT().GetGenesis(mock.Anything).Return(&structs.Genesis{GenesisValidatorsRoot: genesisRoot}, nil).Once()
			expectIndex(h, pubkey, "3")
			h.signer.EXPECT().SignVoluntaryExit(mock.Anything, pubkey, mock.Anything).Return("0xsig", nil).Once()
			h.beacon.EXPECT().PostVoluntaryExits(mock.Anything, mock.Anything).Return(errUnavailable).Once()
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			v := unittest.ValidatorFixture(t, model.TagStakewise)
			h.seed(t, v)
			setup(h, v.Pubkey)

			err := h.brain.ExitValidators(context.Background(), model.ExitRequest{Pubkeys: []string{v.Pubkey}})
			require.Error(t, err)
			h.requireLedger(t, v)
			h.requireGateRunning(t)
		})
	}
}

// TestExitSignerDeleteFailureKeepsLedger verifies the ledger is not cleared when the signer cannot delete.
func TestExitSignerDeleteFailureKeepsLedger(t *testing.T) {
	h := newHarness(t, brain.WithGenesisValidatorsRoot(genesisRoot))
	v := unittest.ValidatorFixture(t, model.TagStakehouse)
	h.seed(t, v)

	expectChainContext(h)
	expectIndex(h, v.Pubkey, "12")
	h.signer.EXPECT().SignVoluntaryExit(mock.Anything, v.Pubkey, mock.Anything).Return("0xsig", nil).Once()
	h.beacon.EXPECT().PostVoluntaryExits(mock.Anything, mock.Anything).Return(nil).Once()
	h.validator.EXPECT().DeleteRemoteKeys(mock.Anything, []string{v.Pubkey}).Return(nil, nil).Once()
	h.signer.EXPECT().DeleteKeystores(mock.Anything, mock.Anything).Return(nil, errUnavailable).Once()

	err := h.brain.ExitValidators(context.Background(), model.ExitRequest{Pubkeys: []string{v.Pubkey}})
	require.ErrorIs(t, err, errUnavailable)
	h.requireLedger(t, v)
	h.requireGateRunning(t)
}

// TestExitRejectsRepeatedPubkey verifies a validator is never signed or submitted twice.
func TestExitRejectsRepeatedPubkey(t *testing.T) {
	h := newHarness(t)
	v := unittest.ValidatorFixture(t, model.TagSolo)
	h.seed(t, v)

	err := h.brain.ExitValidators(context.Background(), model.ExitRequest{Pubkeys: []string{v.Pubkey, v.Pubkey}})
	require.ErrorIs(t, err, brain.ErrInvalidRequest)
	h.requireLedger(t, v)
	h.requireGateRunning(t)
}

// TestExitEmptySignerResult verifies the ledger keeps the keys when the signer
// answers the delete without a result.
func TestExitEmptySignerResult(t *testing.T) {
	h := newHarness(t, brain.WithGenesisValidatorsRoot(genesisRoot))
	v := unittest.ValidatorFixture(t, model.TagLido)
	h.seed(t, v)

	expectChainContext(h)
	expectIndex(h, v.Pubkey, "21")
	h.signer.EXPECT().SignVoluntaryExit(mock.Anything, v.Pubkey, mock.Anything).Return("0xsig", nil).Once()
	h.beacon.EXPECT().PostVoluntaryExits(mock.Anything, mock.Anything).Return(nil).Once()
	h.validator.EXPECT().DeleteRemoteKeys(mock.Anything, []string{v.Pubkey}).Return(nil, nil).Once()
	h.signer.EXPECT().DeleteKeystores(mock.Anything, mock.Anything).Return(nil, nil).Once()

	err := h.brain.ExitValidators(context.Background(), model.ExitRequest{Pubkeys: []string{v.Pubkey}})
	require.ErrorContains(t, err, "no delete results")
	h.requireLedger(t, v)
	h.requireGateRunning(t)
}
