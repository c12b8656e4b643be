package brain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/4rgon4ut/StakingBrain/internal/brain"
	"github.com/4rgon4ut/StakingBrain/internal/gate"
	"github.com/4rgon4ut/StakingBrain/internal/ledger"
	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/unittest"
	"github.com/4rgon4ut/StakingBrain/internal/unittest/mocks"
)

const signerURL = "http://web3signer.web3signer.dappnode:9000"

var errUnavailable = errors.New("service unavailable")

// harness wires a brain to mocked services, an in-memory ledger and a real gate.
type harness struct {
	signer    *mocks.MockSignerAPI
	validator *mocks.MockValidatorAPI
	beacon    *mocks.MockBeaconAPI
	ledger    *ledger.Ledger
	gate      *gate.Gate
	brain     *brain.Brain
}

func newHarness(t *testing.T, opts ...brain.Option) *harness {
	t.Helper()

	backend, err := ledger.OpenPebble("ledger", vfs.NewMem())
	require.NoError(t, err)
	l := ledger.New(zerolog.Nop(), backend)
	t.Cleanup(func() { require.NoError(t, l.Close()) })

	g, err := gate.New(zerolog.Nop(), time.Hour, func(context.Context) error { return nil }, gate.WithClock(clock.NewMock()))
	require.NoError(t, err)
	t.Cleanup(g.Close)

	h := &harness{
		signer:    mocks.NewMockSignerAPI(t),
		validator: mocks.NewMockValidatorAPI(t),
		beacon:    mocks.NewMockBeaconAPI(t),
		ledger:    l,
		gate:      g,
	}
	h.brain, err = brain.New(unittest.Logger(t), signerURL, brain.Services{
		Signer:    h.signer,
		Validator: h.validator,
		Beacon:    h.beacon,
		Ledger:    h.ledger,
		Gate:      h.gate,
	}, opts...)
	require.NoError(t, err)
	return h
}

// seed writes validators to the ledger directly.
func (h *harness) seed(t *testing.T, validators ...model.Validator) {
	t.Helper()
	require.NoError(t, h.ledger.AddValidators(validators))
}

func (h *harness) requireLedger(t *testing.T, want ...model.Validator) {
	t.Helper()
	data, err := h.ledger.Data()
	require.NoError(t, err)
	require.Len(t, data, len(want), "unexpected ledger size")
	for _, v := range want {
		require.Equal(t, v, data[v.Pubkey], "unexpected ledger record")
	}
}

func (h *harness) requireGateRunning(t *testing.T) {
	t.Helper()
	require.Equal(t, gate.StateRunning, h.gate.State(), "gate should be running after every pipeline")
}

func TestNewValidatesArguments(t *testing.T) {
	h := newHarness(t)
	services := brain.Services{
		Signer:    h.signer,
		Validator: h.validator,
		Beacon:    h.beacon,
		Ledger:    h.ledger,
		Gate:      h.gate,
	}

	_, err := brain.New(zerolog.Nop(), "not a url", services)
	require.Error(t, err, "signer url must be a url")

	_, err = brain.New(zerolog.Nop(), signerURL, services, brain.WithConcurrency(0))
	require.Error(t, err, "concurrency must be positive")

	_, err = brain.New(zerolog.Nop(), signerURL, services, brain.WithGenesisValidatorsRoot("0xnothex"))
	require.Error(t, err, "genesis validators root must be hex")

	missing := services
	missing.Beacon = nil
	_, err = brain.New(zerolog.Nop(), signerURL, missing)
	require.Error(t, err, "every service is required")
}

// TestPipelineGateSequence verifies how every exit path of a pipeline drives the gate.
func TestPipelineGateSequence(t *testing.T) {
	pubkey := unittest.RandomPubkey(t)
	req := model.DeleteRequest{Pubkeys: []string{pubkey}}

	newBrain := func(t *testing.T, g brain.Gate, signer brain.SignerAPI, validator brain.ValidatorAPI, l brain.Ledger) *brain.Brain {
		b, err := brain.New(zerolog.Nop(), signerURL, brain.Services{
			Signer:    signer,
			Validator: validator,
			Beacon:    mocks.NewMockBeaconAPI(t),
			Ledger:    l,
			Gate:      g,
		})
		require.NoError(t, err)
		return b
	}

	t.Run("success starts the gate", func(t *testing.T) {
		g := mocks.NewMockGate(t)
		l := mocks.NewMockLedger(t)
		signer := mocks.NewMockSignerAPI(t)
		validator := mocks.NewMockValidatorAPI(t)

		g.EXPECT().Stop().Return(nil).Once()
		l.EXPECT().DeleteValidators([]string{pubkey}).Return(nil).Once()
		signer.EXPECT().DeleteKeystores(mock.Anything, mock.Anything).Return(&model.DeleteKeystoresResponse{}, nil).Once()
		validator.EXPECT().DeleteFeeRecipient(mock.Anything, pubkey).Return(nil).Once()
		validator.EXPECT().DeleteRemoteKeys(mock.Anything, []string{pubkey}).Return(nil, nil).Once()
		g.EXPECT().Start().Return(nil).Once()

		_, err := newBrain(t, g, signer, validator, l).DeleteValidators(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("failure restarts the gate", func(t *testing.T) {
		g := mocks.NewMockGate(t)
		l := mocks.NewMockLedger(t)

		g.EXPECT().Stop().Return(nil).Once()
		l.EXPECT().DeleteValidators(mock.Anything).Return(errUnavailable).Once()
		g.EXPECT().Restart().Return().Once()

		_, err := newBrain(t, g, mocks.NewMockSignerAPI(t), mocks.NewMockValidatorAPI(t), l).
			DeleteValidators(context.Background(), req)
		require.ErrorIs(t, err, errUnavailable, "pipeline error should be returned unchanged")
	})

	t.Run("stop failure restarts the gate", func(t *testing.T) {
		g := mocks.NewMockGate(t)
		g.EXPECT().Stop().Return(errUnavailable).Once()
		g.EXPECT().Restart().Return().Once()

		_, err := newBrain(t, g, mocks.NewMockSignerAPI(t), mocks.NewMockValidatorAPI(t), mocks.NewMockLedger(t)).
			DeleteValidators(context.Background(), req)
		require.ErrorIs(t, err, errUnavailable)
	})

	t.Run("start failure falls back to restart", func(t *testing.T) {
		g := mocks.NewMockGate(t)
		l := mocks.NewMockLedger(t)
		g.EXPECT().Stop().Return(nil).Once()
		l.EXPECT().UpdateValidators(mock.Anything).Return(nil).Once()
		g.EXPECT().Start().Return(errUnavailable).Once()
		g.EXPECT().Restart().Return().Once()

		validator := mocks.NewMockValidatorAPI(t)
		validator.EXPECT().SetFeeRecipient(mock.Anything, pubkey, mock.Anything).Return(nil).Once()

		err := newBrain(t, g, mocks.NewMockSignerAPI(t), validator, l).UpdateValidators(context.Background(), model.UpdateRequest{
			Pubkeys:       []string{pubkey},
			FeeRecipients: []string{unittest.RandomAddress(t).Hex()},
			Tags:          []model.Tag{model.TagSolo},
		})
		require.NoError(t, err, "the pipeline itself succeeded")
	})

	t.Run("panic restarts the gate", func(t *testing.T) {
		g := mocks.NewMockGate(t)
		l := mocks.NewMockLedger(t)
		g.EXPECT().Stop().Return(nil).Once()
		l.EXPECT().DeleteValidators(mock.Anything).RunAndReturn(func([]string) error {
			panic("corrupted ledger")
		}).Once()
		g.EXPECT().Restart().Return().Once()

		b := newBrain(t, g, mocks.NewMockSignerAPI(t), mocks.NewMockValidatorAPI(t), l)
		require.PanicsWithValue(t, "corrupted ledger", func() {
			_, _ = b.DeleteValidators(context.Background(), req)
		})
	})
}

// TestPipelineIgnoresCallerCancellation verifies a started pipeline runs to completion.
func TestPipelineIgnoresCallerCancellation(t *testing.T) {
	h := newHarness(t)
	v := unittest.ValidatorFixture(t, model.TagSolo)
	h.seed(t, v)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.signer.EXPECT().DeleteKeystores(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ model.DeleteKeystoresRequest) (*model.DeleteKeystoresResponse, error) {
			require.NoError(t, ctx.Err(), "pipeline context should not inherit cancellation")
			return &model.DeleteKeystoresResponse{}, nil
		}).Once()
	h.validator.EXPECT().DeleteFeeRecipient(mock.Anything, v.Pubkey).Return(nil).Once()
	h.validator.EXPECT().DeleteRemoteKeys(mock.Anything, []string{v.Pubkey}).Return(nil, nil).Once()

	_, err := h.brain.DeleteValidators(ctx, model.DeleteRequest{Pubkeys: []string{v.Pubkey}})
	require.NoError(t, err)
	h.requireLedger(t)
	h.requireGateRunning(t)
}

// newBrainWithLedger replaces the harness ledger with l.
func newBrainWithLedger(t *testing.T, h *harness, l brain.Ledger) *brain.Brain {
	t.Helper()
	b, err := brain.New(zerolog.Nop(), signerURL, brain.Services{
		Signer:    h.signer,
		Validator: h.validator,
		Beacon:    h.beacon,
		Ledger:    l,
		Gate:      h.gate,
	})
	require.NoError(t, err)
	return b
}
