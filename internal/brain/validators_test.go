package brain_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/unittest"
	"github.com/4rgon4ut/StakingBrain/internal/unittest/mocks"
)

// TestValidatorsEmptyLedger verifies an empty ledger reads as an empty list without calling any service.
func TestValidatorsEmptyLedger(t *testing.T) {
	h := newHarness(t)

	statuses := h.brain.Validators(context.Background())
	require.NotNil(t, statuses)
	require.Empty(t, statuses)
}

// TestValidatorsCrossReference verifies both derived flags compare each record against its own live state.
func TestValidatorsCrossReference(t *testing.T) {
	h := newHarness(t)
	matching := unittest.ValidatorFixture(t, model.TagSolo)
	drifted := unittest.ValidatorFixture(t, model.TagLido)
	unregistered := unittest.ValidatorFixture(t, model.TagObol)
	unreadable := unittest.ValidatorFixture(t, model.TagSSV)
	h.seed(t, matching, drifted, unregistered, unreadable)

	h.validator.EXPECT().GetRemoteKeys(mock.Anything).Return([]model.RemoteKey{
		{Pubkey: strings.ToUpper(matching.Pubkey[2:]), URL: signerURL},
		{Pubkey: drifted.Pubkey, URL: signerURL},
		{Pubkey: unreadable.Pubkey, URL: signerURL},
		{Pubkey: unittest.RandomPubkey(t), URL: signerURL},
	}, nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, matching.Pubkey).Return(strings.ToLower(matching.FeeRecipient), nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, drifted.Pubkey).Return(unittest.RandomAddress(t).Hex(), nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, unreadable.Pubkey).Return("", errUnavailable).Once()

	statuses := h.brain.Validators(context.Background())

	want := []model.ValidatorStatus{
		{Pubkey: matching.Pubkey, Tag: matching.Tag, FeeRecipient: matching.FeeRecipient, ValidatorImported: true, ValidatorFeeRecipientCorrect: true},
		{Pubkey: drifted.Pubkey, Tag: drifted.Tag, FeeRecipient: drifted.FeeRecipient, ValidatorImported: true, ValidatorFeeRecipientCorrect: false},
		{Pubkey: unregistered.Pubkey, Tag: unregistered.Tag, FeeRecipient: unregistered.FeeRecipient},
		{Pubkey: unreadable.Pubkey, Tag: unreadable.Tag, FeeRecipient: unreadable.FeeRecipient, ValidatorImported: true},
	}
	sort.Slice(want, func(i, j int) bool { return want[i].Pubkey < want[j].Pubkey })
	require.Equal(t, want, statuses)
}

// TestValidatorsRemoteKeysUnavailable verifies an unreachable validating client degrades to an empty live set.
func TestValidatorsRemoteKeysUnavailable(t *testing.T) {
	h := newHarness(t)
	v := unittest.ValidatorFixture(t, model.TagDiva)
	h.seed(t, v)

	h.validator.EXPECT().GetRemoteKeys(mock.Anything).Return(nil, errUnavailable).Once()

	statuses := h.brain.Validators(context.Background())
	require.Equal(t, []model.ValidatorStatus{
		{Pubkey: v.Pubkey, Tag: v.Tag, FeeRecipient: v.FeeRecipient},
	}, statuses)
}

// TestValidatorsLedgerFailure verifies an unreadable ledger reads as an empty list
// without reaching the validating client.
func TestValidatorsLedgerFailure(t *testing.T) {
	h := newHarness(t)
	l := mocks.NewMockLedger(t)
	l.EXPECT().Data().Return(nil, errUnavailable).Once()

	b := newBrainWithLedger(t, h, l)
	statuses := b.Validators(context.Background())
	require.NotNil(t, statuses)
	require.Empty(t, statuses)
}

// TestReconcileRepairsDrift verifies missing remote keys and drifted fee recipients are pushed again
// while the ledger and the signer stay untouched.
func TestReconcileRepairsDrift(t *testing.T) {
	h := newHarness(t)
	consistent := unittest.ValidatorFixture(t, model.TagSolo)
	drifted := unittest.ValidatorFixture(t, model.TagLido)
	missing := unittest.ValidatorFixture(t, model.TagObol)
	h.seed(t, consistent, drifted, missing)

	h.validator.EXPECT().GetRemoteKeys(mock.Anything).Return([]model.RemoteKey{
		{Pubkey: consistent.Pubkey, URL: signerURL},
		{Pubkey: drifted.Pubkey, URL: signerURL},
	}, nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, consistent.Pubkey).Return(consistent.FeeRecipient, nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, drifted.Pubkey).Return(unittest.RandomAddress(t).Hex(), nil).Once()

	h.validator.EXPECT().PostRemoteKeys(mock.Anything, []model.RemoteKey{{Pubkey: missing.Pubkey, URL: signerURL}}).
		Return([]model.KeystoreStatus{{Status: model.StatusImported}}, nil).Once()
	h.validator.EXPECT().SetFeeRecipient(mock.Anything, drifted.Pubkey, drifted.FeeRecipient).Return(nil).Once()
	h.validator.EXPECT().SetFeeRecipient(mock.Anything, missing.Pubkey, missing.FeeRecipient).Return(nil).Once()

	require.NoError(t, h.brain.Reconcile(context.Background()))
	h.requireLedger(t, consistent, drifted, missing)
}

func TestReconcileConsistent(t *testing.T) {
	h := newHarness(t)
	v := unittest.ValidatorFixture(t, model.TagSolo)
	h.seed(t, v)

	h.validator.EXPECT().GetRemoteKeys(mock.Anything).Return([]model.RemoteKey{{Pubkey: v.Pubkey, URL: signerURL}}, nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, v.Pubkey).Return(v.FeeRecipient, nil).Once()

	require.NoError(t, h.brain.Reconcile(context.Background()))
}

// TestReconcileSkipsWithoutRemoteKeys verifies nothing is pushed when the live remote key set is unknown.
func TestReconcileSkipsWithoutRemoteKeys(t *testing.T) {
	h := newHarness(t)
	h.seed(t, unittest.ValidatorFixture(t, model.TagSolo))

	h.validator.EXPECT().GetRemoteKeys(mock.Anything).Return(nil, errUnavailable).Once()

	require.Error(t, h.brain.Reconcile(context.Background()))
}

func TestReconcileReportsFailures(t *testing.T) {
	h := newHarness(t)
	missing := unittest.ValidatorFixture(t, model.TagSolo)
	drifted := unittest.ValidatorFixture(t, model.TagLido)
	h.seed(t, missing, drifted)

	h.validator.EXPECT().GetRemoteKeys(mock.Anything).Return([]model.RemoteKey{{Pubkey: drifted.Pubkey, URL: signerURL}}, nil).Once()
	h.validator.EXPECT().GetFeeRecipient(mock.Anything, drifted.Pubkey).Return(unittest.RandomAddress(t).Hex(), nil).Once()
	h.validator.EXPECT().PostRemoteKeys(mock.Anything, mock.Anything).Return(nil, errUnavailable).Once()
	h.validator.EXPECT().SetFeeRecipient(mock.Anything, drifted.Pubkey, drifted.FeeRecipient).Return(errUnavailable).Once()

	err := h.brain.Reconcile(context.Background())
	require.ErrorIs(t, err, errUnavailable)
	require.ErrorContains(t, err, "failed to restore 1 fee recipients")
}
