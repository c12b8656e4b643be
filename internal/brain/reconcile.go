package brain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// Reconcile repairs drift between the ledger and the validating client.
//
// Ledger keys missing from the remote key set are registered again, and fee
// recipients that differ from the ledger are pushed again. Neither the ledger
// nor the signer is ever written. Reconcile is the reconciliation gate's task.
func (b *Brain) Reconcile(ctx context.Context) error {
	logger := b.logger.With().Str("task", "reconcile").Logger()

	records, live, err := b.snapshot(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	if live.remoteKeys == nil {
		return errors.New("remote keys unavailable, skipping reconciliation")
	}

	var missing, drifted []model.Validator
	for pubkey, record := range records {
		if _, ok := live.remoteKeys[pubkey]; !ok {
			missing = append(missing, record)
			continue
		}
		if feeRecipient, ok := live.feeRecipients[pubkey]; ok && !utils.SameAddress(record.FeeRecipient, feeRecipient) {
			drifted = append(drifted, record)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].Pubkey < missing[j].Pubkey })

	if len(missing) == 0 && len(drifted) == 0 {
		logger.Debug().Int("validators", len(records)).Msg("ledger and validating client are consistent")
		return nil
	}

	logger.Info().
		Int("missing_remote_keys", len(missing)).
		Int("drifted_fee_recipients", len(drifted)).
		Msg("repairing drift")

	var errs []error
	push := drifted
	if len(missing) > 0 {
		if err := b.restoreRemoteKeys(ctx, missing); err != nil {
			errs = append(errs, err)
		} else {
			// A freshly registered key has no fee recipient override yet.
			push = append(push, missing...)
		}
	}

	var failed atomic.Int32
	_ = forEach(b.cfg.Concurrency, push, func(v model.Validator) error {
		if err := b.validator.SetFeeRecipient(ctx, v.Pubkey, v.FeeRecipient); err != nil {
			logger.Error().Err(err).Str("pubkey", utils.ShortenPubkey(v.Pubkey)).Msg("failed to restore fee recipient")
			failed.Add(1)
		}
		return nil
	})
	if n := failed.Load(); n > 0 {
		errs = append(errs, fmt.Errorf("failed to restore %d fee recipients", n))
	}
	return errors.Join(errs...)
}

// restoreRemoteKeys registers validators missing from the validating client.
func (b *Brain) restoreRemoteKeys(ctx context.Context, validators []model.Validator) error {
	keys := make([]model.RemoteKey, len(validators))
	for i, v := range validators {
		keys[i] = model.RemoteKey{Pubkey: v.Pubkey, URL: b.cfg.SignerURL}
	}
	if _, err := b.validator.PostRemoteKeys(ctx, keys); err != nil {
		return fmt.Errorf("restore %d remote keys: %w", len(keys), err)
	}
	return nil
}
