package brain

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// DeleteValidators removes validators from management.
//
// The ledger is cleared first, then the signer deletes the keystores. Fee
// recipients and remote keys are removed from the validating client last,
// logging failures. The signer's result, including its slashing protection
// export, is returned as is.
func (b *Brain) DeleteValidators(ctx context.Context, req model.DeleteRequest) (*model.DeleteKeystoresResponse, error) {
	ctx = detach(ctx)

	var resp *model.DeleteKeystoresResponse
	err := b.withGate("delete", func(logger zerolog.Logger) error {
		pubkeys, err := req.Validate()
		if err != nil {
			return invalid(err)
		}

		if err := b.ledger.DeleteValidators(pubkeys); err != nil {
			return fmt.Errorf("delete validators from ledger: %w", err)
		}

		resp, err = b.signer.DeleteKeystores(ctx, model.DeleteKeystoresRequest{Pubkeys: pubkeys})
		if err != nil {
			return fmt.Errorf("delete keystores: %w", err)
		}
		if resp == nil {
			return errors.New("signer returned no delete results")
		}
		logStatuses(logger, "signer failed to delete keystore", pubkeys, resp.Data)

		b.deleteFeeRecipients(ctx, logger, pubkeys)
		b.deleteRemoteKeys(ctx, logger, pubkeys)

		logger.Info().Int("deleted", len(pubkeys)).Msg("validators deleted")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (b *Brain) deleteFeeRecipients(ctx context.Context, logger zerolog.Logger, pubkeys []string) {
	_ = forEach(b.cfg.Concurrency, pubkeys, func(pubkey string) error {
		if err := b.validator.DeleteFeeRecipient(ctx, pubkey); err != nil {
			logger.Error().Err(err).Str("pubkey", utils.ShortenPubkey(pubkey)).Msg("failed to delete fee recipient")
		}
		return nil
	})
}

func (b *Brain) deleteRemoteKeys(ctx context.Context, logger zerolog.Logger, pubkeys []string) {
	statuses, err := b.validator.DeleteRemoteKeys(ctx, pubkeys)
	if err != nil {
		logger.Error().Err(err).Int("keys", len(pubkeys)).Msg("failed to delete remote keys")
		return
	}
	logStatuses(logger, "validating client failed to delete remote key", pubkeys, statuses)
}

// logStatuses logs every failed item of an index-aligned batch result.
func logStatuses(logger zerolog.Logger, msg string, pubkeys []string, statuses []model.KeystoreStatus) {
	for i, status := range statuses {
		if i >= len(pubkeys) || !status.Status.Failed() {
			continue
		}
		logger.Error().
			Str("pubkey", utils.ShortenPubkey(pubkeys[i])).
			Str("message", status.Message).
			Msg(msg)
	}
}
