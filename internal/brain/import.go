package brain

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// ImportValidators imports a keystore batch into the signer and brings the
// keys under management.
//
// Keys the signer rejects are logged and go no further. Accepted keys are
// registered as remote keys on the validating client, get their fee recipient
// set, and are written to the ledger last. Registration and fee recipient
// failures are logged and do not abort the import.
//
// The signer's per-keystore result is returned as is.
func (b *Brain) ImportValidators(ctx context.Context, req model.ImportRequest) (*model.ImportKeystoresResponse, error) {
	ctx = detach(ctx)

	var resp *model.ImportKeystoresResponse
	err := b.withGate("import", func(logger zerolog.Logger) error {
		pubkeys, err := req.Validate()
		if err != nil {
			return invalid(err)
		}

		resp, err = b.signer.ImportKeystores(ctx, model.ImportKeystoresRequest{
			Keystores:          req.Keystores,
			Passwords:          req.Passwords,
			SlashingProtection: req.SlashingProtection,
		})
		if err != nil {
			return fmt.Errorf("import keystores: %w", err)
		}
		if resp == nil {
			return errors.New("signer returned no import results")
		}
		if len(resp.Data) != len(pubkeys) {
			return fmt.Errorf("signer returned %d results for %d keystores", len(resp.Data), len(pubkeys))
		}

		imported := make([]model.Validator, 0, len(pubkeys))
		for i, result := range resp.Data {
			if !accepted(result.Status) {
				logger.Error().
					Str("pubkey", utils.ShortenPubkey(pubkeys[i])).
					Str("status", string(result.Status)).
					Str("message", result.Message).
					Msg("signer rejected keystore")
				continue
			}
			imported = append(imported, model.Validator{
				Pubkey:          pubkeys[i],
				Tag:             req.Tags[i],
				FeeRecipient:    req.FeeRecipients[i],
				AutomaticImport: req.ImportFrom.Automatic(),
			})
		}
		if len(imported) == 0 {
			logger.Warn().Int("keystores", len(pubkeys)).Msg("signer accepted no keystore")
			return nil
		}

		b.postRemoteKeys(ctx, logger, imported)
		b.setFeeRecipients(ctx, logger, imported)

		if err := b.ledger.AddValidators(imported); err != nil {
			return fmt.Errorf("add validators to ledger: %w", err)
		}
		logger.Info().
			Int("imported", len(imported)).
			Int("rejected", len(pubkeys)-len(imported)).
			Msg("validators imported")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// accepted reports whether the signer holds the key after an import.
func accepted(status model.Status) bool {
	return status == model.StatusImported || status == model.StatusDuplicate
}

// postRemoteKeys registers validators on the validating client as remote keys
// pointing at the signer. Failures are logged.
func (b *Brain) postRemoteKeys(ctx context.Context, logger zerolog.Logger, validators []model.Validator) {
	keys := make([]model.RemoteKey, len(validators))
	pubkeys := make([]string, len(validators))
	for i, v := range validators {
		keys[i] = model.RemoteKey{Pubkey: v.Pubkey, URL: b.cfg.SignerURL}
		pubkeys[i] = v.Pubkey
	}

	statuses, err := b.validator.PostRemoteKeys(ctx, keys)
	if err != nil {
		logger.Error().Err(err).Int("keys", len(keys)).Msg("failed to register remote keys")
		return
	}
	logStatuses(logger, "validating client rejected remote key", pubkeys, statuses)
}

// setFeeRecipients pushes every validator's fee recipient to the validating
// client concurrently. Failures are logged per key.
func (b *Brain) setFeeRecipients(ctx context.Context, logger zerolog.Logger, validators []model.Validator) {
	_ = forEach(b.cfg.Concurrency, validators, func(v model.Validator) error {
		if err := b.validator.SetFeeRecipient(ctx, v.Pubkey, v.FeeRecipient); err != nil {
			logger.Error().Err(err).
				Str("pubkey", utils.ShortenPubkey(v.Pubkey)).
				Str("fee_recipient", v.FeeRecipient).
				Msg("failed to set fee recipient")
			return nil
		}
		logger.Debug().
			Str("pubkey", utils.ShortenPubkey(v.Pubkey)).
			Str("fee_recipient", v.FeeRecipient).
			Msg("fee recipient set")
		return nil
	})
}
