package brain

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
)

// UpdateValidators changes the tag and fee recipient of managed validators.
//
// The ledger is written first; fee recipients are then pushed to the
// validating client per key, logging failures. Updating a pubkey the ledger
// does not hold fails the whole request before anything is written.
func (b *Brain) UpdateValidators(ctx context.Context, req model.UpdateRequest) error {
	ctx = detach(ctx)

	return b.withGate("update", func(logger zerolog.Logger) error {
		validators, err := req.Validate()
		if err != nil {
			return invalid(err)
		}

		if err := b.ledger.UpdateValidators(validators); err != nil {
			return fmt.Errorf("update validators in ledger: %w", err)
		}

		b.setFeeRecipients(ctx, logger, validators)
		logger.Info().Int("updated", len(validators)).Msg("validators updated")
		return nil
	})
}
