package brain

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

// liveState is what the validating client reports for the ledger's keys.
type liveState struct {
	// remoteKeys is nil when the remote key set could not be fetched.
	remoteKeys map[string]struct{}
	// feeRecipients holds the live fee recipient of every imported ledger key
	// whose lookup succeeded.
	feeRecipients map[string]string
}

// Validators returns every ledger record cross-referenced against the
// validating client, sorted by pubkey.
//
// The read never fails. An unreadable ledger is logged and reads as empty, an
// unreadable remote key set reads as empty, and a key whose fee recipient
// cannot be fetched reads as incorrect.
func (b *Brain) Validators(ctx context.Context) []model.ValidatorStatus {
	records, live, err := b.snapshot(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("consistency read found no ledger records")
		return []model.ValidatorStatus{}
	}
	return statuses(records, live)
}

// snapshot reads the ledger and the live state of its keys.
func (b *Brain) snapshot(ctx context.Context) (map[string]model.Validator, liveState, error) {
	records, err := b.ledger.Data()
	if err != nil {
		return nil, liveState{}, fmt.Errorf("read ledger: %w", err)
	}
	if len(records) == 0 {
		return records, liveState{}, nil
	}

	live := liveState{feeRecipients: make(map[string]string)}
	remoteKeys, err := b.validator.GetRemoteKeys(ctx)
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to get remote keys, assuming none")
		return records, live, nil
	}
	live.remoteKeys = make(map[string]struct{}, len(remoteKeys))
	for _, key := range remoteKeys {
		live.remoteKeys[utils.NormalizePubkey(key.Pubkey)] = struct{}{}
	}

	imported := make([]string, 0, len(records))
	for pubkey := range records {
		if _, ok := live.remoteKeys[pubkey]; ok {
			imported = append(imported, pubkey)
		}
	}

	var mu sync.Mutex
	_ = forEach(b.cfg.Concurrency, imported, func(pubkey string) error {
		feeRecipient, err := b.validator.GetFeeRecipient(ctx, pubkey)
		if err != nil {
			b.logger.Error().Err(err).Str("pubkey", utils.ShortenPubkey(pubkey)).Msg("failed to get fee recipient")
			return nil
		}
		mu.Lock()
		live.feeRecipients[pubkey] = feeRecipient
		mu.Unlock()
		return nil
	})
	return records, live, nil
}

// statuses derives the consistency flags of every record.
func statuses(records map[string]model.Validator, live liveState) []model.ValidatorStatus {
	out := make([]model.ValidatorStatus, 0, len(records))
	for pubkey, record := range records {
		_, imported := live.remoteKeys[pubkey]
		liveFeeRecipient, known := live.feeRecipients[pubkey]
		out = append(out, model.ValidatorStatus{
			Pubkey:                       pubkey,
			Tag:                          record.Tag,
			FeeRecipient:                 record.FeeRecipient,
			ValidatorImported:            imported,
			ValidatorFeeRecipientCorrect: imported && known && utils.SameAddress(record.FeeRecipient, liveFeeRecipient),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pubkey < out[j].Pubkey })
	return out
}
