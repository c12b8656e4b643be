// Package ledger persists the credentials managed by the brain: a mapping from
// validator public key to its tag, fee recipient and import provenance.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
	"github.com/4rgon4ut/StakingBrain/internal/utils"
)

var validatorPrefix = []byte("validator/")

// Ledger is the durable credential store.
//
// Writes are serialized internally and applied as atomic batches, so callers
// never observe a partially applied AddValidators, UpdateValidators or
// DeleteValidators.
type Ledger struct {
	logger  zerolog.Logger
	backend Backend

	mu sync.Mutex
}

// New creates a ledger on top of the given backend. The ledger owns the backend
// and closes it on Close.
func New(logger zerolog.Logger, backend Backend) *Ledger {
	return &Ledger{
		logger:  logger.With().Str("component", "ledger").Logger(),
		backend: backend,
	}
}

// Open opens the backend registered under name at path and wraps it in a Ledger.
func Open(logger zerolog.Logger, registry *Registry, name, path string) (*Ledger, error) {
	backend, err := registry.Open(name, path)
	if err != nil {
		return nil, err
	}
	return New(logger, backend), nil
}

// AddValidators writes the given records, replacing any record with the same pubkey.
func (l *Ledger) AddValidators(validators []model.Validator) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ops := make([]Op, 0, len(validators))
	for _, v := range validators {
		v.Pubkey = utils.NormalizePubkey(v.Pubkey)
		op, err := putOp(v)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	if err := l.backend.Write(ops); err != nil {
		return fmt.Errorf("write validators: %w", err)
	}

	l.logger.Debug().Int("count", len(validators)).Msg("validators added")
	return nil
}

// UpdateValidators changes the tag and fee recipient of existing records.
// AutomaticImport of the stored records is preserved.
//
// If any pubkey is not in the ledger, ErrNotFound is returned and nothing is written.
func (l *Ledger) UpdateValidators(validators []model.Validator) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ops := make([]Op, 0, len(validators))
	for _, v := range validators {
		v.Pubkey = utils.NormalizePubkey(v.Pubkey)
		stored, err := l.get(v.Pubkey)
		if err != nil {
			return fmt.Errorf("validator %s: %w", utils.ShortenPubkey(v.Pubkey), err)
		}
		stored.Tag = v.Tag
		stored.FeeRecipient = v.FeeRecipient

		op, err := putOp(stored)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	if err := l.backend.Write(ops); err != nil {
		return fmt.Errorf("write validators: %w", err)
	}

	l.logger.Debug().Int("count", len(validators)).Msg("validators updated")
	return nil
}

// DeleteValidators removes the records of the given pubkeys. Unknown pubkeys are ignored.
func (l *Ledger) DeleteValidators(pubkeys []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ops := make([]Op, len(pubkeys))
	for i, pubkey := range pubkeys {
		ops[i] = Op{Key: validatorKey(utils.NormalizePubkey(pubkey))}
	}
	if err := l.backend.Write(ops); err != nil {
		return fmt.Errorf("delete validators: %w", err)
	}

	l.logger.Debug().Int("count", len(pubkeys)).Msg("validators deleted")
	return nil
}

// Get returns the record of pubkey, or ErrNotFound.
func (l *Ledger) Get(pubkey string) (model.Validator, error) {
	return l.get(utils.NormalizePubkey(pubkey))
}

// Data returns a snapshot of every record, keyed by pubkey.
func (l *Ledger) Data() (map[string]model.Validator, error) {
	data := make(map[string]model.Validator)
	err := l.backend.Iterate(validatorPrefix, func(key, value []byte) error {
		var v model.Validator
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("decode record %s: %w", key, err)
		}
		data[v.Pubkey] = v
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	return data, nil
}

// Close closes the underlying backend.
func (l *Ledger) Close() error {
	return l.backend.Close()
}

func (l *Ledger) get(pubkey string) (model.Validator, error) {
	raw, err := l.backend.Get(validatorKey(pubkey))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.Validator{}, ErrNotFound
		}
		return model.Validator{}, fmt.Errorf("read record: %w", err)
	}

	var v model.Validator
	if err := json.Unmarshal(raw, &v); err != nil {
		return model.Validator{}, fmt.Errorf("decode record: %w", err)
	}
	return v, nil
}

func putOp(v model.Validator) (Op, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Op{}, fmt.Errorf("encode record %s: %w", utils.ShortenPubkey(v.Pubkey), err)
	}
	return Op{Key: validatorKey(v.Pubkey), Value: raw}, nil
}

func validatorKey(pubkey string) []byte {
	return append(append([]byte{}, validatorPrefix...), pubkey...)
}
