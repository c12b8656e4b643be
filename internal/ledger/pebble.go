package ledger

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

// PebbleBackend stores the ledger in a pebble database.
type PebbleBackend struct {
	db *pebble.DB
}

// OpenPebble opens (creating if needed) a pebble database at dir.
// A nil fs uses the operating system filesystem.
func OpenPebble(dir string, fs vfs.FS) (*PebbleBackend, error) {
	opts := &pebble.Options{}
	if fs != nil {
		opts.FS = fs
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", dir, err)
	}
	return &PebbleBackend{db: db}, nil
}

func (p *PebbleBackend) Get(key []byte) ([]byte, error) {
	value, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (p *PebbleBackend) Write(ops []Op) error {
	batch := p.db.NewBatch()
	defer batch.Close()

	for _, op := range ops {
		var err error
		if op.Value == nil {
			err = batch.Delete(op.Key, nil)
		} else {
			err = batch.Set(op.Key, op.Value, nil)
		}
		if err != nil {
			return fmt.Errorf("stage %s: %w", op.Key, err)
		}
	}
	return batch.Commit(pebble.Sync)
}

func (p *PebbleBackend) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return fmt.Errorf("new iterator: %w", err)
	}

	for valid := iter.First(); valid; valid = iter.Next() {
		value, err := iter.ValueAndErr()
		if err != nil {
			_ = iter.Close()
			return err
		}
		if err := fn(iter.Key(), value); err != nil {
			_ = iter.Close()
			return err
		}
	}
	return iter.Close()
}

func (p *PebbleBackend) Close() error {
	return p.db.Close()
}

// prefixUpperBound returns the smallest key greater than every key starting with prefix,
// or nil when no such key exists.
func prefixUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
