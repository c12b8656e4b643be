package ledger

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDBBackend stores the ledger in a goleveldb database.
type LevelDBBackend struct {
	db *leveldb.DB
}

// OpenLevelDB opens (creating if needed) a leveldb database at dir.
func OpenLevelDB(dir string) (*LevelDBBackend, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb at %s: %w", dir, err)
	}
	return &LevelDBBackend{db: db}, nil
}

// OpenLevelDBStorage opens a leveldb database on the given storage, e.g. storage.NewMemStorage().
func OpenLevelDBStorage(stor storage.Storage) (*LevelDBBackend, error) {
	db, err := leveldb.Open(stor, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb: %w", err)
	}
	return &LevelDBBackend{db: db}, nil
}

func (l *LevelDBBackend) Get(key []byte) ([]byte, error) {
	value, err := l.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (l *LevelDBBackend) Write(ops []Op) error {
	batch := new(leveldb.Batch)
	for _, op := range ops {
		if op.Value == nil {
			batch.Delete(op.Key)
		} else {
			batch.Put(op.Key, op.Value)
		}
	}
	return l.db.Write(batch, &opt.WriteOptions{Sync: true})
}

func (l *LevelDBBackend) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	iter := l.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {
		if err := fn(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (l *LevelDBBackend) Close() error {
	return l.db.Close()
}
