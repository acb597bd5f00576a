package kv

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LevelDBStore persists contract state in an embedded LevelDB database.
// This is the default backend: the whole key space fits one database, with
// a one-byte scope prefix separating the instance and archival tiers.
type LevelDBStore struct {
	db *leveldb.DB
}

func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open leveldb at %s: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

func encodeLevelDBKey(key Key) []byte {
	prefix := byte('i')
	if key.Scope == Archival {
		prefix = 'a'
	}
	out := make([]byte, 0, len(key.Name)+2)
	out = append(out, prefix, '/')
	return append(out, key.Name...)
}

func (s *LevelDBStore) Get(key Key) ([]byte, bool, error) {
	v, err := s.db.Get(encodeLevelDBKey(key), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leveldb get %s/%s: %w", key.Scope, key.Name, err)
	}
	return v, true, nil
}

func (s *LevelDBStore) Apply(batch *Batch) error {
	wb := new(leveldb.Batch)
	for _, e := range batch.Entries() {
		wb.Put(encodeLevelDBKey(e.Key), e.Value)
	}
	// Sync so a committed vote survives a crash.
	if err := s.db.Write(wb, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("leveldb write batch: %w", err)
	}
	return nil
}

func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
