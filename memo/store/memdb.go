package store

import (
	memdb "github.com/hashicorp/go-memdb"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

const (
	memdbTable = "memo"
	memdbIndex = "id"
)

// row is the memdb record for one resolved key.
type row[V any] struct {
	ID    string
	Value V
}

// memdb rejects empty index values, so every id carries a prefix.
func rowID[K ~string](key K) string {
	return "k:" + string(key)
}

type memDBStore[K ~string, V any] struct {
	db *memdb.MemDB
}

func memDBSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIndex: {
						Name:    memdbIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// NewMemDB returns a backend on an in-process hashicorp/go-memdb table.
// Reads run in read-only transactions and never block writers.
func NewMemDB[K ~string, V any]() (Store[K, V], error) {
	db, err := memdb.NewMemDB(memDBSchema())
	if err != nil {
		return nil, err
	}
	return memDBStore[K, V]{db: db}, nil
}

func (m memDBStore[K, V]) Load(key K) (value V, ok bool, err error) {
	txn := m.db.Txn(false)
	defer txn.Abort()

	r, err := first[V](txn, key)
	if err != nil || r == nil {
		return value, false, err
	}
	return r.Value, true, nil
}

func (m memDBStore[K, V]) Store(key K, value V) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if old, err := first[V](txn, key); err != nil {
		return err
	} else if old != nil {
		return nil
	}

	if err := txn.Insert(memdbTable, &row[V]{ID: rowID(key), Value: value}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func first[V any, K ~string](txn *memdb.Txn, key K) (*row[V], error) {
	return helper.GetTypedValueOf[*row[V]](func() (any, error) {
		raw, err := txn.First(memdbTable, memdbIndex, rowID(key))
		if raw == nil && err == nil {
			return (*row[V])(nil), nil
		}
		return raw, err
	})
}
