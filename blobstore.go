package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const blobKeyPrefix = "blob:"

// BlobStore keeps opaque payloads; records only hold the returned ids.
type BlobStore interface {
	Store(ctx context.Context, data []byte) (string, error)
	Load(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

// BadgerBlobStore implements BlobStore on BadgerDB.
type BadgerBlobStore struct {
	db *badger.DB
}

// OpenBadger opens a badger database at dir, or in memory when dir is empty.
func OpenBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", dir, err)
	}
	return db, nil
}

// NewBadgerBlobStore creates a BlobStore backed by db.
func NewBadgerBlobStore(db *badger.DB) *BadgerBlobStore {
	return &BadgerBlobStore{db: db}
}

// Store saves data under a new random id.
func (s *BadgerBlobStore) Store(ctx context.Context, data []byte) (string, error) {
	id := uuid.NewString()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(blobKeyPrefix+id), data)
	})
	if err != nil {
		return "", fmt.Errorf("store blob: %w", err)
	}
	return id, nil
}

// Load returns the payload of id or ErrNotFound.
func (s *BadgerBlobStore) Load(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("blob %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	return data, err
}

// Delete removes id. Missing ids are ignored.
func (s *BadgerBlobStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(blobKeyPrefix + id))
	})
}

// storeMessage encodes msg and saves it as a blob.
func storeMessage(ctx context.Context, blobs BlobStore, msg WelcomeMessage) (string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	return blobs.Store(ctx, data)
}

// loadMessage reads a message saved by storeMessage. An empty id yields nil.
func loadMessage(ctx context.Context, blobs BlobStore, id string) (*WelcomeMessage, error) {
	if id == "" {
		return nil, nil
	}
	data, err := blobs.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	var msg WelcomeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: blob %s: %v", ErrCorruptRecord, id, err)
	}
	return &msg, nil
}
