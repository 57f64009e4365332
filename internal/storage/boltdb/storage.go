// Package boltdb implements the device-local stores on top of BoltDB:
// syncable records, the offline queue and sync metadata.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/nvoronin/calcsync/internal/crypto"
)

var (
	// BoltDB bucket names
	bucketRecords  = []byte("records")
	bucketQueue    = []byte("queue")
	bucketMetadata = []byte("metadata")
)

// Option configures the storage.
type Option func(*options)

type options struct {
	passphrase string
}

// WithPassphrase enables at-rest encryption of record payloads and queue
// snapshots with a key derived from the passphrase. The derivation salt is
// persisted in the metadata bucket, so the same passphrase must be supplied
// on every open.
func WithPassphrase(passphrase string) Option {
	return func(o *options) {
		o.passphrase = passphrase
	}
}

// Storage represents the BoltDB storage implementation
type Storage struct {
	db  *bbolt.DB
	key []byte // nil when at-rest encryption is disabled
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file.
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	if o.passphrase != "" {
		key, err := storage.deriveKey(o.passphrase)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to derive encryption key: %w", err)
		}
		storage.key = key
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they do not exist
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketQueue, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// deriveKey loads the persisted derivation salt (creating one on first use)
// and derives the at-rest encryption key from the passphrase.
func (s *Storage) deriveKey(passphrase string) ([]byte, error) {
	var salt []byte

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)

		stored := bucket.Get(keyEncryptionSalt)
		if stored != nil {
			salt = append([]byte(nil), stored...)
			return nil
		}

		generated, err := crypto.GenerateSalt()
		if err != nil {
			return err
		}
		if err := bucket.Put(keyEncryptionSalt, generated); err != nil {
			return fmt.Errorf("failed to persist salt: %w", err)
		}
		salt = generated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return crypto.DeriveKey(passphrase, salt)
}

// sealPayload encrypts an opaque payload blob when encryption is enabled.
func (s *Storage) sealPayload(payload []byte) ([]byte, error) {
	if s.key == nil || len(payload) == 0 {
		return payload, nil
	}
	return crypto.Seal(payload, s.key)
}

// openPayload decrypts a stored payload blob when encryption is enabled.
func (s *Storage) openPayload(payload []byte) ([]byte, error) {
	if s.key == nil || len(payload) == 0 {
		return payload, nil
	}
	return crypto.Open(payload, s.key)
}
