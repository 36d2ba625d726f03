// Package securestore persists small preference values encrypted at rest.
//
// Every value is sealed with AES-GCM under a key derived from the user's
// passphrase. The salt and a verifier of the derived key are kept next to
// the values so that a wrong passphrase is rejected before anything is
// decrypted.
package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/inventory/internal/common"
	"github.com/dmitrijs2005/inventory/internal/cryptox"
	"github.com/dmitrijs2005/inventory/internal/dbx"
	"github.com/dmitrijs2005/inventory/internal/repositories/metadata"
)

var (
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrDecrypt         = errors.New("cannot decrypt stored value")
)

const (
	saltKey     = "secure/salt"
	verifierKey = "secure/verifier"
	valuePrefix = "prefs/"
)

// Store is a typed key/value store. Getters return def when the key has
// never been written.
type Store interface {
	GetString(ctx context.Context, key, def string) (string, error)
	GetBool(ctx context.Context, key string, def bool) (bool, error)
	PutString(ctx context.Context, key, value string) error
	PutBool(ctx context.Context, key string, value bool) error
	Apply(ctx context.Context, b *Batch) error
}

// Batch collects writes that Apply commits together.
type Batch struct {
	keys   []string
	values map[string]any
}

func NewBatch() *Batch {
	return &Batch{values: make(map[string]any)}
}

func (b *Batch) put(key string, v any) *Batch {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
	return b
}

func (b *Batch) PutString(key, value string) *Batch { return b.put(key, value) }

func (b *Batch) PutBool(key string, value bool) *Batch { return b.put(key, value) }

// Len returns the number of distinct keys in the batch.
func (b *Batch) Len() int { return len(b.keys) }

// EncryptedStore is a Store over the metadata table.
type EncryptedStore struct {
	db      *sql.DB
	newRepo func(dbx.DBTX) metadata.Repository
	key     []byte
}

// Open unlocks the store with passphrase. The first call on an empty
// database generates the salt and records the verifier; later calls return
// ErrWrongPassphrase when the passphrase does not match.
func Open(ctx context.Context, db *sql.DB, newRepo func(dbx.DBTX) metadata.Repository, passphrase []byte) (*EncryptedStore, error) {
	repo := newRepo(db)

	salt, err := repo.Get(ctx, saltKey)
	if err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}

	if salt == nil {
		salt = cryptox.NewSalt()
		key := cryptox.DeriveMasterKey(passphrase, salt)
		verifier := cryptox.MakeVerifier(key)

		err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			r := newRepo(tx)
			if err := r.Set(ctx, saltKey, salt); err != nil {
				return err
			}
			return r.Set(ctx, verifierKey, verifier)
		})
		if err != nil {
			return nil, fmt.Errorf("initialize store: %w", err)
		}
		return &EncryptedStore{db: db, newRepo: newRepo, key: key}, nil
	}

	verifier, err := repo.Get(ctx, verifierKey)
	if err != nil {
		return nil, fmt.Errorf("read verifier: %w", err)
	}
	if verifier == nil {
		return nil, fmt.Errorf("%w: verifier missing", ErrDecrypt)
	}

	key := cryptox.DeriveMasterKey(passphrase, salt)
	if !cryptox.CheckVerifier(key, verifier) {
		common.WipeByteArray(key)
		return nil, ErrWrongPassphrase
	}

	return &EncryptedStore{db: db, newRepo: newRepo, key: key}, nil
}

func (s *EncryptedStore) get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.newRepo(s.db).Get(ctx, valuePrefix+key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := cryptox.DecryptValue(raw, s.key, v); err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrDecrypt, key, err)
	}
	return true, nil
}

func (s *EncryptedStore) GetString(ctx context.Context, key, def string) (string, error) {
	var v string
	ok, err := s.get(ctx, key, &v)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func (s *EncryptedStore) GetBool(ctx context.Context, key string, def bool) (bool, error) {
	var v bool
	ok, err := s.get(ctx, key, &v)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func (s *EncryptedStore) put(ctx context.Context, repo metadata.Repository, key string, v any) error {
	sealed, err := cryptox.EncryptValue(v, s.key)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", key, err)
	}
	if err := repo.Set(ctx, valuePrefix+key, sealed); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *EncryptedStore) PutString(ctx context.Context, key, value string) error {
	return s.put(ctx, s.newRepo(s.db), key, value)
}

func (s *EncryptedStore) PutBool(ctx context.Context, key string, value bool) error {
	return s.put(ctx, s.newRepo(s.db), key, value)
}

// Apply writes every value of b in one transaction.
func (s *EncryptedStore) Apply(ctx context.Context, b *Batch) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		for _, k := range b.keys {
			if err := s.put(ctx, repo, k, b.values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close wipes the derived key. The store must not be used afterwards.
func (s *EncryptedStore) Close() {
	common.WipeByteArray(s.key)
	s.key = nil
}
