// Package cryptox derives the preference key from the passphrase and seals
// individual preference values with AES-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/inventory/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// NewSalt returns fresh random salt for DeriveMasterKey.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// CheckVerifier reports whether masterKey produces verifier, in constant time.
func CheckVerifier(masterKey, verifier []byte) bool {
	return subtle.ConstantTimeCompare(MakeVerifier(masterKey), verifier) == 1
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// EncryptValue serializes v to JSON and seals it with AES-GCM under key.
// The random nonce is prepended to the returned ciphertext.
//
//	sealed, err := cryptox.EncryptValue("acme@example.com", key)
//	...
//	var email string
//	err = cryptox.DecryptValue(sealed, key, &email)
func EncryptValue(v any, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// DecryptValue opens data produced by EncryptValue and unmarshals the JSON
// payload into v.
func DecryptValue(data, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	ns := aesgcm.NonceSize()
	if len(data) < ns+aesgcm.Overhead() {
		return ErrCiphertextTooShort
	}

	plaintext, err := aesgcm.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}
