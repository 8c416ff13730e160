// Package cryptox implements the sealing used for data kept at rest on the
// device: an argon2id-stretched key and AES-GCM authenticated encryption.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// DeriveDeviceKey stretches raw device-secret material into a 32-byte
// AES-256 key.
func DeriveDeviceKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under the given key. A fresh random
// 12-byte nonce is generated per call and returned alongside the ciphertext.
func Seal(plaintext []byte, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Open decrypts a blob produced by Seal. Authentication failure (wrong key
// or tampered data) returns an error.
func Open(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open sealed blob: %w", err)
	}
	return plaintext, nil
}

// RandBytes returns n cryptographically random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
