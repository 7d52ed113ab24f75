// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const saltSize = 16

// ErrEmptyStorageKey is returned by [NewSealer] when no secret is configured.
var ErrEmptyStorageKey = errors.New("storage key is empty")

// ErrMalformedBlob is returned by Open for blobs that are too short to hold
// a salt and a nonce.
var ErrMalformedBlob = errors.New("sealed blob is malformed")

// sealer is the private implementation of [Sealer].
//
// Every blob gets its own random salt; the sealing key is derived from the
// configured storage key and that salt with Argon2id, and the payload is
// encrypted with XChaCha20-Poly1305:
//
//	blob = base64(salt ‖ nonce ‖ ciphertext)
type sealer struct {
	secret []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealer constructs a [Sealer] for the given storage key with the
// Argon2id parameters recommended by OWASP: 1 iteration, 64 MiB, 4 threads.
func NewSealer(storageKey string) (Sealer, error) {
	if storageKey == "" {
		return nil, ErrEmptyStorageKey
	}

	return &sealer{
		secret:       []byte(storageKey),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
	}, nil
}

func (s *sealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.secret, salt, s.argonTime, s.argonMemory, s.argonThreads, chacha20poly1305.KeySize)
}

// Seal implements [Sealer].
func (s *sealer) Seal(plaintext []byte) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = aead.Seal(blob, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *sealer) Open(sealed string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(blob) < saltSize+chacha20poly1305.NonceSizeX {
		return nil, ErrMalformedBlob
	}

	salt := blob[:saltSize]
	nonce := blob[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return plaintext, nil
}
