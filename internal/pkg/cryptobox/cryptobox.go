// Package cryptobox secures stored PMS credentials with AES-256-GCM.
// Ciphertexts are self-describing: iv:authTag:payload, all hex-encoded,
// so any tampering fails authentication instead of decrypting silently.
package cryptobox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"treesync/internal/pkg/errs"

	"golang.org/x/crypto/pbkdf2"
)

const (
	keyLen     = 32
	ivLen      = 12
	authTagLen = 16

	pbkdf2Iterations = 10000
)

type Box struct {
	key []byte
}

// New builds a Box from a 64-character hex key. Anything else is treated
// as a passphrase and stretched with PBKDF2-SHA256.
func New(secret string) (*Box, error) {
	if secret == "" {
		return nil, errs.New("encryption key must not be empty")
	}
	if key, err := hex.DecodeString(secret); err == nil && len(key) == keyLen {
		return &Box{key: key}, nil
	}
	key := pbkdf2.Key([]byte(secret), []byte("treesync.credentials"), pbkdf2Iterations, keyLen, sha256.New)
	return &Box{key: key}, nil
}

func (b *Box) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errs.New("cannot encrypt empty string")
	}

	block, err := aes.NewCipher(b.key)
	if err != nil {
		return "", errs.Wrap(err, "cipher init failed")
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, ivLen)
	if err != nil {
		return "", errs.Wrap(err, "gcm init failed")
	}

	iv := make([]byte, ivLen)
	if _, err := rand.Read(iv); err != nil {
		return "", errs.Wrap(err, "iv generation failed")
	}

	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	payload := sealed[:len(sealed)-authTagLen]
	tag := sealed[len(sealed)-authTagLen:]

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(payload), nil
}

func (b *Box) Decrypt(ciphertext string) (string, error) {
	parts := strings.Split(ciphertext, ":")
	if len(parts) != 3 {
		return "", errs.Mark(errs.New("expected iv:authTag:payload"), errs.ErrDecryptionFailed)
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != ivLen {
		return "", errs.Mark(errs.New("invalid iv"), errs.ErrDecryptionFailed)
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != authTagLen {
		return "", errs.Mark(errs.New("invalid auth tag"), errs.ErrDecryptionFailed)
	}
	payload, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", errs.Mark(errs.New("invalid payload"), errs.ErrDecryptionFailed)
	}

	block, err := aes.NewCipher(b.key)
	if err != nil {
		return "", errs.Wrap(err, "cipher init failed")
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, ivLen)
	if err != nil {
		return "", errs.Wrap(err, "gcm init failed")
	}

	plaintext, err := gcm.Open(nil, iv, append(payload, tag...), nil)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDecryptionFailed)
	}
	return string(plaintext), nil
}

// Hash returns the SHA-256 hex digest, for comparing secrets without
// keeping them around.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// ConstantTimeEqual compares two secrets without leaking length timing.
func ConstantTimeEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
