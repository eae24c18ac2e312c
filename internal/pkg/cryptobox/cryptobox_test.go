//go:build unit

package cryptobox_test

import (
	"strings"
	"testing"

	"treesync/internal/pkg/cryptobox"
	"treesync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestBox_RoundTrip(t *testing.T) {
	box, err := cryptobox.New(testKey)
	require.NoError(t, err)

	ciphertext, err := box.Encrypt("E9B1CC1B69554F27A7B62E4B6E3D9C12")
	require.NoError(t, err)

	parts := strings.Split(ciphertext, ":")
	require.Len(t, parts, 3, "ciphertext must be iv:authTag:payload")

	plaintext, err := box.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "E9B1CC1B69554F27A7B62E4B6E3D9C12", plaintext)
}

func TestBox_EncryptIsRandomized(t *testing.T) {
	box, err := cryptobox.New(testKey)
	require.NoError(t, err)

	a, err := box.Encrypt("secret")
	require.NoError(t, err)
	b, err := box.Encrypt("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "fresh iv per encryption")
}

func TestBox_PassphraseKeyDerivation(t *testing.T) {
	box, err := cryptobox.New("not-a-hex-key")
	require.NoError(t, err)

	ciphertext, err := box.Encrypt("token")
	require.NoError(t, err)

	plaintext, err := box.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "token", plaintext)
}

func TestBox_TamperingFailsDecryption(t *testing.T) {
	box, err := cryptobox.New(testKey)
	require.NoError(t, err)

	ciphertext, err := box.Encrypt("access-token")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		mutate func(string) string
	}{
		{
			name: "flipped payload byte",
			mutate: func(s string) string {
				last := s[len(s)-1]
				replacement := "0"
				if last == '0' {
					replacement = "1"
				}
				return s[:len(s)-1] + replacement
			},
		},
		{
			name: "flipped auth tag byte",
			mutate: func(s string) string {
				parts := strings.Split(s, ":")
				tag := parts[1]
				replacement := "0"
				if tag[0] == '0' {
					replacement = "1"
				}
				parts[1] = replacement + tag[1:]
				return strings.Join(parts, ":")
			},
		},
		{
			name:   "missing segments",
			mutate: func(s string) string { return "deadbeef" },
		},
		{
			name:   "empty string",
			mutate: func(s string) string { return "" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, decErr := box.Decrypt(tc.mutate(ciphertext))
			require.Error(t, decErr)
			assert.ErrorIs(t, decErr, errs.ErrDecryptionFailed)
		})
	}
}

func TestBox_WrongKeyFailsDecryption(t *testing.T) {
	box, err := cryptobox.New(testKey)
	require.NoError(t, err)
	other, err := cryptobox.New("000102030405060708090a0b0c0d0e0f000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	ciphertext, err := box.Encrypt("client-token")
	require.NoError(t, err)

	_, decErr := other.Decrypt(ciphertext)
	assert.ErrorIs(t, decErr, errs.ErrDecryptionFailed)
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, cryptobox.ConstantTimeEqual("s3cret", "s3cret"))
	assert.False(t, cryptobox.ConstantTimeEqual("s3cret", "s3cre7"))
	assert.False(t, cryptobox.ConstantTimeEqual("s3cret", "s3cret-longer"))
}
