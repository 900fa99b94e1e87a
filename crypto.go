package docgen

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"
)

// keySize is the AES-256 key length in bytes.
const keySize = 32

// encryptMessage encrypts the plaintext message with AES-256 in CTR mode
// under a fresh random IV and returns the wire envelope
// "hex(iv):hex(ciphertext)".
//
// The key is checked here, at encrypt time, not at construction: a
// generator without a key is valid as long as encryption stays disabled.
// Error messages never contain key material.
func encryptMessage(key, plaintext []byte) (string, error) {
	if len(key) == 0 {
		return "", newError(KindConfiguration, "encryption key required")
	}
	if len(key) != keySize {
		return "", newError(KindConfiguration, "encryption key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", wrapError(KindCryptoUnavailable, "initializing cipher", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", wrapError(KindCryptoUnavailable, "generating iv", err)
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, plaintext)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}
