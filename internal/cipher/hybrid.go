package cipher

import (
	"bytes"
	"crypto/aes"
	libcipher "crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	kerrors "github.com/korimako/remold/internal/errors"
)

const (
	aesKeySize  = 32 // AES-256
	aesBlockLen = aes.BlockSize
	// envelope header: u32 big-endian length of the wrapped AES key
	headerLen = 4
)

// Cipher implements the hybrid envelope codec: the plaintext is encrypted
// with a fresh AES-256-CBC key, the key is wrapped with RSA-OAEP (SHA-256,
// MGF1-SHA-256), and the pieces are concatenated and base64-encoded:
//
//	u32BE(len(wrappedKey)) || wrappedKey || iv[16] || ciphertext
type Cipher struct {
	repairPadding bool
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithStrictPadding disables the automatic repair of missing base64 "="
// padding on decrypt.
func WithStrictPadding() Option {
	return func(c *Cipher) { c.repairPadding = false }
}

// New returns a Cipher. Base64 padding repair is on by default because the
// transport is clipboard and terminal text, which routinely strips
// trailing "=" characters.
func New(opts ...Option) *Cipher {
	c := &Cipher{repairPadding: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt encrypts plaintext for publicKey and returns the base64-encoded
// envelope.
func (c *Cipher) Encrypt(plaintext string, publicKey *rsa.PublicKey) (string, error) {
	aesKey := make([]byte, aesKeySize)
	if _, err := io.ReadFull(rand.Reader, aesKey); err != nil {
		return "", fmt.Errorf("failed to generate AES key: %w", err)
	}
	iv := make([]byte, aesBlockLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("failed to initialize AES: %w", err)
	}
	padded := pkcs7Pad([]byte(plaintext), aesBlockLen)
	ciphertext := make([]byte, len(padded))
	libcipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	wrappedKey, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, aesKey, nil)
	if err != nil {
		return "", fmt.Errorf("failed to wrap AES key: %w", err)
	}

	envelope := make([]byte, 0, headerLen+len(wrappedKey)+aesBlockLen+len(ciphertext))
	envelope = binary.BigEndian.AppendUint32(envelope, uint32(len(wrappedKey)))
	envelope = append(envelope, wrappedKey...)
	envelope = append(envelope, iv...)
	envelope = append(envelope, ciphertext...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt decodes and decrypts a base64-encoded envelope with privateKey.
// Validation failures return sentinel errors from the internal errors
// package; error messages describe the operation and lengths, never key
// material.
func (c *Cipher) Decrypt(envelope string, privateKey *rsa.PrivateKey) (string, error) {
	cleaned, err := c.normalizeBase64(envelope)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrInvalidBase64, err)
	}

	if len(raw) < headerLen {
		return "", fmt.Errorf("%w: %d bytes, need at least %d", kerrors.ErrTruncatedEnvelope, len(raw), headerLen)
	}
	keyLen := int(binary.BigEndian.Uint32(raw[:headerLen]))
	rest := raw[headerLen:]
	if len(rest) < keyLen+aesBlockLen {
		return "", fmt.Errorf("%w: header claims %d-byte key but only %d bytes follow",
			kerrors.ErrInvalidEnvelope, keyLen, len(rest))
	}

	wrappedKey := rest[:keyLen]
	iv := rest[keyLen : keyLen+aesBlockLen]
	ciphertext := rest[keyLen+aesBlockLen:]
	if len(ciphertext) == 0 || len(ciphertext)%aesBlockLen != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d",
			kerrors.ErrInvalidEnvelope, len(ciphertext), aesBlockLen)
	}

	aesKey, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, wrappedKey, nil)
	if err != nil {
		return "", fmt.Errorf("failed to unwrap AES key (%d bytes): %w", keyLen, err)
	}
	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return "", fmt.Errorf("unwrapped key has invalid length %d: %w", len(aesKey), err)
	}

	padded := make([]byte, len(ciphertext))
	libcipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aesBlockLen)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: decrypted data is not valid UTF-8", kerrors.ErrInvalidEncoding)
	}
	return string(plaintext), nil
}

// normalizeBase64 strips whitespace, validates the remaining characters
// against the standard base64 alphabet, and optionally restores missing
// "=" padding.
func (c *Cipher) normalizeBase64(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	var offenders []rune
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			// transport whitespace, dropped
		case r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' ||
			r == '+' || r == '/' || r == '=':
			b.WriteRune(r)
		default:
			if len(offenders) < 5 {
				offenders = append(offenders, r)
			}
		}
	}
	if len(offenders) > 0 {
		return "", fmt.Errorf("%w: %q", kerrors.ErrInvalidBase64, string(offenders))
	}

	cleaned := b.String()
	if c.repairPadding {
		if rem := len(cleaned) % 4; rem != 0 {
			cleaned += strings.Repeat("=", 4-rem)
		}
	}
	return cleaned, nil
}

// pkcs7Pad appends 1..blockSize bytes, each equal to the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad validates and strips PKCS7 padding. Any malformed padding is
// reported as ErrInvalidPadding; tampered ciphertext is caught here with
// high probability.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: data length %d", kerrors.ErrInvalidPadding, len(data))
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("%w: pad length %d", kerrors.ErrInvalidPadding, padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", kerrors.ErrInvalidPadding)
		}
	}
	return data[:len(data)-padLen], nil
}
