package errors

import "errors"

// Envelope errors indicate failures while decoding or decrypting ciphertext.
var (
	// ErrInvalidBase64 indicates the envelope string contains characters
	// outside the base64 alphabet.
	ErrInvalidBase64 = errors.New("invalid base64 characters")

	// ErrTruncatedEnvelope indicates the decoded envelope is too short to
	// hold its own header.
	ErrTruncatedEnvelope = errors.New("truncated envelope")

	// ErrInvalidEnvelope indicates the envelope header describes more data
	// than the envelope contains.
	ErrInvalidEnvelope = errors.New("invalid envelope structure")

	// ErrInvalidPadding indicates the decrypted data does not end in valid
	// PKCS7 padding, usually because the ciphertext was tampered with.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidEncoding indicates the decrypted data is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Key errors indicate issues loading or parsing key material.
var (
	// ErrPrivateKeyNotFound indicates the private key file could not be located.
	ErrPrivateKeyNotFound = errors.New("private key not found")

	// ErrPublicKeyNotFound indicates the public key file could not be located.
	ErrPublicKeyNotFound = errors.New("public key not found")

	// ErrInvalidPrivateKey indicates the private key is malformed or unsupported.
	ErrInvalidPrivateKey = errors.New("invalid or unsupported private key format")

	// ErrPassphraseRequired indicates the private key is passphrase protected.
	ErrPassphraseRequired = errors.New("private key is passphrase protected")
)

// Crypto capability errors.
var (
	// ErrNoCryptoProvider indicates enc/dec was invoked without a crypto
	// provider wired into the registry.
	ErrNoCryptoProvider = errors.New("no crypto provider configured")
)
