// Package cipher provides the hybrid encryption codec and on-disk RSA key
// management for remold.
//
// # Encryption Architecture
//
// remold uses a hybrid encryption scheme:
//
//  1. A fresh random 256-bit AES key and 16-byte IV encrypt the text with
//     AES-CBC and PKCS7 padding
//  2. The AES key is wrapped with the user's RSA public key using OAEP
//     (SHA-256 hash, MGF1-SHA-256)
//  3. Key length header, wrapped key, IV and ciphertext are concatenated
//     and base64-encoded into a single text-safe envelope
//
// Because the AES key and IV are random per call, encrypting the same text
// twice produces different envelopes.
//
// # Wire Format
//
// All integers are big-endian:
//
//	| keyLen (4 bytes) | wrapped AES key (keyLen) | iv (16) | ciphertext (n*16) |
//
// # Key Management
//
// The RSA key pair lives in a configurable directory as two PEM files
// (PKCS1 private, PKIX public) with 0600 permissions where supported. Keys
// are generated lazily on first use; files that fail to parse are silently
// regenerated. Unencrypted OpenSSH-format private keys are accepted as a
// drop-in replacement for the PKCS1 file.
//
// Key generation is not synchronized across processes: two processes that
// both observe an absent key pair will each generate one and the last
// rename wins. Files are written via temp-file-and-rename so a partially
// written PEM is never visible.
package cipher
