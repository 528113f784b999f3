package cipher

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/korimako/remold/internal/errors"
)

const (
	// DefaultKeyBits is the RSA modulus size used when none is configured.
	DefaultKeyBits = 4096

	privateKeyFile = "remold.pem"
	publicKeyFile  = "remold.pub"
)

// Keystore manages the on-disk RSA key pair. Keys are generated lazily on
// first use and persist across processes in Dir.
type Keystore struct {
	Dir  string
	Bits int
}

// NewKeystore returns a Keystore rooted at dir. A bits value of zero or
// less selects DefaultKeyBits.
func NewKeystore(dir string, bits int) *Keystore {
	if bits <= 0 {
		bits = DefaultKeyBits
	}
	return &Keystore{Dir: dir, Bits: bits}
}

// PrivateKeyPath returns the path of the private key PEM file.
func (k *Keystore) PrivateKeyPath() string {
	return filepath.Join(k.Dir, privateKeyFile)
}

// PublicKeyPath returns the path of the public key PEM file.
func (k *Keystore) PublicKeyPath() string {
	return filepath.Join(k.Dir, publicKeyFile)
}

// EnsureKeyPair loads the key pair from disk, generating and persisting a
// fresh one if the files are absent or fail to parse. Repeat calls with
// undisturbed files return the same key material without touching disk
// beyond the reads.
func (k *Keystore) EnsureKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := k.LoadPrivateKey()
	if err == nil {
		publicKey, pubErr := k.LoadPublicKey()
		if pubErr == nil {
			return privateKey, publicKey, nil
		}
	}

	// Absent or corrupt key files are self-healed by regenerating in
	// place rather than failing the caller.
	privateKey, err = k.generate()
	if err != nil {
		return nil, nil, err
	}
	return privateKey, &privateKey.PublicKey, nil
}

// LoadPrivateKey reads and parses the private key PEM file. Both PKCS1
// ("RSA PRIVATE KEY") and unencrypted OpenSSH format blocks are accepted.
func (k *Keystore) LoadPrivateKey() (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(k.PrivateKeyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrPrivateKeyNotFound, k.PrivateKeyPath())
		}
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in private key file", kerrors.ErrInvalidPrivateKey)
	}
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPrivateKey, err)
		}
		return key, nil
	case "OPENSSH PRIVATE KEY":
		return parseOpenSSHPrivateKey(data, nil)
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", kerrors.ErrInvalidPrivateKey, block.Type)
	}
}

// LoadPublicKey reads and parses the public key PEM file.
func (k *Keystore) LoadPublicKey() (*rsa.PublicKey, error) {
	data, err := os.ReadFile(k.PublicKeyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrPublicKeyNotFound, k.PublicKeyPath())
		}
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return rsaPub, nil
}

// generate creates a fresh key pair and writes both PEM files with
// owner-only permissions.
func (k *Keystore) generate() (*rsa.PrivateKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, k.Bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	if err := os.MkdirAll(k.Dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory at %s: %w", k.Dir, err)
	}

	privPem := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	})
	if err := writeKeyFile(k.PrivateKeyPath(), privPem); err != nil {
		return nil, fmt.Errorf("failed to write private key: %w", err)
	}

	pubASN1, err := x509.MarshalPKIXPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	pubPem := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubASN1,
	})
	if err := writeKeyFile(k.PublicKeyPath(), pubPem); err != nil {
		return nil, fmt.Errorf("failed to write public key: %w", err)
	}

	return privateKey, nil
}

// writeKeyFile writes data to a temporary file in the same directory and
// renames it into place, so a concurrent generator never observes a
// half-written PEM.
func writeKeyFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	// Best-effort owner-only permissions; ignored on platforms without
	// POSIX permission bits.
	_ = os.Chmod(tmpName, 0600)
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// KeyPairMatches reports whether the stored public key belongs to the
// stored private key. Used by `keys status` to detect mismatched files.
func KeyPairMatches(priv *rsa.PrivateKey, pub *rsa.PublicKey) bool {
	derA, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return false
	}
	derB, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return false
	}
	return bytes.Equal(derA, derB)
}
