package cipher

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"encoding/pem"
	"errors"
	"os"
	"testing"

	"golang.org/x/crypto/ssh"

	kerrors "github.com/korimako/remold/internal/errors"
)

func TestParseOpenSSHPrivateKey_ValidUnencrypted(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	pemBlock, err := ssh.MarshalPrivateKey(privateKey, "")
	if err != nil {
		t.Fatalf("failed to marshal private key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(pemBlock)

	parsed, err := parseOpenSSHPrivateKey(pemBytes, nil)
	if err != nil {
		t.Fatalf("parseOpenSSHPrivateKey failed: %v", err)
	}

	if parsed.N.Cmp(privateKey.N) != 0 {
		t.Error("parsed key modulus does not match original")
	}
	if parsed.E != privateKey.E {
		t.Error("parsed key exponent does not match original")
	}
	if parsed.D.Cmp(privateKey.D) != 0 {
		t.Error("parsed key private exponent does not match original")
	}
}

func TestParseOpenSSHPrivateKey_PassphraseProtected(t *testing.T) {
	passphrase := "test-passphrase-123"

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	pemBlock, err := ssh.MarshalPrivateKeyWithPassphrase(privateKey, "", []byte(passphrase))
	if err != nil {
		t.Fatalf("failed to marshal private key with passphrase: %v", err)
	}
	pemBytes := pem.EncodeToMemory(pemBlock)

	// Without the passphrase the caller gets a recognizable sentinel.
	_, err = parseOpenSSHPrivateKey(pemBytes, nil)
	if err == nil {
		t.Fatal("expected error when parsing passphrase-protected key without passphrase")
	}
	if !errors.Is(err, kerrors.ErrPassphraseRequired) {
		t.Errorf("expected ErrPassphraseRequired, got: %v", err)
	}

	// With the passphrase the key parses.
	parsed, err := parseOpenSSHPrivateKey(pemBytes, []byte(passphrase))
	if err != nil {
		t.Fatalf("parseOpenSSHPrivateKey with passphrase failed: %v", err)
	}
	if parsed.N.Cmp(privateKey.N) != 0 {
		t.Error("parsed key modulus does not match original")
	}
}

func TestParseOpenSSHPrivateKey_NonRSAKey(t *testing.T) {
	_, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate ed25519 key: %v", err)
	}
	pemBlock, err := ssh.MarshalPrivateKey(edPriv, "")
	if err != nil {
		t.Fatalf("failed to marshal private key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(pemBlock)

	_, err = parseOpenSSHPrivateKey(pemBytes, nil)
	if !errors.Is(err, kerrors.ErrInvalidPrivateKey) {
		t.Errorf("expected ErrInvalidPrivateKey for ed25519 key, got: %v", err)
	}
}

func TestLoadPrivateKey_OpenSSHFormatOnDisk(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}
	pemBlock, err := ssh.MarshalPrivateKey(privateKey, "")
	if err != nil {
		t.Fatalf("failed to marshal private key: %v", err)
	}

	keys := NewKeystore(t.TempDir(), 2048)
	if err := os.MkdirAll(keys.Dir, 0700); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(keys.PrivateKeyPath(), pem.EncodeToMemory(pemBlock), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := keys.LoadPrivateKey()
	if err != nil {
		t.Fatalf("LoadPrivateKey failed: %v", err)
	}
	if loaded.N.Cmp(privateKey.N) != 0 {
		t.Error("loaded key does not match the OpenSSH file")
	}
}
