package rules

import (
	"github.com/korimako/remold/internal/cipher"
)

// CryptoProvider is the capability behind the enc and dec rules. It is
// injected at registry construction; a registry built without one simply
// does not know those identifiers.
type CryptoProvider interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// KeystoreProvider backs CryptoProvider with the on-disk key pair and the
// hybrid envelope codec. Key generation happens lazily inside
// EnsureKeyPair on the first enc or dec; that filesystem access is the
// only side effect any rule has.
type KeystoreProvider struct {
	Keys  *cipher.Keystore
	Codec *cipher.Cipher
}

func (p *KeystoreProvider) Encrypt(text string) (string, error) {
	_, publicKey, err := p.Keys.EnsureKeyPair()
	if err != nil {
		return "", err
	}
	return p.Codec.Encrypt(text, publicKey)
}

func (p *KeystoreProvider) Decrypt(text string) (string, error) {
	privateKey, _, err := p.Keys.EnsureKeyPair()
	if err != nil {
		return "", err
	}
	return p.Codec.Decrypt(text, privateKey)
}

func cryptoSpecs(provider CryptoProvider) []Spec {
	return []Spec{
		{
			ID:      "enc",
			Summary: "encrypt with the local public key",
			Fn: func(text string, _ []string) (string, error) {
				return provider.Encrypt(text)
			},
		},
		{
			ID:      "dec",
			Summary: "decrypt with the local private key",
			Fn: func(text string, _ []string) (string, error) {
				return provider.Decrypt(text)
			},
		},
	}
}
