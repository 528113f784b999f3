package cipher

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"

	kerrors "github.com/korimako/remold/internal/errors"
)

// parseOpenSSHPrivateKey parses an OpenSSH-format private key. A nil
// passphrase only accepts unencrypted keys; a passphrase-protected key
// without one returns ErrPassphraseRequired.
func parseOpenSSHPrivateKey(pemBytes []byte, passphrase []byte) (*rsa.PrivateKey, error) {
	var (
		parsed interface{}
		err    error
	)
	if passphrase == nil {
		parsed, err = ssh.ParseRawPrivateKey(pemBytes)
	} else {
		parsed, err = ssh.ParseRawPrivateKeyWithPassphrase(pemBytes, passphrase)
	}
	if err != nil {
		var missingErr *ssh.PassphraseMissingError
		if errors.As(err, &missingErr) {
			return nil, kerrors.ErrPassphraseRequired
		}
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPrivateKey, err)
	}

	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: OpenSSH key is not RSA", kerrors.ErrInvalidPrivateKey)
	}
	return rsaKey, nil
}
