package enclavekey

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// LoadPrivateKey loads a P-256 private key from a PEM file. Both SEC 1
// ("EC PRIVATE KEY") and PKCS#8 ("PRIVATE KEY") blocks are accepted. A
// failure to read the file is a system error carrying the filename; a
// malformed or non-P-256 key is a crypto error.
func LoadPrivateKey(filename string) (*ecdh.PrivateKey, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, systemError(filename, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, cryptoError("load private key", ErrInvalidKeyFile)
	}

	var ecKey *ecdsa.PrivateKey
	switch block.Type {
	case "EC PRIVATE KEY":
		ecKey, err = x509.ParseECPrivateKey(block.Bytes)
		if err != nil {
			return nil, cryptoError("load private key", err)
		}
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, cryptoError("load private key", err)
		}
		var ok bool
		if ecKey, ok = parsed.(*ecdsa.PrivateKey); !ok {
			return nil, cryptoError("load private key",
				fmt.Errorf("%w: got %T", ErrInvalidKeyFile, parsed))
		}
	default:
		return nil, cryptoError("load private key",
			fmt.Errorf("%w: unexpected PEM block %q", ErrInvalidKeyFile, block.Type))
	}

	if ecKey.Curve != elliptic.P256() {
		return nil, cryptoError("load private key", ErrWrongCurve)
	}

	key, err := ecKey.ECDH()
	if err != nil {
		return nil, cryptoError("load private key", err)
	}
	return key, nil
}

// GeneratePrivateKey creates a new P-256 private key.
func GeneratePrivateKey() (*ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, cryptoError("generate private key", err)
	}
	return key, nil
}

// SavePrivateKey writes a private key to filename as a SEC 1 PEM block,
// readable only by the owner. Marshalling failures are crypto errors, write
// failures system errors.
func SavePrivateKey(filename string, key *ecdsa.PrivateKey) error {
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return cryptoError("save private key", err)
	}

	pemKey := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
	if err := os.WriteFile(filename, pemKey, 0600); err != nil {
		return systemError(filename, err)
	}
	return nil
}
