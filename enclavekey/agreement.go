package enclavekey

import (
	"crypto/ecdh"
	"crypto/rand"
)

// DeriveSharedSecret generates a fresh ephemeral P-256 key pair and computes
// the ECDH shared secret against the supplied peer public key. The peer key
// is only read; the ephemeral key never leaves this call, so two invocations
// with the same peer yield unrelated secrets.
//
// The returned 32 bytes are the raw x-coordinate of the derived point. They
// are not ready for direct use as cipher or MAC key material; the consuming
// session layer is expected to run them through a KDF. The caller owns the
// buffer and should zero it once consumed.
func DeriveSharedSecret(peer *ecdh.PublicKey) ([]byte, error) {
	if peer == nil {
		return nil, cryptoError("derive shared secret", ErrNilPeerKey)
	}

	ephemeral, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return nil, cryptoError("generate ephemeral key", err)
	}

	return SharedSecret(ephemeral, peer)
}

// SharedSecret computes the ECDH shared secret between a caller-supplied
// local private key and a peer public key. This is the derivation path for
// a local key that originates from storage (see LoadPrivateKey) rather than
// fresh generation; DeriveSharedSecret uses it internally.
func SharedSecret(local *ecdh.PrivateKey, peer *ecdh.PublicKey) ([]byte, error) {
	if local == nil || peer == nil {
		return nil, cryptoError("derive shared secret", ErrNilPeerKey)
	}
	if local.Curve() != ecdh.P256() || peer.Curve() != ecdh.P256() {
		return nil, cryptoError("derive shared secret", ErrWrongCurve)
	}

	secret, err := local.ECDH(peer)
	if err != nil {
		return nil, cryptoError("derive shared secret", err)
	}

	// The secret length is a function of the curve. P-256 always yields 32
	// bytes; anything else means the underlying primitive misbehaved and
	// the buffer must not reach the caller.
	if len(secret) != SharedSecretSize {
		return nil, cryptoError("derive shared secret", ErrSecretLength)
	}
	return secret, nil
}
