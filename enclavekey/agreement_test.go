package enclavekey

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// RFC 5903 section 8.1 test vectors for the 256-bit random ECP group
// (big-endian hex). i and r are the two private scalars, g^i and g^r the
// corresponding public keys, and (g^ir)x the shared secret.
const (
	rfc5903IHex    = "c88f01f510d9ac3f70a292daa2316de544e9aab8afe84049c62a9c57862d1433"
	rfc5903GixHex  = "dad0b65394221cf9b051e1feca5787d098dfe637fc90b9ef945d0c3772581180"
	rfc5903GiyHex  = "5271a0461cdb8252d61f1c456fa3e59ab1f45b33accf5f58389e0577b8990bb3"
	rfc5903GrxHex  = "d12dfb5289c8d4f81208b70270398c342296970a0bccb74c736fc7554494bf63"
	rfc5903GryHex  = "56fbf3ca366cc23e8157854c13c58d6aac23f046ada30f8353e74f33039872ab"
	rfc5903GirxHex = "d6840f6b42f6edafd13116e0e12565202fef8e9ece7dce03812464d04b9442de"
)

func TestDeriveSharedSecret(t *testing.T) {
	peer, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	secret, err := DeriveSharedSecret(peer.PublicKey())
	require.NoError(t, err)
	require.Len(t, secret, SharedSecretSize)
}

func TestDeriveSharedSecretFreshness(t *testing.T) {
	peer, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	// Each call generates its own ephemeral key, so two derivations
	// against the same peer must not agree.
	first, err := DeriveSharedSecret(peer.PublicKey())
	require.NoError(t, err)
	second, err := DeriveSharedSecret(peer.PublicKey())
	require.NoError(t, err)

	require.Len(t, first, SharedSecretSize)
	require.Len(t, second, SharedSecretSize)
	require.NotEqual(t, first, second)
}

func TestDeriveSharedSecretWithReconstructedPeer(t *testing.T) {
	peer, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	raw, err := EnclaveFromPublicKey(peer.PublicKey())
	require.NoError(t, err)
	reconstructed, err := PublicKeyFromEnclave(raw)
	require.NoError(t, err)

	secret, err := DeriveSharedSecret(reconstructed)
	require.NoError(t, err)
	require.Len(t, secret, SharedSecretSize)
}

func TestDeriveSharedSecretNilPeer(t *testing.T) {
	secret, err := DeriveSharedSecret(nil)
	require.Nil(t, secret)
	require.ErrorIs(t, err, ErrNilPeerKey)
	require.Equal(t, StatusCryptoError, StatusOf(err))
}

func TestSharedSecretWrongCurve(t *testing.T) {
	local, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	foreign, err := ecdh.P384().GenerateKey(rand.Reader)
	require.NoError(t, err)

	secret, err := SharedSecret(local, foreign.PublicKey())
	require.Nil(t, secret)
	require.ErrorIs(t, err, ErrWrongCurve)
}

func TestSharedSecretSymmetry(t *testing.T) {
	a, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	b, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	ab, err := SharedSecret(a, b.PublicKey())
	require.NoError(t, err)
	ba, err := SharedSecret(b, a.PublicKey())
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

func TestSharedSecretRFC5903Vectors(t *testing.T) {
	iBytes, err := hex.DecodeString(rfc5903IHex)
	require.NoError(t, err)
	local, err := ecdh.P256().NewPrivateKey(iBytes)
	require.NoError(t, err)

	// The local key must expand to the published g^i coordinates.
	localRaw, err := EnclaveFromPublicKey(local.PublicKey())
	require.NoError(t, err)
	require.Equal(t, rfc5903GixHex, hex.EncodeToString(reverse(localRaw.Gx[:])))
	require.Equal(t, rfc5903GiyHex, hex.EncodeToString(reverse(localRaw.Gy[:])))

	// Reconstruct the peer key g^r from its enclave-format encoding.
	peerRaw := enclaveFromBigEndianHex(t, rfc5903GrxHex, rfc5903GryHex)
	peer, err := PublicKeyFromEnclave(peerRaw)
	require.NoError(t, err)

	secret, err := SharedSecret(local, peer)
	require.NoError(t, err)
	require.Equal(t, rfc5903GirxHex, hex.EncodeToString(secret))
}
