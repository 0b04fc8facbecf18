package enclavekey

import (
	"encoding/hex"
	"fmt"
)

const (
	// CoordinateSize is the width of one affine coordinate in the enclave
	// key-exchange format.
	CoordinateSize = 32

	// EncodedKeySize is the total width of an enclave-format public key:
	// gx followed by gy, both little-endian.
	EncodedKeySize = 2 * CoordinateSize

	// SharedSecretSize is the length of an ECDH shared secret on P-256
	// (the x-coordinate of the derived point).
	SharedSecretSize = 32
)

// EC256PublicKey is a P-256 public key in the enclave's native key-exchange
// layout: two fixed-width little-endian unsigned affine coordinates. It is
// byte-compatible with the SGX SDK's sgx_ec256_public_t and carries no claim
// that the coordinates form a valid curve point; PublicKeyFromEnclave does
// that validation.
type EC256PublicKey struct {
	Gx [CoordinateSize]byte
	Gy [CoordinateSize]byte
}

// NewEC256PublicKeyFromBytes parses the 64-byte wire form (gx followed by
// gy, both little-endian).
func NewEC256PublicKeyFromBytes(data []byte) (EC256PublicKey, error) {
	if len(data) != EncodedKeySize {
		return EC256PublicKey{}, cryptoError("parse enclave public key",
			fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyEncoding, len(data), EncodedKeySize))
	}

	var key EC256PublicKey
	copy(key.Gx[:], data[:CoordinateSize])
	copy(key.Gy[:], data[CoordinateSize:])
	return key, nil
}

// NewEC256PublicKeyFromHex parses the hex form of the 64-byte wire layout.
func NewEC256PublicKeyFromHex(s string) (EC256PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return EC256PublicKey{}, cryptoError("parse enclave public key",
			fmt.Errorf("%w: %w", ErrInvalidKeyEncoding, err))
	}
	return NewEC256PublicKeyFromBytes(data)
}

// Bytes returns the 64-byte wire form.
func (k EC256PublicKey) Bytes() []byte {
	out := make([]byte, 0, EncodedKeySize)
	out = append(out, k.Gx[:]...)
	out = append(out, k.Gy[:]...)
	return out
}

// Hex returns the wire form as a lowercase hex string.
func (k EC256PublicKey) Hex() string {
	return hex.EncodeToString(k.Bytes())
}
