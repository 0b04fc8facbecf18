package enclavekey

import (
	"crypto/ecdh"
	"fmt"
)

// uncompressedPointSize is the SEC 1 uncompressed encoding: 0x04 || X || Y.
const uncompressedPointSize = 1 + 2*CoordinateSize

// PublicKeyFromEnclave converts an enclave-format coordinate pair into a
// validated public key on curve P-256. The little-endian coordinates are
// reversed into the standard big-endian SEC 1 uncompressed point and handed
// to the curve implementation, which rejects off-curve pairs and the point
// at infinity. On failure no key is returned.
func PublicKeyFromEnclave(raw EC256PublicKey) (*ecdh.PublicKey, error) {
	point := make([]byte, 0, uncompressedPointSize)
	point = append(point, 0x04)
	point = append(point, reverse(raw.Gx[:])...)
	point = append(point, reverse(raw.Gy[:])...)

	pub, err := ecdh.P256().NewPublicKey(point)
	if err != nil {
		return nil, cryptoError("reconstruct enclave public key",
			fmt.Errorf("%w: %w", ErrNotOnCurve, err))
	}
	return pub, nil
}

// EnclaveFromPublicKey converts a P-256 public key into the enclave-format
// little-endian coordinate pair. Keys on any other curve are rejected.
func EnclaveFromPublicKey(pub *ecdh.PublicKey) (EC256PublicKey, error) {
	if pub == nil {
		return EC256PublicKey{}, cryptoError("encode enclave public key", ErrNilPeerKey)
	}
	if pub.Curve() != ecdh.P256() {
		return EC256PublicKey{}, cryptoError("encode enclave public key", ErrWrongCurve)
	}

	point := pub.Bytes()
	if len(point) != uncompressedPointSize || point[0] != 0x04 {
		return EC256PublicKey{}, cryptoError("encode enclave public key",
			fmt.Errorf("%w: unexpected point encoding", ErrInvalidKeyEncoding))
	}

	var raw EC256PublicKey
	copy(raw.Gx[:], reverse(point[1:1+CoordinateSize]))
	copy(raw.Gy[:], reverse(point[1+CoordinateSize:]))
	return raw, nil
}

// reverse returns a copy of b in reversed byte order.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
