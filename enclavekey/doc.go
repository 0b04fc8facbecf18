// Package enclavekey implements the elliptic-curve Diffie-Hellman key
// agreement step of the remote-attestation handshake.
//
// An attesting enclave transmits its public key as two fixed-width
// little-endian affine coordinates (the SDK's sgx_ec256_public_t layout).
// This package reconstructs that encoding into a validated key on curve
// NIST P-256, generates a fresh local ephemeral key pair, and derives the
// raw ECDH shared secret that seeds the secure channel.
//
// # Key Functions
//
// # PublicKeyFromEnclave - Validates and converts an enclave-format coordinate pair into a P-256 public key
//
// # DeriveSharedSecret - Generates an ephemeral key pair and derives the shared secret against a peer key
//
// # SharedSecret - Derives the shared secret with a caller-supplied local key, e.g. one loaded from a PEM file
//
// # LoadPrivateKey - Reads a P-256 private key from a PEM file
//
// # Wire Format
//
// The enclave public key format is:
//
//	[gx (32 bytes, little-endian)][gy (32 bytes, little-endian)]
//
// Standard curve libraries are big-endian oriented, so both coordinates are
// byte-reversed before the point is validated. The derived shared secret is
// the 32-byte x-coordinate of the computed point, per standard ECDH.
//
// # Error Model
//
// Every operation returns an explicit *Error of one of two kinds: KindCrypto
// for failures inside the curve and key-derivation math, and KindSystem for
// failures of an external resource operation, which carry the resource name.
// There is no ambient error state; callers that want a last-status slot feed
// a StatusRecorder, which is safe for concurrent use.
//
// # Security Considerations
//
//   - A fresh ephemeral key is generated for every DeriveSharedSecret call
//     and never exposed, so successive derivations against the same peer
//     produce unrelated secrets (forward secrecy).
//   - The returned secret is the raw ECDH output. It must be run through a
//     KDF by the session layer before use as cipher or MAC key material.
//   - Callers own the secret buffer and should zero it once consumed.
//   - Off-curve coordinate pairs and the point at infinity are rejected
//     during reconstruction, before any derivation can happen.
package enclavekey
