// Package main (cmd/rakeytool) implements an operator tool for the key
// material used in the remote-attestation key exchange. The service provider
// side of the handshake needs a long-term P-256 key pair whose public part
// is embedded in the enclave in the SDK's little-endian coordinate format,
// while keys received from enclaves arrive in that same format and need
// validation before use.
//
// The tool provides three commands:
//
//  1. generate - create a new P-256 private key, write it as a PEM file and
//     print the public part in the enclave format
//  2. inspect - validate an enclave-format public key and print its affine
//     coordinates in standard big-endian hex
//  3. convert - load an existing PEM private key and print its public part
//     in the enclave format
//
// Private key material is only ever written to the file given with
// --key-file (owner-readable); neither private keys nor derived secrets are
// printed or logged.
package main
