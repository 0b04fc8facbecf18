package enclavekey

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed operation. The package reports exactly two
// kinds: failures inside curve or key-derivation math, and failures of an
// external resource operation such as opening a key file.
type ErrorKind int

const (
	// KindCrypto covers invalid points, curve mismatches, key generation
	// and shared-secret derivation failures.
	KindCrypto ErrorKind = iota + 1

	// KindSystem covers I/O-level failures. Errors of this kind carry the
	// resource (typically a filename) the operation was acting on.
	KindSystem
)

func (k ErrorKind) String() string {
	switch k {
	case KindCrypto:
		return "crypto"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

var (
	ErrNotOnCurve         = errors.New("coordinates are not a valid P-256 point")
	ErrInvalidKeyEncoding = errors.New("invalid enclave public key encoding")
	ErrWrongCurve         = errors.New("key is not on curve P-256")
	ErrNilPeerKey         = errors.New("peer public key is nil")
	ErrSecretLength       = errors.New("derived secret has unexpected length")
	ErrInvalidKeyFile     = errors.New("file does not contain a usable EC private key")
)

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind ErrorKind

	// Resource identifies the external resource a system failure relates
	// to. Empty for crypto failures.
	Resource string

	Err error
}

func (e *Error) Error() string {
	if e.Kind == KindSystem && e.Resource != "" {
		return fmt.Sprintf("%s: %v", e.Resource, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func cryptoError(op string, err error) *Error {
	return &Error{Kind: KindCrypto, Err: fmt.Errorf("%s: %w", op, err)}
}

func systemError(resource string, err error) *Error {
	return &Error{Kind: KindSystem, Resource: resource, Err: err}
}
