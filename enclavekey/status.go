package enclavekey

import (
	"errors"

	"go.uber.org/atomic"
)

// Status summarizes the outcome of the most recent operation a caller chose
// to record. It replaces the original implementation's process-wide
// last-error slot with explicit, caller-fed state.
type Status int32

const (
	StatusOK Status = iota
	StatusCryptoError
	StatusSystemError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCryptoError:
		return "crypto error"
	case StatusSystemError:
		return "system error"
	default:
		return "unknown"
	}
}

// StatusOf classifies an error returned by this package. A nil error maps
// to StatusOK; errors that did not originate here count as crypto failures.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) && e.Kind == KindSystem {
		return StatusSystemError
	}
	return StatusCryptoError
}

// StatusRecorder holds the status of the last observed operation. Unlike
// the ambient slot it replaces, it is safe for concurrent use and only
// changes when a caller feeds it.
type StatusRecorder struct {
	last atomic.Int32
}

// Observe records the status of err and returns err unchanged, so a call
// site can record and propagate in one expression:
//
//	secret, err := enclavekey.DeriveSharedSecret(peer)
//	if rec.Observe(err) != nil {
//		return err
//	}
func (r *StatusRecorder) Observe(err error) error {
	r.last.Store(int32(StatusOf(err)))
	return err
}

// Last reports the most recently observed status. A fresh recorder reports
// StatusOK.
func (r *StatusRecorder) Last() Status {
	return Status(r.last.Load())
}
