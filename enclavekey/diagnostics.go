package enclavekey

import (
	"errors"
	"fmt"
	"io"
)

// FprintError writes a human-readable description of a failed operation to
// w, prefixed like the standard library's flag and log conventions. System
// errors print the recorded resource name with the underlying OS error;
// crypto errors print the full cause chain. A nil error reports "no error".
// Secret material never appears in the output.
func FprintError(w io.Writer, prefix string, err error) {
	if err == nil {
		fmt.Fprintf(w, "%s: no error\n", prefix)
		return
	}

	var e *Error
	if errors.As(err, &e) && e.Kind == KindSystem {
		fmt.Fprintf(w, "%s: %s: %v\n", prefix, e.Resource, e.Err)
		return
	}

	fmt.Fprintf(w, "%s: %v\n", prefix, err)
}
