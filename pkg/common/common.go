// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
)

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	return WrtTempPattern(s, "_del_me_testing")
}

// WrtTempPattern is WrtTemp, but the caller chooses the name pattern,
// as for os.CreateTemp. Useful when something downstream looks at the
// file extension, "_del_me_*.yaml".
func WrtTempPattern(s, pattern string) (string, error) {
	f_tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()
	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
