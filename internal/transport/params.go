package transport

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// params are the positional arguments of one call. A missing or null
// argument takes the caller's default.
type params []jsoniter.RawMessage

func (p params) require(n int) error {
	if len(p) < n {
		return fmt.Errorf("%w: expected at least %d, got %d", errInvalidParams, n, len(p))
	}
	return nil
}

func (p params) present(i int) bool {
	return i < len(p) && !bytes.Equal(bytes.TrimSpace(p[i]), []byte("null"))
}

func (p params) string(i int) (string, error) {
	if !p.present(i) {
		return "", fmt.Errorf("%w: parameter %d is required", errInvalidParams, i+1)
	}
	var v string
	if err := json.Unmarshal(p[i], &v); err != nil {
		return "", fmt.Errorf("%w: parameter %d must be a string", errInvalidParams, i+1)
	}
	return v, nil
}

func (p params) int64(i int, def int64) (int64, error) {
	if !p.present(i) {
		return def, nil
	}
	var v int64
	if err := json.Unmarshal(p[i], &v); err != nil {
		return 0, fmt.Errorf("%w: parameter %d must be an integer", errInvalidParams, i+1)
	}
	return v, nil
}

// bool also accepts 0 and 1, which bitcoind clients send for verbosity flags.
func (p params) bool(i int, def bool) (bool, error) {
	if !p.present(i) {
		return def, nil
	}
	var b bool
	if err := json.Unmarshal(p[i], &b); err == nil {
		return b, nil
	}
	var n int64
	if err := json.Unmarshal(p[i], &n); err == nil && (n == 0 || n == 1) {
		return n == 1, nil
	}
	return false, fmt.Errorf("%w: parameter %d must be a boolean", errInvalidParams, i+1)
}

// verbosity reads getblock's level, given either as an integer or a boolean.
func (p params) verbosity(i int, def int) (int, error) {
	if !p.present(i) {
		return def, nil
	}
	var n int
	if err := json.Unmarshal(p[i], &n); err == nil {
		return n, nil
	}
	var b bool
	if err := json.Unmarshal(p[i], &b); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: parameter %d must be an integer or boolean", errInvalidParams, i+1)
}
