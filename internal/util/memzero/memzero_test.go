package memzero_test

import (
	"testing"

	"chacha/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d after Zero", i, v)
		}
	}
	memzero.Zero(nil) // must not panic
}
