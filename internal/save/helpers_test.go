package save_test

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

func checksum(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func itoa(n int) string { return strconv.Itoa(n) }
