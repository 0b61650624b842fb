// Package daily picks a deterministic secret word for each calendar day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using a BLAKE2b-256 MAC
// keyed by salt over the date key, reduced modulo n. Salts longer than 64
// bytes are hashed down to a usable key first.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// only reachable for keys over 64 bytes, handled above
		return 0
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Secret returns the dictionary word for the given date.
func Secret(dict *words.Dictionary, date time.Time, salt string) string {
	return dict.At(WordIndex(date, salt, dict.Len()))
}
