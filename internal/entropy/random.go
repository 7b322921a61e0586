// Package entropy supplies seeds for games started without one.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"
)

// Seed returns a positive random seed from crypto/rand, falling back to the
// clock if the system source fails.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		slog.Debug("crypto/rand unavailable, seeding from clock", "error", err)
		return time.Now().UnixNano() & 0x7fffffffffffffff
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}

// SeedOr returns seed when set, otherwise a fresh random one.
func SeedOr(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return Seed()
}
