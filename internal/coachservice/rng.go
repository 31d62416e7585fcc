package coachservice

import (
	"strconv"
	"unicode/utf16"
)

const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// HashKey is FNV-1a over the UTF-16 code units of s.
// Hashing code units instead of UTF-8 bytes keeps the value identical to a
// JavaScript implementation driven by charCodeAt.
func HashKey(s string) uint32 {
	h := fnvOffset32
	for _, unit := range utf16.Encode([]rune(s)) {
		h ^= uint32(unit)
		h *= fnvPrime32
	}
	return h
}

// Rand is a mulberry32 stream. It is not safe for concurrent use; every
// request builds its own.
type Rand struct {
	state uint32
}

// NewRand returns a generator whose sequence depends only on seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (1 | t)
	t ^= t + (t^(t>>7))*(61|t)
	return float64(t^(t>>14)) / 4294967296.0
}

// Intn returns floor(Float64()*n). It returns 0 for n <= 0 without
// consuming a draw.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// SeedKey builds the string that gets hashed into the request seed.
//
//   - an explicit seed wins;
//   - with a user id: "<user>:<date>:<nonce>";
//   - otherwise the date and macro totals, plus ":<nonce>" when given.
func SeedKey(in Input, date string) string {
	if in.Seed != "" {
		return in.Seed
	}
	if in.UserID != "" {
		return in.UserID + ":" + date + ":" + in.Signals.Nonce
	}

	key := date + "|" + fmtNum(in.Totals.Kcal) + "|" + fmtNum(in.Totals.Protein) +
		"|" + fmtNum(in.Totals.Fat) + "|" + fmtNum(in.Totals.Carbs)
	if in.Signals.Nonce != "" {
		key += ":" + in.Signals.Nonce
	}
	return key
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
