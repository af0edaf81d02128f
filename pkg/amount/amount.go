// Package amount provides a signed 128-bit integer with checked arithmetic.
// Additions and subtractions that would leave the i128 range report failure
// instead of wrapping; ledger code turns those into Overflow/Underflow errors.
package amount

import (
	"fmt"
	"math/big"
)

var (
	// [-2^127, 2^127-1]
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
)

// Amount is an immutable signed 128-bit integer. The zero value is 0.
type Amount struct {
	i big.Int
}

// New returns the Amount for v.
func New(v int64) Amount {
	var a Amount
	a.i.SetInt64(v)
	return a
}

// Zero returns the zero Amount.
func Zero() Amount {
	return Amount{}
}

// Parse converts a base-10 string into an Amount.
func Parse(s string) (Amount, error) {
	var a Amount
	if _, ok := a.i.SetString(s, 10); !ok {
		return Amount{}, fmt.Errorf("amount: invalid integer %q", s)
	}
	if !inRange(&a.i) {
		return Amount{}, fmt.Errorf("amount: %s out of 128-bit range", s)
	}
	return a, nil
}

// MustParse is Parse that panics on error, for constants in tests and wiring.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func inRange(i *big.Int) bool {
	return i.Cmp(minI128) >= 0 && i.Cmp(maxI128) <= 0
}

// Add returns a+b. ok is false when the result leaves the i128 range.
func (a Amount) Add(b Amount) (Amount, bool) {
	var r Amount
	r.i.Add(&a.i, &b.i)
	if !inRange(&r.i) {
		return Amount{}, false
	}
	return r, true
}

// Sub returns a-b. ok is false when the result leaves the i128 range.
func (a Amount) Sub(b Amount) (Amount, bool) {
	var r Amount
	r.i.Sub(&a.i, &b.i)
	if !inRange(&r.i) {
		return Amount{}, false
	}
	return r, true
}

// Cmp returns -1, 0 or 1 comparing a against b.
func (a Amount) Cmp(b Amount) int {
	return a.i.Cmp(&b.i)
}

// Sign returns -1, 0 or 1 for negative, zero and positive amounts.
func (a Amount) Sign() int {
	return a.i.Sign()
}

// IsZero reports whether the amount is 0.
func (a Amount) IsZero() bool {
	return a.i.Sign() == 0
}

// Equal reports whether a == b.
func (a Amount) Equal(b Amount) bool {
	return a.i.Cmp(&b.i) == 0
}

// String returns the base-10 representation.
func (a Amount) String() string {
	return a.i.String()
}

// Bytes16 returns the big-endian two's-complement 16-byte encoding, used by
// the mint payload signing format.
func (a Amount) Bytes16() [16]byte {
	v := new(big.Int).Set(&a.i)
	if v.Sign() < 0 {
		v.Add(v, two128)
	}
	var out [16]byte
	v.FillBytes(out[:])
	return out
}

// MarshalJSON encodes the amount as a decimal string to survive JSON number
// precision limits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.i.String() + `"`), nil
}

// UnmarshalJSON accepts both a decimal string and a bare JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
