package domain

import (
	"encoding/binary"

	"savings-ledger/pkg/amount"
)

// MintPayload is the admin-signed instruction authorizing a token mint.
// It is never persisted; it exists only as signature-verification input.
// Timestamp is the signing time and ExpiryDuration the validity window in
// seconds; the payload is valid through Timestamp+ExpiryDuration inclusive.
type MintPayload struct {
	User           Address       `json:"user"`
	Amount         amount.Amount `json:"amount"`
	Timestamp      uint64        `json:"timestamp"`
	ExpiryDuration uint64        `json:"expiry_duration"`
}

// Encode produces the deterministic byte encoding that is signed and
// verified. Layout, big-endian throughout:
//
//	4-byte user length | user bytes | 16-byte two's-complement amount |
//	8-byte timestamp | 8-byte expiry duration
//
// Any change to this layout invalidates every signature in flight.
func (p MintPayload) Encode() []byte {
	user := []byte(p.User)
	buf := make([]byte, 0, 4+len(user)+16+8+8)

	var userLen [4]byte
	binary.BigEndian.PutUint32(userLen[:], uint32(len(user)))
	buf = append(buf, userLen[:]...)
	buf = append(buf, user...)

	amt := p.Amount.Bytes16()
	buf = append(buf, amt[:]...)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], p.Timestamp)
	buf = append(buf, ts[:]...)

	var exp [8]byte
	binary.BigEndian.PutUint64(exp[:], p.ExpiryDuration)
	buf = append(buf, exp[:]...)

	return buf
}

// Expiry returns Timestamp+ExpiryDuration. ok is false when the unsigned
// addition wraps; callers must treat that as an expired payload.
func (p MintPayload) Expiry() (uint64, bool) {
	exp := p.Timestamp + p.ExpiryDuration
	if exp < p.Timestamp {
		return 0, false
	}
	return exp, true
}
