package domain

import "crypto/ed25519"

// Admin is the single registered administrator: the address that authorizes
// rotations and the Ed25519 key that signs mint payloads.
type Admin struct {
	Address   Address           `json:"address"`
	PublicKey ed25519.PublicKey `json:"public_key"`
}
