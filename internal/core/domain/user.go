package domain

import "savings-ledger/pkg/amount"

// Address identifies a principal (user or admin) in the host environment.
type Address string

func (a Address) String() string { return string(a) }

// User is the aggregate account record for one address.
// TotalBalance is the sum of the implicit Flexi bucket and all plan balances;
// it never goes negative. SavingsCount counts plans ever created and never
// decreases.
type User struct {
	TotalBalance amount.Amount `json:"total_balance"`
	SavingsCount uint32        `json:"savings_count"`
}
