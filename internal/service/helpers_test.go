package service

import (
	"context"

	"savings-ledger/internal/adapter/storage/memory"
	"savings-ledger/internal/core/domain"
	"savings-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

const (
	alice = domain.Address("GALICE7XKQZB5WKDQ3YBBO2TJ4C7SLQNHKVOU")
	bob   = domain.Address("GBOB4QY2M6NPLXW3Z5RRTSE6AUHBBFVJ2IEMC")
	carol = domain.Address("GCAROLN3F5P7TY6W2VDKX4QJHSMRUZAB9EOIW")
)

// fixture wires every service over one in-memory store and a fixed clock, the
// way the composition root does against a real backend.
type fixture struct {
	store    *memory.Store
	clock    *FixedClock
	admins   *AdminServiceImpl
	accounts *AccountServiceImpl
	plans    *PlanServiceImpl
	groups   *GroupServiceImpl
	mints    *MintServiceImpl
}

func newFixture() *fixture {
	store := memory.NewStore()
	clock := &FixedClock{Time: 1_700_000_000}
	authz := NewContextAuthorizer()
	log := zerolog.Nop()

	admins := NewAdminService(store, authz, log)
	return &fixture{
		store:    store,
		clock:    clock,
		admins:   admins,
		accounts: NewAccountService(store, authz, log),
		plans:    NewPlanService(store, authz, clock, log),
		groups:   NewGroupService(store, authz, clock, log),
		mints:    NewMintService(admins, clock, log),
	}
}

// as returns a context authorized for the given principals.
func as(principals ...domain.Address) context.Context {
	ctx := context.Background()
	for _, p := range principals {
		ctx = ports.ContextWithPrincipal(ctx, p)
	}
	return ctx
}
