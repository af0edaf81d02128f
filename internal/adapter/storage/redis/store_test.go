package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewStore(client)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	value, err := store.Get(context.Background(), "user:GABSENT")
	require.NoError(t, err)
	assert.Nil(t, value, "missing key must be (nil, nil), not an error")
}

func TestStore_SetGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "group:1", []byte(`{"group_id":1}`)))

	value, err := store.Get(ctx, "group:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"group_id":1}`), value)
}

func TestStore_SetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "plan_id_counter", []byte("1")))
	require.NoError(t, store.Set(ctx, "plan_id_counter", []byte("2")))

	value, err := store.Get(ctx, "plan_id_counter")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), value)
}

func TestStore_Has(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ok, err := store.Has(ctx, "group_member:1:GA")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "group_member:1:GA", []byte("true")))

	// Repeated existence checks never mutate.
	for i := 0; i < 3; i++ {
		ok, err = store.Has(ctx, "group_member:1:GA")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestStore_KeysArePrefixed(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewStore(client)

	require.NoError(t, store.Set(context.Background(), "admin", []byte("x")))
	assert.True(t, s.Exists("ledger:admin"), "store keys share one redis namespace prefix")
}
