package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"savings-ledger/internal/core/ports"
	"savings-ledger/pkg/amount"
	"savings-ledger/pkg/apperror"
)

// getRecord unmarshals the JSON record at key into out. found is false when
// the key is absent.
func getRecord(ctx context.Context, store ports.Store, key string, out interface{}) (bool, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get %s: %w", key, err))
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, apperror.InternalError(fmt.Errorf("decode %s: %w", key, err))
	}
	return true, nil
}

// setRecord marshals v as JSON and writes it under key.
func setRecord(ctx context.Context, store ports.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("encode %s: %w", key, err))
	}
	if err := store.Set(ctx, key, data); err != nil {
		return apperror.InternalError(fmt.Errorf("set %s: %w", key, err))
	}
	return nil
}

// nextID advances the monotonic counter at key and returns the allocated id.
// Counters start at 1. The host serializes calls, so read-modify-write is
// race-free within one operation.
func nextID(ctx context.Context, store ports.Store, key string) (uint64, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get counter %s: %w", key, err))
	}
	var current uint64
	if data != nil {
		current, err = strconv.ParseUint(string(data), 10, 64)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("parse counter %s: %w", key, err))
		}
	}
	id := current + 1
	if err := store.Set(ctx, key, []byte(strconv.FormatUint(id, 10))); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("set counter %s: %w", key, err))
	}
	return id, nil
}

// getAmount reads the decimal-encoded accumulator at key, defaulting to 0
// when absent.
func getAmount(ctx context.Context, store ports.Store, key string) (amount.Amount, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return amount.Amount{}, apperror.InternalError(fmt.Errorf("get %s: %w", key, err))
	}
	if data == nil {
		return amount.Zero(), nil
	}
	amt, err := amount.Parse(string(data))
	if err != nil {
		return amount.Amount{}, apperror.InternalError(fmt.Errorf("parse %s: %w", key, err))
	}
	return amt, nil
}

// setAmount writes the accumulator at key as a decimal string.
func setAmount(ctx context.Context, store ports.Store, key string, amt amount.Amount) error {
	if err := store.Set(ctx, key, []byte(amt.String())); err != nil {
		return apperror.InternalError(fmt.Errorf("set %s: %w", key, err))
	}
	return nil
}
