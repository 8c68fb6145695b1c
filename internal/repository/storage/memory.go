package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNil - returned by Get when the key does not exist.
var ErrNil = errors.New("storage: nil")

// MemoryStorage keeps encoded values for the lifetime of the process.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string][]byte),
	}
}

func (that *MemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	that.mu.Lock()
	defer that.mu.Unlock()

	that.values[key] = stored

	return nil
}

func (that *MemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	value, ok := that.values[key]
	if !ok {
		return nil, ErrNil
	}

	return value, nil
}

// Del - removes the keys and reports how many existed.
func (that *MemoryStorage) Del(ctx context.Context, keys ...string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	deleted := 0
	for _, key := range keys {
		if _, ok := that.values[key]; ok {
			delete(that.values, key)
			deleted++
		}
	}

	return deleted, nil
}

func (that *MemoryStorage) FlushDB(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	clear(that.values)

	return nil
}
