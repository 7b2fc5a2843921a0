// Package locker provides the per-resource serialization point the engines
// hold across their read-check-write sequences.
package locker

import (
	"context"
	"sync"
)

// Unlock releases a held lock. It must be called exactly once.
type Unlock func()

// Locker grants exclusive access to a named resource
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned context is
	// derived from ctx and is cancelled on Unlock or when the lock is lost;
	// holders check it before committing.
	Lock(ctx context.Context, key string) (context.Context, Unlock, error)
}

// CarKey is the lock key guarding reservations of a car
func CarKey(carID string) string {
	return "car:" + carID
}

// AuctionKey is the lock key guarding bids of an auction
func AuctionKey(auctionID string) string {
	return "auction:" + auctionID
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex is an in-process Locker with one mutex per key.
// Entries are dropped once no goroutine holds or waits on them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyedEntry
}

// NewKeyedMutex creates an empty KeyedMutex
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*keyedEntry)}
}

// Lock implements Locker. A context that is already done never gets the lock.
func (k *KeyedMutex) Lock(ctx context.Context, key string) (context.Context, Unlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &keyedEntry{sem: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(key, e)
		return nil, nil, ctx.Err()
	}
	// both cases may have been ready; a done context loses
	if err := ctx.Err(); err != nil {
		<-e.sem
		k.release(key, e)
		return nil, nil, err
	}

	lockCtx, cancel := context.WithCancel(ctx)
	var once sync.Once
	return lockCtx, func() {
		once.Do(func() {
			cancel()
			<-e.sem
			k.release(key, e)
		})
	}, nil
}

func (k *KeyedMutex) release(key string, e *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}

// size returns the number of live entries
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}
