package slp

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
)

// TxState is the reconciliation progress of a single transaction.
//
//	Unseen -> PendingValidation -> PendingMetadata -> Resolved
//
// Only verified transactions (PendingMetadata and Resolved) survive a restart, through the verified set.
type TxState uint8

const (
	TxStateUnseen TxState = iota
	// Submitted to the validity oracle but not confirmed yet.
	TxStatePendingValidation
	// Confirmed valid, waiting for the token descriptor.
	TxStatePendingMetadata
	// Confirmed valid and its token descriptor is cached.
	TxStateResolved
)

func (s TxState) String() string {
	switch s {
	case TxStateUnseen:
		return "unseen"
	case TxStatePendingValidation:
		return "pending_validation"
	case TxStatePendingMetadata:
		return "pending_metadata"
	case TxStateResolved:
		return "resolved"
	}
	return "unknown"
}

func (s TxState) MarshalText() ([]byte, error) {
	if s > TxStateResolved {
		return nil, errors.Errorf("unknown tx state %d", s)
	}
	return []byte(s.String()), nil
}

// txTracker owns the verified transaction set. The set is append-only.
type txTracker struct {
	mu       sync.RWMutex
	verified map[chainhash.Hash]struct{}
	order    []chainhash.Hash
	pending  map[chainhash.Hash]struct{}
	resolved map[chainhash.Hash]struct{}
}

func newTxTracker() *txTracker {
	return &txTracker{
		verified: make(map[chainhash.Hash]struct{}),
		pending:  make(map[chainhash.Hash]struct{}),
		resolved: make(map[chainhash.Hash]struct{}),
	}
}

func (t *txTracker) IsVerified(txHash chainhash.Hash) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.verified[txHash]
	return ok
}

// AddVerified adds the hashes that aren't verified yet and returns how many were added.
func (t *txTracker) AddVerified(txHashes ...chainhash.Hash) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	added := 0
	for _, txHash := range txHashes {
		if _, ok := t.verified[txHash]; ok {
			continue
		}
		t.verified[txHash] = struct{}{}
		t.order = append(t.order, txHash)
		delete(t.pending, txHash)
		added++
	}
	return added
}

func (t *txTracker) MarkPendingValidation(txHash chainhash.Hash) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.verified[txHash]; ok {
		return
	}
	t.pending[txHash] = struct{}{}
}

func (t *txTracker) MarkResolved(txHash chainhash.Hash) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.verified[txHash]; !ok {
		return
	}
	t.resolved[txHash] = struct{}{}
}

func (t *txTracker) State(txHash chainhash.Hash) TxState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.resolved[txHash]; ok {
		return TxStateResolved
	}
	if _, ok := t.verified[txHash]; ok {
		return TxStatePendingMetadata
	}
	if _, ok := t.pending[txHash]; ok {
		return TxStatePendingValidation
	}
	return TxStateUnseen
}

// VerifiedTxs returns the verified set in insertion order.
func (t *txTracker) VerifiedTxs() []chainhash.Hash {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]chainhash.Hash(nil), t.order...)
}

func (t *txTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}
