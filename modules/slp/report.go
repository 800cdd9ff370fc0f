package slp

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// InvalidTx is a transaction that declared itself as SLP but failed to decode.
type InvalidTx struct {
	TxHash chainhash.Hash
	Err    error
}

// Report summarizes a single reconciliation pass.
type Report struct {
	Family Family
	// Skipped is true if another pass of the same family was already running. Nothing else is set.
	Skipped bool

	Outputs           int
	Classified        int
	NewVerifiedTxs    int
	NewDescriptors    int
	OracleFailures    int
	DirectoryFailures int
	PersistFailures   int
	Invalid           []InvalidTx
	Duration          time.Duration
}

// Converged reports whether the pass learned nothing new. Another pass over the same wallet outputs
// would produce the same snapshot.
func (r *Report) Converged() bool {
	return !r.Skipped && r.NewVerifiedTxs == 0 && r.NewDescriptors == 0
}
