package types

import "github.com/btcsuite/btcd/wire"

// SpendableOutput is an unspent output owned by the wallet.
type SpendableOutput struct {
	OutPoint wire.OutPoint
	Value    int64
	PkScript []byte
	// ParentTx is the transaction that created the output. Nil if the node couldn't return it.
	ParentTx *Transaction
}

// Index is the position of the output inside its parent transaction.
func (o *SpendableOutput) Index() uint32 {
	return o.OutPoint.Index
}
