package slp

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
)

// MaxSendOutputs is the number of quantity chunks a SEND message may carry.
const MaxSendOutputs = 19

// scriptBuilder wraps txscript.ScriptBuilder to write every chunk as a plain data push.
// txscript.ScriptBuilder.AddData would turn 1-byte pushes like 0x01 or 0x81 into OP_1 or OP_1NEGATE,
// which decoders reject as non-push opcodes.
type scriptBuilder struct {
	*txscript.ScriptBuilder
}

func newMarkerBuilder(tokenType TokenType, operation Operation) *scriptBuilder {
	b := &scriptBuilder{txscript.NewScriptBuilder()}
	b.AddOp(PAYLOAD_MARKER_OPCODE)
	b.push(ProtocolTag)
	b.push([]byte{byte(tokenType)})
	b.push([]byte(operation))
	return b
}

func (b *scriptBuilder) push(data []byte) *scriptBuilder {
	switch len(data) {
	case 0:
		b.AddOps([]byte{txscript.OP_PUSHDATA1, 0x00})
	case 1:
		b.AddOps([]byte{txscript.OP_DATA_1, data[0]})
	default:
		b.AddData(data)
	}
	return b
}

func (b *scriptBuilder) pushAmount(amount uint64) *scriptBuilder {
	var buf [amountSize]byte
	binary.BigEndian.PutUint64(buf[:], amount)
	return b.push(buf[:])
}

// pushMintBaton writes the baton vout with the fewest big-endian bytes, or an empty push when there is no baton.
func (b *scriptBuilder) pushMintBaton(mintBaton *uint32) *scriptBuilder {
	if mintBaton == nil {
		return b.push(nil)
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], *mintBaton)
	start := 0
	for start < len(buf)-1 && buf[start] == 0 {
		start++
	}
	return b.push(buf[start:])
}

func (b *scriptBuilder) build() ([]byte, error) {
	script, err := b.Script()
	if err != nil {
		return nil, errors.Wrap(err, "can't build marker script")
	}
	return script, nil
}

// EncodeSend builds the marker script transferring amount to output 1. The change chunk is written only
// when changeAmount is positive, and is then attributed to output 2.
func EncodeSend(tokenType TokenType, tokenId TokenId, amount uint64, changeAmount uint64) ([]byte, error) {
	amounts := []uint64{amount}
	if changeAmount > 0 {
		amounts = append(amounts, changeAmount)
	}
	return EncodeSendMany(tokenType, tokenId, amounts)
}

// EncodeSendMany builds a SEND marker script attributing amounts[i] to output i+1.
func EncodeSendMany(tokenType TokenType, tokenId TokenId, amounts []uint64) ([]byte, error) {
	if !tokenType.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown token type 0x%02x", byte(tokenType))
	}
	if len(amounts) == 0 || len(amounts) > MaxSendOutputs {
		return nil, errors.Wrapf(errs.InvalidArgument, "send must have between 1 and %d outputs, got %d", MaxSendOutputs, len(amounts))
	}
	if tokenId.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "token id is required")
	}

	b := newMarkerBuilder(tokenType, OperationSend)
	b.push(tokenId.Bytes())
	for _, amount := range amounts {
		b.pushAmount(amount)
	}
	return b.build()
}

// EncodeGenesis builds a GENESIS marker script issuing quantity to output 1.
// NFT children can't carry a mint baton.
func EncodeGenesis(tokenType TokenType, info GenesisInfo, mintBaton *uint32, quantity uint64) ([]byte, error) {
	if !tokenType.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown token type 0x%02x", byte(tokenType))
	}
	txType, err := NewTxType(tokenType, OperationGenesis)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, ok := txType.MintBatonChunk(); !ok && mintBaton != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "%s can't issue a mint baton", txType)
	}
	if mintBaton != nil && *mintBaton < 2 {
		return nil, errors.Wrapf(errs.InvalidArgument, "mint baton must go to output 2 or later, got %d", *mintBaton)
	}
	if len(info.DocumentHash) != 0 && len(info.DocumentHash) != 32 {
		return nil, errors.Wrapf(errs.InvalidArgument, "document hash must be 32 bytes, got %d", len(info.DocumentHash))
	}
	if info.Decimals > MaxDecimals {
		return nil, errors.Wrapf(errs.InvalidArgument, "decimals must be at most %d, got %d", MaxDecimals, info.Decimals)
	}

	b := newMarkerBuilder(tokenType, OperationGenesis)
	b.push([]byte(info.Ticker))
	b.push([]byte(info.Name))
	b.push([]byte(info.DocumentURL))
	b.push(info.DocumentHash)
	b.push([]byte{info.Decimals})
	b.pushMintBaton(mintBaton)
	b.pushAmount(quantity)
	return b.build()
}

// EncodeMint builds a MINT marker script issuing quantity to output 1.
func EncodeMint(tokenType TokenType, tokenId TokenId, mintBaton *uint32, quantity uint64) ([]byte, error) {
	if !tokenType.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown token type 0x%02x", byte(tokenType))
	}
	if _, err := NewTxType(tokenType, OperationMint); err != nil {
		return nil, errors.Wrapf(err, "token type %s", tokenType)
	}
	if tokenId.IsZero() {
		return nil, errors.Wrap(errs.InvalidArgument, "token id is required")
	}
	if mintBaton != nil && *mintBaton < 2 {
		return nil, errors.Wrapf(errs.InvalidArgument, "mint baton must go to output 2 or later, got %d", *mintBaton)
	}

	b := newMarkerBuilder(tokenType, OperationMint)
	b.push(tokenId.Bytes())
	b.pushMintBaton(mintBaton)
	b.pushAmount(quantity)
	return b.build()
}
