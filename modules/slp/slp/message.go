package slp

import (
	"bytes"
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/core/types"
)

// GenesisInfo holds the token properties declared by a GENESIS message.
type GenesisInfo struct {
	Ticker       string
	Name         string
	DocumentURL  string
	DocumentHash []byte
	Decimals     uint8
}

// Message is a decoded SLP marker output.
type Message struct {
	Type TxType
	// For genesis messages this is the id of the containing transaction.
	TokenId TokenId
	// Amounts[i] is the raw token quantity attributed to output i+1.
	Amounts []uint64
	// Output index that receives the mint baton. Nil if no baton is issued.
	MintBaton *uint32
	// Only set for genesis messages.
	Genesis *GenesisInfo
}

// AmountAt returns the raw quantity attributed to the given output index.
func (m *Message) AmountAt(outputIndex uint32) (uint64, bool) {
	if outputIndex == 0 || int(outputIndex-1) >= len(m.Amounts) {
		return 0, false
	}
	return m.Amounts[outputIndex-1], true
}

func (m *Message) IsMintBaton(outputIndex uint32) bool {
	return m.MintBaton != nil && *m.MintBaton == outputIndex
}

// ClassifyTokenType runs the cheap part of decoding: it checks the marker output, the protocol tag
// and the token type byte without interpreting the rest of the message.
func ClassifyTokenType(tx *types.Transaction) (TokenType, error) {
	chunks, err := markerChunksFromTx(tx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	tokenType, err := tokenTypeFromChunks(chunks)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return tokenType, nil
}

// DecodeMessage decodes the SLP message carried by the first output of tx.
// Returns ErrNotSlpTransaction if the transaction doesn't carry an SLP marker. Any other error means the
// transaction declared itself as SLP but the message is malformed.
func DecodeMessage(tx *types.Transaction) (*Message, error) {
	chunks, err := markerChunksFromTx(tx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	tokenType, err := tokenTypeFromChunks(chunks)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if len(chunks) <= chunkTxType || !chunks[chunkTxType].IsPush() {
		return nil, errors.Wrap(ErrIllegalOperation, "missing operation label")
	}
	label := Operation(chunks[chunkTxType].Data)
	txType, err := NewTxType(tokenType, label)
	if err != nil {
		return nil, errors.Wrapf(err, "token type %s, operation %q", tokenType, string(label))
	}

	message := &Message{
		Type: txType,
	}

	if txType.IsGenesis() {
		message.TokenId = NewTokenIdFromHash(tx.TxHash)
	} else {
		if len(chunks) <= chunkTokenId || !chunks[chunkTokenId].IsPush() {
			return nil, errors.Wrap(ErrMalformedTokenId, "missing token id")
		}
		tokenId, err := NewTokenIdFromBytes(chunks[chunkTokenId].Data)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		message.TokenId = tokenId
	}

	if batonChunk, ok := txType.MintBatonChunk(); ok && len(chunks) > batonChunk {
		mintBaton, err := parseMintBaton(chunks[batonChunk])
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d", batonChunk)
		}
		message.MintBaton = mintBaton
	}

	offset := txType.AmountOffset()
	if len(chunks) <= offset {
		return nil, errors.Wrapf(ErrMalformedAmount, "%s requires quantities from chunk %d, script has %d chunks", txType, offset, len(chunks))
	}
	message.Amounts = make([]uint64, 0, len(chunks)-offset)
	for i := offset; i < len(chunks); i++ {
		amount, err := parseAmount(chunks[i])
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d", i)
		}
		message.Amounts = append(message.Amounts, amount)
	}

	if txType.IsGenesis() {
		message.Genesis = genesisInfoFromChunks(chunks)
	}

	return message, nil
}

// markerChunksFromTx returns the chunks of the first output if it is an SLP marker output.
func markerChunksFromTx(tx *types.Transaction) ([]Chunk, error) {
	if tx == nil || len(tx.TxOut) == 0 {
		return nil, ErrNotSlpTransaction
	}
	chunks, parseErr := ParseChunks(tx.TxOut[0].PkScript)

	// marker output must start with OP_RETURN
	if len(chunks) == 0 || chunks[0].Opcode != PAYLOAD_MARKER_OPCODE {
		return nil, ErrNotSlpTransaction
	}
	// followed by the protocol tag
	if len(chunks) <= chunkProtocolTag {
		return nil, ErrNotSlpTransaction
	}
	tag := chunks[chunkProtocolTag]
	if !tag.IsPush() || !bytes.Equal(tag.Data, ProtocolTag) {
		return nil, ErrNotSlpTransaction
	}

	// the transaction is now considered SLP. Any error from here on must be surfaced.
	if parseErr != nil {
		return nil, errors.Mark(parseErr, ErrMalformedScript)
	}
	return chunks, nil
}

func tokenTypeFromChunks(chunks []Chunk) (TokenType, error) {
	if len(chunks) <= chunkTokenType {
		return 0, errors.Wrap(ErrUnknownTokenType, "missing token type")
	}
	chunk := chunks[chunkTokenType]
	if !chunk.IsPush() || len(chunk.Data) != 1 {
		return 0, errors.Wrapf(ErrUnknownTokenType, "token type must be a 1-byte push, got opcode 0x%02x with %d bytes", chunk.Opcode, len(chunk.Data))
	}
	tokenType := TokenType(chunk.Data[0])
	if !tokenType.IsValid() {
		return 0, errors.Wrapf(ErrUnknownTokenType, "0x%s", hex.EncodeToString(chunk.Data))
	}
	return tokenType, nil
}

// parseMintBaton returns nil if the chunk is an empty push.
func parseMintBaton(chunk Chunk) (*uint32, error) {
	if !chunk.IsPush() {
		return nil, errors.Wrapf(ErrMalformedMintBaton, "opcode 0x%02x is not a data push", chunk.Opcode)
	}
	if len(chunk.Data) == 0 {
		return nil, nil
	}
	if len(chunk.Data) > 4 {
		return nil, errors.Wrapf(ErrMalformedMintBaton, "vout has %d bytes", len(chunk.Data))
	}
	var vout uint32
	for _, b := range chunk.Data {
		vout = vout<<8 | uint32(b)
	}
	return &vout, nil
}

func parseAmount(chunk Chunk) (uint64, error) {
	if !chunk.IsPush() {
		return 0, errors.Wrapf(ErrMalformedAmount, "opcode 0x%02x is not a data push", chunk.Opcode)
	}
	if len(chunk.Data) == 0 || len(chunk.Data) > amountSize {
		return 0, errors.Wrapf(ErrMalformedAmount, "quantity has %d bytes", len(chunk.Data))
	}
	var amount uint64
	for _, b := range chunk.Data {
		amount = amount<<8 | uint64(b)
	}
	return amount, nil
}

func genesisInfoFromChunks(chunks []Chunk) *GenesisInfo {
	data := func(i int) []byte {
		if i >= len(chunks) || !chunks[i].IsPush() {
			return nil
		}
		return chunks[i].Data
	}
	info := &GenesisInfo{
		Ticker:       string(data(chunkGenesisTicker)),
		Name:         string(data(chunkGenesisName)),
		DocumentURL:  string(data(chunkGenesisDocumentURL)),
		DocumentHash: data(chunkGenesisDocumentHash),
	}
	if decimals := data(chunkGenesisDecimals); len(decimals) == 1 {
		info.Decimals = decimals[0]
	}
	if len(info.DocumentHash) == 0 {
		info.DocumentHash = nil
	}
	return info
}
