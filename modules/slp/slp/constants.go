package slp

import "github.com/btcsuite/btcd/txscript"

const (
	// PAYLOAD_MARKER_OPCODE is the opcode every SLP marker output starts with.
	PAYLOAD_MARKER_OPCODE = txscript.OP_RETURN

	// amountSize is the width of every quantity field written by the encoder.
	amountSize = 8
)

// ProtocolTag is the 4-byte lokad id pushed right after OP_RETURN ("SLP\x00").
var ProtocolTag = []byte{0x53, 0x4c, 0x50, 0x00}

// chunk locations inside the marker script. chunk 0 is the OP_RETURN opcode itself.
const (
	chunkProtocolTag = 1
	chunkTokenType   = 2
	chunkTxType      = 3
	chunkTokenId     = 4

	// genesis header
	chunkGenesisTicker       = 4
	chunkGenesisName         = 5
	chunkGenesisDocumentURL  = 6
	chunkGenesisDocumentHash = 7
	chunkGenesisDecimals     = 8
	chunkGenesisMintBaton    = 9

	// mint header
	chunkMintMintBaton = 5
)
