package slp

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/cockroachdb/errors"
)

// Chunk is a single opcode of a script together with the data it pushes, if any.
type Chunk struct {
	Opcode byte
	Data   []byte
}

// IsPush reports whether the chunk is a data push opcode (OP_0, OP_DATA_1..75, OP_PUSHDATA1/2/4).
// Small integer opcodes (OP_1..OP_16, OP_1NEGATE) are not pushes.
func (c Chunk) IsPush() bool {
	return IsDataPushOpCode(c.Opcode)
}

// ParseChunks splits a script into chunks. If the script is malformed, the chunks read so
// far are returned together with the error.
func ParseChunks(script []byte) ([]Chunk, error) {
	chunks := make([]Chunk, 0, 8)
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	for tokenizer.Next() {
		chunks = append(chunks, Chunk{
			Opcode: tokenizer.Opcode(),
			Data:   tokenizer.Data(),
		})
	}
	if err := tokenizer.Err(); err != nil {
		return chunks, errors.Wrap(err, "invalid script")
	}
	return chunks, nil
}

func IsDataPushOpCode(opCode byte) bool {
	// includes OP_0, OP_DATA_1 to OP_DATA_75, OP_PUSHDATA1, OP_PUSHDATA2, OP_PUSHDATA4
	return opCode <= txscript.OP_PUSHDATA4
}
