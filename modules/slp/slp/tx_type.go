package slp

import "fmt"

// TokenType is the token class byte pushed at chunk 2 of the marker script.
type TokenType byte

const (
	TokenTypeFungible  TokenType = 0x01
	TokenTypeNftParent TokenType = 0x81
	TokenTypeNftChild  TokenType = 0x41
)

func (t TokenType) IsValid() bool {
	switch t {
	case TokenTypeFungible, TokenTypeNftParent, TokenTypeNftChild:
		return true
	}
	return false
}

func (t TokenType) String() string {
	switch t {
	case TokenTypeFungible:
		return "SLP1"
	case TokenTypeNftParent:
		return "NFT1_PARENT"
	case TokenTypeNftChild:
		return "NFT1_CHILD"
	}
	return fmt.Sprintf("UNKNOWN(0x%02x)", byte(t))
}

// Operation is the ASCII label pushed at chunk 3 of the marker script.
type Operation string

const (
	OperationGenesis Operation = "GENESIS"
	OperationMint    Operation = "MINT"
	OperationSend    Operation = "SEND"
)

// TxType is the combination of token type and operation. Only the 8 legal combinations exist,
// NFT children can't be minted after issuance.
type TxType uint8

const (
	TxTypeGenesis TxType = iota + 1
	TxTypeMint
	TxTypeSend
	TxTypeNftParentGenesis
	TxTypeNftParentMint
	TxTypeNftParentSend
	TxTypeNftChildGenesis
	TxTypeNftChildSend
)

type txTypeKey struct {
	tokenType TokenType
	operation Operation
}

type txTypeLayout struct {
	key TxType
	// chunk index where output quantities begin
	amountStart int
	// chunk index of the mint baton vout, or -1 if the operation never issues a baton
	mintBaton int
	name      string
}

var txTypes = map[txTypeKey]txTypeLayout{
	{TokenTypeFungible, OperationGenesis}:  {TxTypeGenesis, 10, chunkGenesisMintBaton, "GENESIS"},
	{TokenTypeFungible, OperationMint}:     {TxTypeMint, 6, chunkMintMintBaton, "MINT"},
	{TokenTypeFungible, OperationSend}:     {TxTypeSend, 5, -1, "SEND"},
	{TokenTypeNftParent, OperationGenesis}: {TxTypeNftParentGenesis, 10, chunkGenesisMintBaton, "NFT_PARENT_GENESIS"},
	{TokenTypeNftParent, OperationMint}:    {TxTypeNftParentMint, 6, chunkMintMintBaton, "NFT_PARENT_MINT"},
	{TokenTypeNftParent, OperationSend}:    {TxTypeNftParentSend, 5, -1, "NFT_PARENT_SEND"},
	{TokenTypeNftChild, OperationGenesis}:  {TxTypeNftChildGenesis, 10, -1, "NFT_CHILD_GENESIS"},
	{TokenTypeNftChild, OperationSend}:     {TxTypeNftChildSend, 5, -1, "NFT_CHILD_SEND"},
}

var txTypeKeys = func() map[TxType]txTypeKey {
	keys := make(map[TxType]txTypeKey, len(txTypes))
	for key, layout := range txTypes {
		keys[layout.key] = key
	}
	return keys
}()

// NewTxType returns the TxType for the given token type and operation.
// Returns ErrIllegalOperation if the combination is not one of the 8 legal variants.
func NewTxType(tokenType TokenType, operation Operation) (TxType, error) {
	layout, ok := txTypes[txTypeKey{tokenType, operation}]
	if !ok {
		return 0, ErrIllegalOperation
	}
	return layout.key, nil
}

func (t TxType) layout() txTypeLayout {
	return txTypes[txTypeKeys[t]]
}

func (t TxType) TokenType() TokenType {
	return txTypeKeys[t].tokenType
}

func (t TxType) Operation() Operation {
	return txTypeKeys[t].operation
}

// AmountOffset is the chunk index where output quantity chunks begin.
func (t TxType) AmountOffset() int {
	return t.layout().amountStart
}

// MintBatonChunk returns the chunk index holding the mint baton vout.
func (t TxType) MintBatonChunk() (int, bool) {
	idx := t.layout().mintBaton
	return idx, idx >= 0
}

func (t TxType) IsGenesis() bool {
	return t.Operation() == OperationGenesis
}

func (t TxType) String() string {
	if _, ok := txTypeKeys[t]; !ok {
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
	return t.layout().name
}
