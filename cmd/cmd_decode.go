package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core/types"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type decodeResult struct {
	TxHash       string      `json:"txHash"`
	TxType       string      `json:"txType"`
	TokenType    string      `json:"tokenType"`
	TokenId      slp.TokenId `json:"tokenId"`
	Amounts      []uint64    `json:"amounts"`
	MintBaton    *uint32     `json:"mintBaton,omitempty"`
	Ticker       string      `json:"ticker,omitempty"`
	Name         string      `json:"name,omitempty"`
	DocumentURL  string      `json:"documentUrl,omitempty"`
	DocumentHash string      `json:"documentHash,omitempty"`
	Decimals     *uint8      `json:"decimals,omitempty"`
}

func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <raw tx hex>",
		Short:   "Decode the SLP message of a raw transaction",
		Args:    cobra.ExactArgs(1),
		Example: `slp decode 0200000001...`,
		RunE:    decodeHandler,
	}
}

func decodeHandler(cmd *cobra.Command, args []string) error {
	raw, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil {
		return errors.Wrap(errs.InvalidArgument, "transaction must be hex encoded")
	}
	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(raw)); err != nil {
		return errors.Wrapf(errs.InvalidArgument, "can't deserialize transaction: %v", err)
	}

	tx := types.ParseMsgTx(&msgTx, -1, chainhash.Hash{})
	message, err := slp.DecodeMessage(tx)
	if err != nil {
		return errors.Wrapf(err, "can't decode transaction %s", tx.TxHash)
	}

	result := decodeResult{
		TxHash:    tx.TxHash.String(),
		TxType:    message.Type.String(),
		TokenType: message.Type.TokenType().String(),
		TokenId:   message.TokenId,
		Amounts:   message.Amounts,
		MintBaton: message.MintBaton,
	}
	if info := message.Genesis; info != nil {
		result.Ticker = info.Ticker
		result.Name = info.Name
		result.DocumentURL = info.DocumentURL
		result.DocumentHash = hex.EncodeToString(info.DocumentHash)
		result.Decimals = lo.ToPtr(info.Decimals)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return errors.WithStack(encoder.Encode(result))
}
