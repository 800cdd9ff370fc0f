package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type encodeSendCmdOptions struct {
	TokenType uint8
	TokenId   string
	Decimals  uint8
	Amounts   []string
}

func NewEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build SLP marker scripts",
	}
	cmd.AddCommand(newEncodeSendCommand())
	return cmd
}

func newEncodeSendCommand() *cobra.Command {
	opts := &encodeSendCmdOptions{}

	cmd := &cobra.Command{
		Use:     "send",
		Short:   "Build a SEND marker script, amounts go to outputs 1..n in order",
		Example: `slp encode send --token-id 959a...8e98 --decimals 2 --amount 10.5 --amount 0.25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return encodeSendHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.Uint8Var(&opts.TokenType, "token-type", uint8(slp.TokenTypeFungible), "Token type byte, 1 (fungible), 129 (NFT parent) or 65 (NFT child)")
	flags.StringVar(&opts.TokenId, "token-id", "", "Token id hex")
	flags.Uint8Var(&opts.Decimals, "decimals", 0, "Token decimals used to scale the amounts")
	flags.StringArrayVar(&opts.Amounts, "amount", nil, "Display amount of an output, repeat for every output")

	return cmd
}

func encodeSendHandler(opts *encodeSendCmdOptions, cmd *cobra.Command, _ []string) error {
	tokenId, err := slp.NewTokenIdFromString(opts.TokenId)
	if err != nil {
		return errors.Wrap(err, "invalid --token-id")
	}
	if len(opts.Amounts) == 0 {
		return errors.Wrap(errs.InvalidArgument, "at least one --amount is required")
	}

	rawAmounts := make([]uint64, 0, len(opts.Amounts))
	for _, amount := range opts.Amounts {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return errors.Wrapf(errs.InvalidArgument, "invalid amount %q", amount)
		}
		raw, err := slp.ToRawAmount(value, opts.Decimals)
		if err != nil {
			return errors.Wrapf(err, "can't scale amount %q", amount)
		}
		rawAmounts = append(rawAmounts, raw)
	}

	script, err := slp.EncodeSendMany(slp.TokenType(opts.TokenType), tokenId, rawAmounts)
	if err != nil {
		return errors.Wrap(err, "can't encode send script")
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(script))
	return nil
}
