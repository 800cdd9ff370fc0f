package usecase

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	slpcodec "github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/shopspring/decimal"
)

type BalanceScope string

const (
	BalanceScopeTokens     BalanceScope = "tokens"
	BalanceScopeNftParents BalanceScope = "nft_parents"
	BalanceScopeNfts       BalanceScope = "nfts"
)

// GetBalances returns the balances of the latest snapshot, sorted by ticker then token id.
func (u *Usecase) GetBalances(_ context.Context, scope BalanceScope) ([]*entity.TokenBalance, time.Time, error) {
	var (
		snapshot *slp.Snapshot
		balances map[slpcodec.TokenId]decimal.Decimal
		ticker   func(slpcodec.TokenId) string
	)
	switch scope {
	case BalanceScopeTokens, BalanceScopeNftParents:
		snapshot = u.reconciler.Snapshot(slp.FamilyFungible)
		balances = snapshot.Balances
		if scope == BalanceScopeNftParents {
			balances = snapshot.NftParentBalances
		}
		ticker = func(tokenId slpcodec.TokenId) string {
			if token, ok := u.reconciler.Token(tokenId); ok {
				return token.Ticker
			}
			return ""
		}
	case BalanceScopeNfts:
		snapshot = u.reconciler.Snapshot(slp.FamilyNft)
		balances = snapshot.Balances
		ticker = func(tokenId slpcodec.TokenId) string {
			if nft, ok := u.reconciler.Nft(tokenId); ok {
				return nft.Ticker
			}
			return ""
		}
	default:
		return nil, time.Time{}, errors.Wrapf(errs.InvalidArgument, "unknown balance scope %q", scope)
	}

	result := make([]*entity.TokenBalance, 0, len(balances))
	for tokenId, amount := range balances {
		result = append(result, &entity.TokenBalance{
			TokenId: tokenId,
			Ticker:  ticker(tokenId),
			Amount:  amount,
		})
	}
	slices.SortFunc(result, func(a, b *entity.TokenBalance) int {
		if c := cmp.Compare(strings.ToLower(a.Ticker), strings.ToLower(b.Ticker)); c != 0 {
			return c
		}
		return cmp.Compare(a.TokenId.String(), b.TokenId.String())
	})
	return result, snapshot.UpdatedAt, nil
}
