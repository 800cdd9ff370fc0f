package httphandler

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/gaze-network/slp-indexer/modules/slp/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type balance struct {
	TokenId slp.TokenId     `json:"tokenId"`
	Ticker  string          `json:"ticker"`
	Amount  decimal.Decimal `json:"amount"`
}

type getBalancesResult struct {
	List      []balance `json:"list"`
	UpdatedAt int64     `json:"updatedAt"` // unix timestamp, 0 before the first pass
}

type getBalancesResponse = HttpResponse[getBalancesResult]

func (h *HttpHandler) GetTokenBalances(ctx *fiber.Ctx) error {
	return h.getBalances(ctx, usecase.BalanceScopeTokens)
}

func (h *HttpHandler) GetNftParentBalances(ctx *fiber.Ctx) error {
	return h.getBalances(ctx, usecase.BalanceScopeNftParents)
}

func (h *HttpHandler) GetNftBalances(ctx *fiber.Ctx) error {
	return h.getBalances(ctx, usecase.BalanceScopeNfts)
}

func (h *HttpHandler) getBalances(ctx *fiber.Ctx, scope usecase.BalanceScope) error {
	balances, updatedAt, err := h.usecase.GetBalances(ctx.UserContext(), scope)
	if err != nil {
		return errors.Wrap(err, "error during GetBalances")
	}

	resp := getBalancesResponse{
		Result: &getBalancesResult{
			List: lo.Map(balances, func(b *entity.TokenBalance, _ int) balance {
				return balance{
					TokenId: b.TokenId,
					Ticker:  b.Ticker,
					Amount:  b.Amount,
				}
			}),
			UpdatedAt: unixOrZero(updatedAt),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
