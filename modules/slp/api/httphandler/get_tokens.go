package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/gofiber/fiber/v2"
)

type getTokenRequest struct {
	Id string `params:"id"`
}

func (r *getTokenRequest) Validate() (slp.TokenId, error) {
	tokenId, err := slp.NewTokenIdFromString(r.Id)
	if err != nil {
		return slp.TokenId{}, errs.WithPublicMessage(errors.Errorf("id '%s' is not a valid token id", r.Id), "validation error")
	}
	return tokenId, nil
}

type listResult[T any] struct {
	List []T `json:"list"`
}

func (h *HttpHandler) GetTokens(ctx *fiber.Ctx) error {
	resp := HttpResponse[listResult[*entity.TokenDescriptor]]{
		Result: &listResult[*entity.TokenDescriptor]{
			List: h.usecase.GetTokens(ctx.UserContext()),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) GetNfts(ctx *fiber.Ctx) error {
	resp := HttpResponse[listResult[*entity.NftDescriptor]]{
		Result: &listResult[*entity.NftDescriptor]{
			List: h.usecase.GetNfts(ctx.UserContext()),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) GetToken(ctx *fiber.Ctx) error {
	var req getTokenRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	tokenId, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.usecase.GetToken(ctx.UserContext(), tokenId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.WithPublicMessage(err, "")
		}
		return errors.Wrap(err, "error during GetToken")
	}
	return errors.WithStack(ctx.JSON(HttpResponse[entity.TokenDescriptor]{Result: token}))
}

func (h *HttpHandler) GetNft(ctx *fiber.Ctx) error {
	var req getTokenRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	tokenId, err := req.Validate()
	if err != nil {
		return errors.WithStack(err)
	}

	nft, err := h.usecase.GetNft(ctx.UserContext(), tokenId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.WithPublicMessage(err, "")
		}
		return errors.Wrap(err, "error during GetNft")
	}
	return errors.WithStack(ctx.JSON(HttpResponse[entity.NftDescriptor]{Result: nft}))
}
