package httphandler

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp"
	"github.com/gofiber/fiber/v2"
)

type getTxStateRequest struct {
	TxId string `params:"txid"`
}

type getTxStateResult struct {
	TxHash string      `json:"txHash"`
	State  slp.TxState `json:"state"`
}

type getTxStateResponse = HttpResponse[getTxStateResult]

func (h *HttpHandler) GetTxState(ctx *fiber.Ctx) error {
	var req getTxStateRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	txHash, err := chainhash.NewHashFromStr(req.TxId)
	if err != nil || len(req.TxId) != chainhash.MaxHashStringSize {
		return errs.NewPublicError("txid must be a 64 character hex string")
	}

	state := h.usecase.GetTxState(ctx.UserContext(), *txHash)
	resp := getTxStateResponse{
		Result: &getTxStateResult{
			TxHash: txHash.String(),
			State:  state,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
