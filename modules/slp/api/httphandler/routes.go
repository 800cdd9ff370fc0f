package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/slp")

	r.Get("/balances", h.GetTokenBalances)
	r.Get("/balances/nft-parents", h.GetNftParentBalances)
	r.Get("/balances/nfts", h.GetNftBalances)
	r.Get("/utxos", h.GetUTXOs)
	r.Get("/tokens", h.GetTokens)
	r.Get("/tokens/:id", h.GetToken)
	r.Get("/nfts", h.GetNfts)
	r.Get("/nfts/:id", h.GetNft)
	r.Get("/tx/:txid/state", h.GetTxState)
	r.Post("/reconcile", h.Reconcile)
	return nil
}
