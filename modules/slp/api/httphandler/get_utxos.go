package httphandler

import (
	"bytes"
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	slpcodec "github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/gaze-network/slp-indexer/pkg/btcutils"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getUTXOsRequest struct {
	Family string `query:"family"`
	Wallet string `query:"wallet"` // address or hex pkScript
}

func (r *getUTXOsRequest) Validate() error {
	var errList []error
	if r.Family != "" {
		if _, err := slp.ParseFamily(r.Family); err != nil {
			errList = append(errList, errors.Errorf("family '%s' is not valid, expected fungible or nft", r.Family))
		}
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type utxo struct {
	TxHash      string           `json:"txHash"`
	OutputIndex uint32           `json:"outputIndex"`
	Value       int64            `json:"value"`
	PkScript    string           `json:"pkScript"`
	Address     string           `json:"address"`
	TokenId     slpcodec.TokenId `json:"tokenId"`
	TokenType   string           `json:"tokenType"`
	Amount      uint64           `json:"amount"`
	Kind        entity.UTXOKind  `json:"kind"`
}

type getUTXOsResult struct {
	List []utxo `json:"list"`
}

type getUTXOsResponse = HttpResponse[getUTXOsResult]

func (h *HttpHandler) GetUTXOs(ctx *fiber.Ctx) error {
	var req getUTXOsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	var pkScript []byte
	if req.Wallet != "" {
		var err error
		pkScript, err = btcutils.ToPkScript(h.network, req.Wallet)
		if err != nil {
			return errs.NewPublicError("unable to resolve pkscript from \"wallet\"")
		}
	}

	families := slp.Families
	if req.Family != "" {
		family, _ := slp.ParseFamily(req.Family)
		families = []slp.Family{family}
	}

	list := make([]utxo, 0)
	for _, family := range families {
		utxos := h.usecase.GetUTXOs(ctx.UserContext(), family)
		if pkScript != nil {
			utxos = lo.Filter(utxos, func(u *entity.SlpUTXO, _ int) bool {
				return bytes.Equal(u.PkScript, pkScript)
			})
		}
		list = append(list, lo.Map(utxos, func(u *entity.SlpUTXO, _ int) utxo {
			return utxo{
				TxHash:      u.OutPoint.Hash.String(),
				OutputIndex: u.OutPoint.Index,
				Value:       u.Value,
				PkScript:    hex.EncodeToString(u.PkScript),
				Address:     addressFromPkScript(u.PkScript, h.network),
				TokenId:     u.TokenId,
				TokenType:   u.TokenType.String(),
				Amount:      u.Amount,
				Kind:        u.Kind,
			}
		})...)
	}

	resp := getUTXOsResponse{
		Result: &getUTXOsResult{
			List: list,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
