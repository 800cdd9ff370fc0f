package httphandler

import (
	"github.com/gaze-network/slp-indexer/common"
	"github.com/gaze-network/slp-indexer/modules/slp/usecase"
	"github.com/gaze-network/slp-indexer/pkg/btcutils"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
)

type HttpHandler struct {
	usecase *usecase.Usecase
	network common.Network
}

func New(network common.Network, usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		network: network,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

// addressFromPkScript returns the address of a standard pkScript, or empty string.
func addressFromPkScript(pkScript []byte, network common.Network) string {
	address, err := btcutils.PkScriptToAddress(pkScript, network)
	if err != nil {
		logger.Debug("unable to extract address from pkscript", slogx.Error(err))
		return ""
	}
	return address
}
