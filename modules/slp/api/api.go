package api

import (
	"github.com/gaze-network/slp-indexer/common"
	"github.com/gaze-network/slp-indexer/modules/slp/api/httphandler"
	"github.com/gaze-network/slp-indexer/modules/slp/usecase"
)

func NewHTTPHandler(network common.Network, usecase *usecase.Usecase) *httphandler.HttpHandler {
	return httphandler.New(network, usecase)
}
