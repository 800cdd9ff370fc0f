package slpdb

import (
	"encoding/base64"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

const queryVersion = 3

// query is a SLPDB find query, sent base64 encoded as the last path segment of /q/.
type query struct {
	V int       `json:"v"`
	Q queryBody `json:"q"`
}

type queryBody struct {
	DB    []string       `json:"db"`
	Find  map[string]any `json:"find"`
	Limit int            `json:"limit"`
}

func (q query) encode() (string, error) {
	data, err := json.Marshal(q)
	if err != nil {
		return "", errors.Wrap(err, "can't marshal query")
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// validTxQuery finds the transaction among confirmed and unconfirmed transactions the node marked valid.
func validTxQuery(txId string) query {
	return query{
		V: queryVersion,
		Q: queryBody{
			DB: []string{"c", "u"},
			Find: map[string]any{
				"tx.h":      txId,
				"slp.valid": true,
			},
			Limit: 1,
		},
	}
}

func tokenDetailsQuery(tokenId string) query {
	return query{
		V: queryVersion,
		Q: queryBody{
			DB: []string{"t"},
			Find: map[string]any{
				"tokenDetails.tokenIdHex": tokenId,
			},
			Limit: 1,
		},
	}
}

type validTxResponse struct {
	Confirmed   []json.RawMessage `json:"c"`
	Unconfirmed []json.RawMessage `json:"u"`
}

type tokenDetailsResponse struct {
	Tokens []tokenDocument `json:"t"`
}

type tokenDocument struct {
	TokenDetails struct {
		TokenIdHex string `json:"tokenIdHex"`
		Symbol     string `json:"symbol"`
		Name       string `json:"name"`
		Decimals   int    `json:"decimals"`
	} `json:"tokenDetails"`
	NftParentId string `json:"nftParentId"`
}
