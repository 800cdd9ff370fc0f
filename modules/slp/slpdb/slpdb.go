package slpdb

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp/datagateway"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/gaze-network/slp-indexer/pkg/httpclient"
)

var (
	_ datagateway.ValidityOracle = (*Client)(nil)
	_ datagateway.TokenDirectory = (*Client)(nil)
)

// Client queries an SLPDB instance. It serves both as validity oracle and as token directory.
type Client struct {
	client *httpclient.Client
}

func New(baseURL string, config ...httpclient.Config) (*Client, error) {
	client, err := httpclient.New(baseURL, config...)
	if err != nil {
		return nil, errors.Wrap(err, "can't create http client")
	}
	return &Client{client: client}, nil
}

func (c *Client) IsValidSlpTx(ctx context.Context, txHash chainhash.Hash) (bool, error) {
	var resp validTxResponse
	if err := c.query(ctx, validTxQuery(txHash.String()), &resp); err != nil {
		return false, errors.WithStack(err)
	}
	return len(resp.Confirmed) > 0 || len(resp.Unconfirmed) > 0, nil
}

func (c *Client) GetTokenDescriptor(ctx context.Context, tokenId slp.TokenId) (*entity.TokenDescriptor, error) {
	doc, err := c.tokenDocument(ctx, tokenId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &entity.TokenDescriptor{
		TokenId:  tokenId,
		Ticker:   doc.TokenDetails.Symbol,
		Decimals: uint8(doc.TokenDetails.Decimals),
	}, nil
}

func (c *Client) GetNftDescriptor(ctx context.Context, tokenId slp.TokenId) (*entity.NftDescriptor, error) {
	doc, err := c.tokenDocument(ctx, tokenId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	nft := &entity.NftDescriptor{
		TokenId:  tokenId,
		Name:     doc.TokenDetails.Name,
		Ticker:   doc.TokenDetails.Symbol,
		Decimals: uint8(doc.TokenDetails.Decimals),
	}
	if doc.NftParentId != "" {
		parentId, err := slp.NewTokenIdFromString(doc.NftParentId)
		if err != nil {
			return nil, errors.Wrap(err, "invalid nft parent id")
		}
		nft.NftParentId = parentId
	}
	return nft, nil
}

func (c *Client) tokenDocument(ctx context.Context, tokenId slp.TokenId) (*tokenDocument, error) {
	var resp tokenDetailsResponse
	if err := c.query(ctx, tokenDetailsQuery(tokenId.String()), &resp); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(resp.Tokens) == 0 {
		return nil, errors.Wrapf(errs.NotFound, "token %s", tokenId)
	}
	doc := resp.Tokens[0]
	if doc.TokenDetails.TokenIdHex != "" && doc.TokenDetails.TokenIdHex != tokenId.String() {
		return nil, errors.Errorf("slpdb returned token %s for %s", doc.TokenDetails.TokenIdHex, tokenId)
	}
	if doc.TokenDetails.Decimals < 0 || doc.TokenDetails.Decimals > slp.MaxDecimals {
		return nil, errors.Errorf("token %s has invalid decimals %d", tokenId, doc.TokenDetails.Decimals)
	}
	return &doc, nil
}

func (c *Client) query(ctx context.Context, q query, out any) error {
	encoded, err := q.encode()
	if err != nil {
		return errors.WithStack(err)
	}
	resp, err := c.client.Get(ctx, "/q/"+encoded, httpclient.RequestOptions{})
	if err != nil {
		return errors.Wrapf(errs.Unavailable, "slpdb request failed: %v", err)
	}
	if !resp.IsSuccess() {
		return errors.Wrapf(errs.Unavailable, "slpdb responded with status %d", resp.StatusCode())
	}
	if err := resp.UnmarshalBody(out); err != nil {
		return errors.Wrap(err, "can't decode slpdb response")
	}
	return nil
}
