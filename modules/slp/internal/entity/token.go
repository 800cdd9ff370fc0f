package entity

import "github.com/gaze-network/slp-indexer/modules/slp/slp"

// TokenDescriptor is the cached metadata of a fungible or NFT parent token.
type TokenDescriptor struct {
	TokenId  slp.TokenId `json:"tokenId"`
	Ticker   string      `json:"ticker"`
	Decimals uint8       `json:"decimals"`
}

// NftDescriptor is the cached metadata of an NFT child token.
type NftDescriptor struct {
	TokenId     slp.TokenId `json:"tokenId"`
	NftParentId slp.TokenId `json:"nftParentId"`
	Name        string      `json:"name"`
	Ticker      string      `json:"ticker"`
	Decimals    uint8       `json:"decimals"`
}
