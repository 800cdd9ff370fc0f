package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
)

func (u *Usecase) GetTokens(_ context.Context) []*entity.TokenDescriptor {
	return u.reconciler.Tokens()
}

func (u *Usecase) GetNfts(_ context.Context) []*entity.NftDescriptor {
	return u.reconciler.Nfts()
}

func (u *Usecase) GetToken(_ context.Context, tokenId slp.TokenId) (*entity.TokenDescriptor, error) {
	token, ok := u.reconciler.Token(tokenId)
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "token %s", tokenId)
	}
	return token, nil
}

func (u *Usecase) GetNft(_ context.Context, tokenId slp.TokenId) (*entity.NftDescriptor, error) {
	nft, ok := u.reconciler.Nft(tokenId)
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "nft %s", tokenId)
	}
	return nft, nil
}
