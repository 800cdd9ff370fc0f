package slp

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
)

// Family is the group of token types reconciled together in one pass.
type Family uint8

const (
	// FamilyFungible covers fungible tokens and NFT parent (group) tokens.
	FamilyFungible Family = iota + 1
	// FamilyNft covers NFT children.
	FamilyNft
)

var Families = []Family{FamilyFungible, FamilyNft}

func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fungible", "slp", "token", "tokens":
		return FamilyFungible, nil
	case "nft", "nfts", "nft_child":
		return FamilyNft, nil
	}
	return 0, errors.Wrapf(errs.InvalidArgument, "unknown token family %q", s)
}

func (f Family) IsValid() bool {
	return f == FamilyFungible || f == FamilyNft
}

// Contains reports whether the token type is reconciled by this family.
func (f Family) Contains(tokenType slp.TokenType) bool {
	switch f {
	case FamilyFungible:
		return tokenType == slp.TokenTypeFungible || tokenType == slp.TokenTypeNftParent
	case FamilyNft:
		return tokenType == slp.TokenTypeNftChild
	}
	return false
}

func (f Family) String() string {
	switch f {
	case FamilyFungible:
		return "fungible"
	case FamilyNft:
		return "nft"
	}
	return "unknown"
}
