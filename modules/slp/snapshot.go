package slp

import (
	"time"

	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Snapshot is the published result of the latest completed pass of a family. It is never mutated after publication.
type Snapshot struct {
	Family Family
	UTXOs  []*entity.SlpUTXO
	// Balances of fungible tokens for FamilyFungible, of NFT children for FamilyNft.
	Balances map[slp.TokenId]decimal.Decimal
	// Only filled by FamilyFungible.
	NftParentBalances map[slp.TokenId]decimal.Decimal
	UpdatedAt         time.Time
}

func emptySnapshot(family Family) *Snapshot {
	return &Snapshot{
		Family:            family,
		UTXOs:             []*entity.SlpUTXO{},
		Balances:          map[slp.TokenId]decimal.Decimal{},
		NftParentBalances: map[slp.TokenId]decimal.Decimal{},
	}
}

// UTXOsOf returns the classified outputs holding tokens of the given type.
func (s *Snapshot) UTXOsOf(tokenType slp.TokenType) []*entity.SlpUTXO {
	return lo.Filter(s.UTXOs, func(utxo *entity.SlpUTXO, _ int) bool {
		return utxo.TokenType == tokenType
	})
}

// balanceSet picks the balance set that accumulates the given token type.
func (s *Snapshot) balanceSet(tokenType slp.TokenType) map[slp.TokenId]decimal.Decimal {
	if tokenType == slp.TokenTypeNftParent {
		return s.NftParentBalances
	}
	return s.Balances
}

func (s *Snapshot) accumulate(utxo *entity.SlpUTXO, amount decimal.Decimal) {
	s.UTXOs = append(s.UTXOs, utxo)
	set := s.balanceSet(utxo.TokenType)
	set[utxo.TokenId] = set[utxo.TokenId].Add(amount)
}
