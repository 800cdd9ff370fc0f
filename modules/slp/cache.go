package slp

import (
	"sync"

	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
)

// descriptorSet is an append-only set of descriptors that remembers insertion order.
type descriptorSet[T any] struct {
	items map[slp.TokenId]T
	order []slp.TokenId
}

func newDescriptorSet[T any]() descriptorSet[T] {
	return descriptorSet[T]{items: make(map[slp.TokenId]T)}
}

func (s *descriptorSet[T]) add(id slp.TokenId, item T) bool {
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = item
	s.order = append(s.order, id)
	return true
}

func (s *descriptorSet[T]) list() []T {
	list := make([]T, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.items[id])
	}
	return list
}

// metadataCache holds the token and NFT descriptors learned from the directory.
// Descriptors are immutable once added.
type metadataCache struct {
	mu     sync.RWMutex
	tokens descriptorSet[*entity.TokenDescriptor]
	nfts   descriptorSet[*entity.NftDescriptor]
}

func newMetadataCache() *metadataCache {
	return &metadataCache{
		tokens: newDescriptorSet[*entity.TokenDescriptor](),
		nfts:   newDescriptorSet[*entity.NftDescriptor](),
	}
}

func (c *metadataCache) Token(tokenId slp.TokenId) (*entity.TokenDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	token, ok := c.tokens.items[tokenId]
	return token, ok
}

func (c *metadataCache) Nft(tokenId slp.TokenId) (*entity.NftDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	nft, ok := c.nfts.items[tokenId]
	return nft, ok
}

// AddTokens adds the descriptors that aren't cached yet and returns how many were added.
func (c *metadataCache) AddTokens(tokens ...*entity.TokenDescriptor) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := 0
	for _, token := range tokens {
		if token != nil && c.tokens.add(token.TokenId, token) {
			added++
		}
	}
	return added
}

// AddNfts adds the descriptors that aren't cached yet and returns how many were added.
func (c *metadataCache) AddNfts(nfts ...*entity.NftDescriptor) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := 0
	for _, nft := range nfts {
		if nft != nil && c.nfts.add(nft.TokenId, nft) {
			added++
		}
	}
	return added
}

func (c *metadataCache) Tokens() []*entity.TokenDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens.list()
}

func (c *metadataCache) Nfts() []*entity.NftDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nfts.list()
}

// descriptorInfo is the part of a descriptor the reconciler needs to scale balances.
type descriptorInfo struct {
	Ticker   string
	Decimals uint8
}

func (c *metadataCache) lookup(family Family, tokenId slp.TokenId) (descriptorInfo, bool) {
	switch family {
	case FamilyFungible:
		if token, ok := c.Token(tokenId); ok {
			return descriptorInfo{Ticker: token.Ticker, Decimals: token.Decimals}, true
		}
	case FamilyNft:
		if nft, ok := c.Nft(tokenId); ok {
			return descriptorInfo{Ticker: nft.Ticker, Decimals: nft.Decimals}, true
		}
	}
	return descriptorInfo{}, false
}
