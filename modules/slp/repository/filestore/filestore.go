package filestore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/modules/slp/datagateway"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
)

const (
	DefaultPrefix = "slp"

	tokensExt      = ".tokens"
	nftsExt        = ".nfts"
	verifiedTxsExt = ".txs"
)

var _ datagateway.CacheDataGateway = (*Repository)(nil)

// Repository stores each cache in its own file under dir:
//
//	<prefix>.tokens  JSON array of token descriptors
//	<prefix>.nfts    JSON array of nft descriptors
//	<prefix>.txs     one verified tx hash per line
//
// Files are replaced atomically on save. A missing or unreadable file loads as an empty cache.
type Repository struct {
	dir    string
	prefix string
}

func NewRepository(dir string, prefix string) (*Repository, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "can't create data directory %s", dir)
	}
	return &Repository{dir: dir, prefix: prefix}, nil
}

func (r *Repository) path(ext string) string {
	return filepath.Join(r.dir, r.prefix+ext)
}

func (r *Repository) LoadVerifiedTxs(ctx context.Context) ([]chainhash.Hash, error) {
	data, ok := r.read(ctx, verifiedTxsExt)
	if !ok {
		return []chainhash.Hash{}, nil
	}

	txHashes := make([]chainhash.Hash, 0, bytes.Count(data, []byte{'\n'})+1)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		txHash, err := chainhash.NewHashFromStr(line)
		if err != nil || len(line) != chainhash.MaxHashStringSize {
			logger.WarnContext(ctx, "Skipped malformed verified tx hash", slogx.String("line", line))
			continue
		}
		txHashes = append(txHashes, *txHash)
	}
	return txHashes, nil
}

func (r *Repository) SaveVerifiedTxs(_ context.Context, txHashes []chainhash.Hash) error {
	var buf bytes.Buffer
	buf.Grow(len(txHashes) * (chainhash.MaxHashStringSize + 1))
	for _, txHash := range txHashes {
		buf.WriteString(txHash.String())
		buf.WriteByte('\n')
	}
	return errors.WithStack(r.write(verifiedTxsExt, buf.Bytes()))
}

func (r *Repository) LoadTokens(ctx context.Context) ([]*entity.TokenDescriptor, error) {
	return loadJSON[*entity.TokenDescriptor](ctx, r, tokensExt), nil
}

func (r *Repository) SaveTokens(_ context.Context, tokens []*entity.TokenDescriptor) error {
	return errors.WithStack(saveJSON(r, tokensExt, tokens))
}

func (r *Repository) LoadNfts(ctx context.Context) ([]*entity.NftDescriptor, error) {
	return loadJSON[*entity.NftDescriptor](ctx, r, nftsExt), nil
}

func (r *Repository) SaveNfts(_ context.Context, nfts []*entity.NftDescriptor) error {
	return errors.WithStack(saveJSON(r, nftsExt, nfts))
}

func loadJSON[T any](ctx context.Context, r *Repository, ext string) []T {
	items := []T{}
	data, ok := r.read(ctx, ext)
	if !ok {
		return items
	}
	if err := json.Unmarshal(data, &items); err != nil {
		logger.WarnContext(ctx, "Can't parse cache file, starting empty", slogx.String("path", r.path(ext)), slogx.Error(err))
		return []T{}
	}
	return items
}

func saveJSON[T any](r *Repository, ext string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "can't marshal cache")
	}
	return r.write(ext, data)
}

func (r *Repository) read(ctx context.Context, ext string) ([]byte, bool) {
	data, err := os.ReadFile(r.path(ext))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.WarnContext(ctx, "Can't read cache file, starting empty", slogx.String("path", r.path(ext)), slogx.Error(err))
		}
		return nil, false
	}
	return data, true
}

// write replaces the file with data through a temporary file in the same directory.
func (r *Repository) write(ext string, data []byte) error {
	target := r.path(ext)
	tmp, err := os.CreateTemp(r.dir, r.prefix+ext+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "can't create temporary file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "can't write %s", tmp.Name())
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "can't sync %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "can't close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.Wrapf(err, "can't replace %s", target)
	}
	return nil
}
