package slp

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/slp-indexer/common/errs"
	"github.com/gaze-network/slp-indexer/core/types"
	"github.com/gaze-network/slp-indexer/modules/slp/datagateway"
	"github.com/gaze-network/slp-indexer/modules/slp/internal/entity"
	"github.com/gaze-network/slp-indexer/modules/slp/slp"
	"github.com/gaze-network/slp-indexer/pkg/logger"
	"github.com/gaze-network/slp-indexer/pkg/logger/slogx"
)

// Reconciler classifies the wallet's spendable outputs into SLP outputs and balances.
//
// Each pass is rebuilt from scratch. Only the verified transaction set and the descriptor cache carry over between
// passes, and both grow only at the end of a pass. A transaction verified in pass k, or a token whose descriptor is
// fetched in pass k, is classified no earlier than pass k+1.
type Reconciler struct {
	walletDg  datagateway.WalletDataGateway
	oracle    datagateway.ValidityOracle
	directory datagateway.TokenDirectory
	cacheDg   datagateway.CacheDataGateway

	cache   *metadataCache
	tracker *txTracker

	// running is the single-flight latch of each family
	running map[Family]*atomic.Bool

	// persistMu serializes writes of the full sets so an older set never overwrites a newer one
	persistMu sync.Mutex

	snapshotMu sync.RWMutex
	snapshots  map[Family]*Snapshot
}

func NewReconciler(walletDg datagateway.WalletDataGateway, oracle datagateway.ValidityOracle, directory datagateway.TokenDirectory, cacheDg datagateway.CacheDataGateway) *Reconciler {
	r := &Reconciler{
		walletDg:  walletDg,
		oracle:    oracle,
		directory: directory,
		cacheDg:   cacheDg,
		cache:     newMetadataCache(),
		tracker:   newTxTracker(),
		running:   make(map[Family]*atomic.Bool, len(Families)),
		snapshots: make(map[Family]*Snapshot, len(Families)),
	}
	for _, family := range Families {
		r.running[family] = new(atomic.Bool)
		r.snapshots[family] = emptySnapshot(family)
	}
	return r
}

// LoadCaches restores the verified set and the descriptor caches. A cache that can't be loaded starts empty.
func (r *Reconciler) LoadCaches(ctx context.Context) {
	ctx = logger.WithContext(ctx, slogx.String("event", "load_caches"))

	txHashes, err := r.cacheDg.LoadVerifiedTxs(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Can't load verified transactions, starting empty", slogx.Error(err))
	}
	tokens, err := r.cacheDg.LoadTokens(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Can't load token descriptors, starting empty", slogx.Error(err))
	}
	nfts, err := r.cacheDg.LoadNfts(ctx)
	if err != nil {
		logger.WarnContext(ctx, "Can't load nft descriptors, starting empty", slogx.Error(err))
	}

	logger.InfoContext(ctx, "Loaded caches",
		slogx.Int("verified_txs", r.tracker.AddVerified(txHashes...)),
		slogx.Int("tokens", r.cache.AddTokens(tokens...)),
		slogx.Int("nfts", r.cache.AddNfts(nfts...)),
	)
}

// Reconcile runs a single pass for the family and publishes its snapshot.
// A call made while a pass of the same family is running returns a skipped report immediately.
// Only a failure to list the wallet outputs aborts the pass.
func (r *Reconciler) Reconcile(ctx context.Context, family Family) (*Report, error) {
	latch, ok := r.running[family]
	if !ok {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown token family %d", family)
	}
	if !latch.CompareAndSwap(false, true) {
		return &Report{Family: family, Skipped: true}, nil
	}
	defer latch.Store(false)

	ctx = logger.WithContext(ctx, slogx.Stringer("family", family))
	start := time.Now()

	outputs, err := r.walletDg.GetSpendableOutputs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't get spendable outputs")
	}

	p := newPass(family)
	p.report.Outputs = len(outputs)
	for _, output := range outputs {
		r.processOutput(ctx, p, output)
	}
	r.commit(ctx, p)

	p.snapshot.UpdatedAt = time.Now()
	r.snapshotMu.Lock()
	r.snapshots[family] = p.snapshot
	r.snapshotMu.Unlock()

	report := p.report
	report.Classified = len(p.snapshot.UTXOs)
	report.Duration = time.Since(start)

	logger.InfoContext(ctx, "Reconciled wallet outputs",
		slogx.Int("outputs", report.Outputs),
		slogx.Int("classified", report.Classified),
		slogx.Int("new_verified_txs", report.NewVerifiedTxs),
		slogx.Int("new_descriptors", report.NewDescriptors),
		slogx.Int("invalid_txs", len(report.Invalid)),
		slogx.Duration("duration", report.Duration),
	)
	return &report, nil
}

// ReconcileUntilConverged runs passes until one learns nothing new, maxPasses is reached or a pass is skipped.
// It returns the reports of the passes it ran.
func (r *Reconciler) ReconcileUntilConverged(ctx context.Context, family Family, maxPasses int) ([]*Report, error) {
	if maxPasses <= 0 {
		return nil, errors.Wrapf(errs.InvalidArgument, "max passes must be positive, got %d", maxPasses)
	}
	reports := make([]*Report, 0, maxPasses)
	for i := 0; i < maxPasses; i++ {
		if err := ctx.Err(); err != nil {
			return reports, errors.WithStack(err)
		}
		report, err := r.Reconcile(ctx, family)
		if err != nil {
			return reports, errors.WithStack(err)
		}
		reports = append(reports, report)
		if report.Skipped || report.Converged() {
			return reports, nil
		}
	}
	logger.WarnContext(ctx, "Reconciliation didn't converge",
		slogx.Stringer("family", family),
		slogx.Int("passes", maxPasses),
	)
	return reports, nil
}

// pass is the working state of a single reconciliation pass. New verified transactions and descriptors are
// staged here and committed after the scan.
type pass struct {
	family   Family
	snapshot *Snapshot
	report   Report

	validated   map[chainhash.Hash]struct{}
	lookedUp    map[slp.TokenId]struct{}
	invalid     map[chainhash.Hash]struct{}
	newVerified []chainhash.Hash
	newTokens   []*entity.TokenDescriptor
	newNfts     []*entity.NftDescriptor
}

func newPass(family Family) *pass {
	return &pass{
		family:    family,
		snapshot:  emptySnapshot(family),
		report:    Report{Family: family},
		validated: make(map[chainhash.Hash]struct{}),
		lookedUp:  make(map[slp.TokenId]struct{}),
		invalid:   make(map[chainhash.Hash]struct{}),
	}
}

func (p *pass) addInvalid(ctx context.Context, txHash chainhash.Hash, err error) {
	if _, ok := p.invalid[txHash]; ok {
		return
	}
	p.invalid[txHash] = struct{}{}
	p.report.Invalid = append(p.report.Invalid, InvalidTx{TxHash: txHash, Err: err})
	logger.WarnContext(ctx, "Invalid SLP transaction", slogx.Stringer("tx_hash", txHash), slogx.Error(err))
}

func (r *Reconciler) processOutput(ctx context.Context, p *pass, output *types.SpendableOutput) {
	tx := output.ParentTx
	if tx == nil {
		return
	}

	tokenType, err := slp.ClassifyTokenType(tx)
	if err != nil {
		if !errors.Is(err, slp.ErrNotSlpTransaction) {
			p.addInvalid(ctx, tx.TxHash, err)
		}
		return
	}
	if !p.family.Contains(tokenType) {
		return
	}

	if !r.tracker.IsVerified(tx.TxHash) {
		r.validate(ctx, p, tx.TxHash)
		return
	}

	message, err := slp.DecodeMessage(tx)
	if err != nil {
		p.addInvalid(ctx, tx.TxHash, err)
		return
	}

	descriptor, ok := r.cache.lookup(p.family, message.TokenId)
	if !ok {
		r.lookupDescriptor(ctx, p, message.TokenId)
		return
	}
	r.tracker.MarkResolved(tx.TxHash)

	utxo, ok := classify(output, message)
	if !ok {
		return
	}
	p.snapshot.accumulate(utxo, slp.FromRawAmount(utxo.Amount, descriptor.Decimals))
}

// classify attributes the output its token quantity. Outputs that hold neither a quantity nor the mint baton are skipped.
func classify(output *types.SpendableOutput, message *slp.Message) (*entity.SlpUTXO, bool) {
	index := output.Index()
	utxo := &entity.SlpUTXO{
		OutPoint:  output.OutPoint,
		Value:     output.Value,
		PkScript:  output.PkScript,
		TokenId:   message.TokenId,
		TokenType: message.Type.TokenType(),
	}
	amount, ok := message.AmountAt(index)
	switch {
	case message.IsMintBaton(index):
		utxo.Kind = entity.UTXOKindMintBaton
		utxo.Amount = amount
	case ok && amount > 0:
		utxo.Kind = entity.UTXOKindNormal
		utxo.Amount = amount
	default:
		return nil, false
	}
	return utxo, true
}

// validate asks the oracle about the transaction once per pass.
func (r *Reconciler) validate(ctx context.Context, p *pass, txHash chainhash.Hash) {
	if _, ok := p.validated[txHash]; ok {
		return
	}
	p.validated[txHash] = struct{}{}

	valid, err := r.oracle.IsValidSlpTx(ctx, txHash)
	if err != nil {
		p.report.OracleFailures++
		r.tracker.MarkPendingValidation(txHash)
		logger.WarnContext(ctx, "Can't validate SLP transaction, will retry next pass", slogx.Stringer("tx_hash", txHash), slogx.Error(err))
		return
	}
	if !valid {
		r.tracker.MarkPendingValidation(txHash)
		logger.DebugContext(ctx, "SLP transaction is not valid", slogx.Stringer("tx_hash", txHash))
		return
	}
	p.newVerified = append(p.newVerified, txHash)
}

// lookupDescriptor asks the directory about the token once per pass.
func (r *Reconciler) lookupDescriptor(ctx context.Context, p *pass, tokenId slp.TokenId) {
	if _, ok := p.lookedUp[tokenId]; ok {
		return
	}
	p.lookedUp[tokenId] = struct{}{}

	var err error
	switch p.family {
	case FamilyFungible:
		var token *entity.TokenDescriptor
		if token, err = r.directory.GetTokenDescriptor(ctx, tokenId); err == nil {
			if err = checkDescriptor(tokenId, token, token != nil && token.TokenId == tokenId); err == nil {
				p.newTokens = append(p.newTokens, token)
			}
		}
	case FamilyNft:
		var nft *entity.NftDescriptor
		if nft, err = r.directory.GetNftDescriptor(ctx, tokenId); err == nil {
			if err = checkDescriptor(tokenId, nft, nft != nil && nft.TokenId == tokenId); err == nil {
				p.newNfts = append(p.newNfts, nft)
			}
		}
	}
	switch {
	case err == nil:
	case errors.Is(err, errs.NotFound):
		logger.DebugContext(ctx, "Token is unknown to the directory", slogx.Stringer("token_id", tokenId))
	default:
		p.report.DirectoryFailures++
		logger.WarnContext(ctx, "Can't get token descriptor, will retry next pass", slogx.Stringer("token_id", tokenId), slogx.Error(err))
	}
}

func checkDescriptor[T any](tokenId slp.TokenId, descriptor *T, matches bool) error {
	if descriptor == nil {
		return errors.Wrapf(errs.NotFound, "directory returned no descriptor for %s", tokenId)
	}
	if !matches {
		return errors.Errorf("directory returned a descriptor of another token for %s", tokenId)
	}
	return nil
}

// commit adds the staged entries to the shared caches and persists every cache that grew.
// Persistence failures are logged, the in-memory caches keep the new entries.
func (r *Reconciler) commit(ctx context.Context, p *pass) {
	r.persistMu.Lock()
	defer r.persistMu.Unlock()

	if added := r.tracker.AddVerified(p.newVerified...); added > 0 {
		p.report.NewVerifiedTxs = added
		if err := r.cacheDg.SaveVerifiedTxs(ctx, r.tracker.VerifiedTxs()); err != nil {
			p.report.PersistFailures++
			logger.ErrorContext(ctx, "Can't persist verified transactions", err)
		}
	}

	if added := r.cache.AddTokens(p.newTokens...); added > 0 {
		p.report.NewDescriptors += added
		if err := r.cacheDg.SaveTokens(ctx, r.cache.Tokens()); err != nil {
			p.report.PersistFailures++
			logger.ErrorContext(ctx, "Can't persist token descriptors", err)
		}
	}

	if added := r.cache.AddNfts(p.newNfts...); added > 0 {
		p.report.NewDescriptors += added
		if err := r.cacheDg.SaveNfts(ctx, r.cache.Nfts()); err != nil {
			p.report.PersistFailures++
			logger.ErrorContext(ctx, "Can't persist nft descriptors", err)
		}
	}
}

// Snapshot returns the latest published snapshot of the family.
func (r *Reconciler) Snapshot(family Family) *Snapshot {
	r.snapshotMu.RLock()
	defer r.snapshotMu.RUnlock()
	if snapshot, ok := r.snapshots[family]; ok {
		return snapshot
	}
	return emptySnapshot(family)
}

func (r *Reconciler) Tokens() []*entity.TokenDescriptor {
	return r.cache.Tokens()
}

func (r *Reconciler) Nfts() []*entity.NftDescriptor {
	return r.cache.Nfts()
}

func (r *Reconciler) Token(tokenId slp.TokenId) (*entity.TokenDescriptor, bool) {
	return r.cache.Token(tokenId)
}

func (r *Reconciler) Nft(tokenId slp.TokenId) (*entity.NftDescriptor, bool) {
	return r.cache.Nft(tokenId)
}

func (r *Reconciler) TxState(txHash chainhash.Hash) TxState {
	return r.tracker.State(txHash)
}

// IsRunning reports whether a pass of the family is in progress.
func (r *Reconciler) IsRunning(family Family) bool {
	latch, ok := r.running[family]
	return ok && latch.Load()
}

// VerifiedTxs returns the number of verified transactions.
func (r *Reconciler) VerifiedTxs() int {
	return r.tracker.Len()
}
