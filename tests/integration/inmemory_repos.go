package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/CAR-dano/cardano-backend-sub000/internal/core/domain"
	"github.com/CAR-dano/cardano-backend-sub000/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Inspection Repo ---

type inMemoryInspectionRepo struct {
	mu          sync.RWMutex
	inspections map[uuid.UUID]*domain.Inspection
}

func newInMemoryInspectionRepo() *inMemoryInspectionRepo {
	return &inMemoryInspectionRepo{inspections: make(map[uuid.UUID]*domain.Inspection)}
}

func (r *inMemoryInspectionRepo) Create(ctx context.Context, inspection *domain.Inspection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *inspection
	r.inspections[inspection.ID] = &cp
	return nil
}

func (r *inMemoryInspectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inspection, ok := r.inspections[id]
	if !ok {
		return nil, nil
	}
	cp := *inspection
	return &cp, nil
}

func (r *inMemoryInspectionRepo) GetByVehicleNumber(ctx context.Context, vehicleNumber string) (*domain.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inspection := range r.inspections {
		if inspection.VehicleNumber == vehicleNumber {
			cp := *inspection
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryInspectionRepo) List(ctx context.Context, params ports.InspectionListParams) ([]domain.Inspection, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Inspection
	for _, inspection := range r.inspections {
		if params.Status != nil && inspection.Status != *params.Status {
			continue
		}
		out = append(out, *inspection)
	}
	return out, int64(len(out)), nil
}

func (r *inMemoryInspectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InspectionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inspection, ok := r.inspections[id]
	if !ok {
		return fmt.Errorf("inspection %s not found", id)
	}
	inspection.Status = status
	return nil
}

// --- In-Memory Mint Record Repo ---

type inMemoryMintRecordRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.MintRecord
}

func newInMemoryMintRecordRepo() *inMemoryMintRecordRepo {
	return &inMemoryMintRecordRepo{records: make(map[uuid.UUID]*domain.MintRecord)}
}

func (r *inMemoryMintRecordRepo) Create(ctx context.Context, record *domain.MintRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

func (r *inMemoryMintRecordRepo) GetByInspectionID(ctx context.Context, inspectionID uuid.UUID) (*domain.MintRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.records {
		if record.InspectionID == inspectionID {
			cp := *record
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryMintRecordRepo) GetByAssetID(ctx context.Context, assetID string) (*domain.MintRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.records {
		if record.AssetID == assetID {
			cp := *record
			return &cp, nil
		}
	}
	return nil, nil
}

// --- Fake Chain Provider ---

// fakeChain is an in-memory ledger provider. It serves one large spendable
// output whose tx hash rotates after every submit (the change output
// reappearing under a new transaction), and instruments the
// balance-check-to-submit window so tests can verify that minting against
// the same address never interleaves.
type fakeChain struct {
	mu       sync.Mutex
	seq      uint64
	metadata map[string][]domain.TxMetadataEntry
	assets   map[string]*domain.AssetInfo

	submits  atomic.Int64
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		metadata: make(map[string][]domain.TxMetadataEntry),
		assets:   make(map[string]*domain.AssetInfo),
	}
}

const fakeChainBalance = 1_000_000_000

func (f *fakeChain) currentOutput() domain.ProviderOutput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.ProviderOutput{
		TxHash: fmt.Sprintf("%064x", f.seq+1),
		Index:  0,
		Amount: domain.AmountUnits{{Unit: domain.LovelaceUnit, Quantity: fmt.Sprintf("%d", fakeChainBalance)}},
	}
}

func (f *fakeChain) QuerySpendableOutputs(ctx context.Context, address string) ([]domain.ProviderOutput, error) {
	return []domain.ProviderOutput{f.currentOutput()}, nil
}

func (f *fakeChain) QuerySpendableOutputsAuthoritative(ctx context.Context, address string) ([]domain.ProviderOutput, error) {
	return []domain.ProviderOutput{f.currentOutput()}, nil
}

func (f *fakeChain) Submit(ctx context.Context, tx domain.SignedTransaction) (string, error) {
	f.mu.Lock()
	f.seq++
	txID := fmt.Sprintf("%064x", f.seq+0xffff)
	f.mu.Unlock()

	f.submits.Add(1)
	f.exitWindow()
	return txID, nil
}

func (f *fakeChain) GetBalance(ctx context.Context, address string) (uint64, error) {
	f.enterWindow()
	return fakeChainBalance, nil
}

func (f *fakeChain) GetTransactionMetadata(ctx context.Context, txID string) ([]domain.TxMetadataEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, ok := f.metadata[txID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entries, nil
}

func (f *fakeChain) GetAsset(ctx context.Context, assetID string) (*domain.AssetInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	info, ok := f.assets[assetID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return info, nil
}

func (f *fakeChain) seedMetadata(txID string, entries []domain.TxMetadataEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metadata[txID] = entries
}

func (f *fakeChain) seedAsset(info *domain.AssetInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assets[info.AssetID] = info
}

// enterWindow marks the start of a balance-check-to-submit sequence and
// exitWindow closes it. maxConcurrent reports the peak overlap observed.
func (f *fakeChain) enterWindow() {
	n := f.inFlight.Add(1)
	for {
		seen := f.maxSeen.Load()
		if n <= seen || f.maxSeen.CompareAndSwap(seen, n) {
			return
		}
	}
}

func (f *fakeChain) exitWindow() {
	f.inFlight.Add(-1)
}

func (f *fakeChain) maxConcurrent() int32 {
	return f.maxSeen.Load()
}
