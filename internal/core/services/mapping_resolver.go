package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	"github.com/SscSPs/statement_ingestion/internal/utils/normalize"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MappingResolver hands out per-import mapping batches.
type MappingResolver struct {
	BaseService
	mappingRepo portsrepo.MappingRepositoryFacade
}

// NewMappingResolver creates a new MappingResolver.
func NewMappingResolver(mappingRepo portsrepo.MappingRepositoryFacade) *MappingResolver {
	return &MappingResolver{mappingRepo: mappingRepo}
}

// NewBatch preloads every mapping of the account into a fresh batch.
func (r *MappingResolver) NewBatch(ctx context.Context, accountID, userID string) (*MappingBatch, error) {
	existing, err := r.mappingRepo.ListMappingsByAccount(ctx, accountID)
	if err != nil {
		r.LogError(ctx, err, "Failed to preload description mappings", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to preload mappings: %w", err)
	}

	batch := &MappingBatch{
		accountID: accountID,
		userID:    userID,
		now:       time.Now(),
		repo:      r.mappingRepo,
		known:     make(map[string]*domain.DescriptionMapping, len(existing)),
		pending:   make(map[string]*domain.DescriptionMapping),
	}
	for i := range existing {
		batch.known[existing[i].NormalizedDescription] = &existing[i]
	}

	r.LogDebug(ctx, "Mapping batch opened", slog.String("account_id", accountID), slog.Int("preloaded", len(existing)))
	return batch, nil
}

// MappingBatch is the single owner of mapping resolution during one import.
// It is not safe for concurrent use.
type MappingBatch struct {
	accountID string
	userID    string
	now       time.Time
	repo      portsrepo.MappingRepositoryFacade

	known   map[string]*domain.DescriptionMapping
	pending map[string]*domain.DescriptionMapping
	order   []string
}

// Resolve returns the mapping for a raw description, creating a pending one on
// first sighting. Descriptions with the same normalized key always get the same
// pointer. Descriptions that normalize to nothing have no mapping.
func (b *MappingBatch) Resolve(description string) *domain.DescriptionMapping {
	key := normalize.Description(description)
	if key == "" {
		return nil
	}
	if m := b.lookup(key); m != nil {
		return m
	}

	m := &domain.DescriptionMapping{
		MappingID:             uuid.NewString(),
		AccountID:             b.accountID,
		OriginalDescription:   description,
		NormalizedDescription: key,
		AuditFields:           domain.NewAuditFields(b.userID, b.now),
	}
	b.pending[key] = m
	b.order = append(b.order, key)
	return m
}

// Pending returns the mappings created by this batch in first-seen order.
func (b *MappingBatch) Pending() []domain.DescriptionMapping {
	out := make([]domain.DescriptionMapping, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, *b.pending[key])
	}
	return out
}

func (b *MappingBatch) lookup(key string) *domain.DescriptionMapping {
	if m, ok := b.known[key]; ok {
		return m
	}
	return b.pending[key]
}

// Apply copies the simplified description and category of the mapping for
// txn's normalized description onto txn.
func (b *MappingBatch) Apply(txn *domain.Transaction) {
	m := b.lookup(txn.NormalizedDescription)
	if m == nil {
		return
	}
	txn.SimplifiedDescription = m.SimplifiedDescription
	txn.Category = m.Category
}

// Flush saves the pending mappings inside tx. A key another import mapped in
// the meantime is reloaded so the batch carries the stored mapping. After a
// successful flush pending mappings are treated as preloaded.
func (b *MappingBatch) Flush(ctx context.Context, tx pgx.Tx) error {
	if len(b.order) == 0 {
		return nil
	}
	taken, err := b.repo.SaveMappingsInTx(ctx, tx, b.Pending())
	if err != nil {
		return fmt.Errorf("failed to save %d new mappings: %w", len(b.order), err)
	}
	for _, key := range taken {
		stored, err := b.repo.FindMappingByNormalizedDescription(ctx, b.accountID, key)
		if err != nil {
			return fmt.Errorf("failed to reload mapping %q: %w", key, err)
		}
		*b.pending[key] = *stored
	}
	for _, key := range b.order {
		b.known[key] = b.pending[key]
	}
	b.pending = make(map[string]*domain.DescriptionMapping)
	b.order = nil
	return nil
}
