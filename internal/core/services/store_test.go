package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/statement_ingestion/internal/apperrors"
	"github.com/SscSPs/statement_ingestion/internal/core/domain"
	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory stand-in for the pgsql repositories. Writes made
// "in a transaction" are applied immediately; the tests only exercise
// committed paths against it.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	cards    []domain.Card
	mappings map[string]domain.DescriptionMapping
	txns     map[string]domain.Transaction
	imports  map[string]domain.ImportRecord

	linkErr error
}

func newMemStore(accountIDs ...string) *memStore {
	s := &memStore{
		accounts: make(map[string]domain.Account),
		mappings: make(map[string]domain.DescriptionMapping),
		txns:     make(map[string]domain.Transaction),
		imports:  make(map[string]domain.ImportRecord),
	}
	for _, id := range accountIDs {
		s.accounts[id] = domain.Account{AccountID: id, Name: id, IsActive: true}
	}
	return s
}

func (s *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     s,
		CardRepo:        s,
		MappingRepo:     s,
		TransactionRepo: s,
		ImportRepo:      s,
	}
}

func (s *memStore) put(txns ...domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range txns {
		s.txns[t.TransactionID] = t
	}
}

func (s *memStore) get(id string) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txns[id]
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txns)
}

// --- TransactionManager ---

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, nil
}

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	return nil
}

// --- Accounts and cards ---

func (s *memStore) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (s *memStore) FindCardsByLastFour(ctx context.Context, lastFour string, accountID string) ([]domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Card
	for _, c := range s.cards {
		if c.AccountID == accountID && c.LastFourDigits == lastFour {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- Mappings ---

func (s *memStore) ListMappingsByAccount(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.DescriptionMapping
	for _, m := range s.mappings {
		if m.AccountID == accountID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) FindMappingByID(ctx context.Context, mappingID string) (*domain.DescriptionMapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mappings[mappingID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (s *memStore) FindMappingByNormalizedDescription(ctx context.Context, accountID, normalizedDescription string) (*domain.DescriptionMapping, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mappingByKey(accountID, normalizedDescription)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (s *memStore) mappingByKey(accountID, key string) (domain.DescriptionMapping, bool) {
	for _, m := range s.mappings {
		if m.AccountID == accountID && m.NormalizedDescription == key {
			return m, true
		}
	}
	return domain.DescriptionMapping{}, false
}

func (s *memStore) SaveMappingsInTx(ctx context.Context, tx pgx.Tx, mappings []domain.DescriptionMapping) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var taken []string
	for _, m := range mappings {
		if _, ok := s.mappingByKey(m.AccountID, m.NormalizedDescription); ok {
			taken = append(taken, m.NormalizedDescription)
			continue
		}
		s.mappings[m.MappingID] = m
	}
	return taken, nil
}

func (s *memStore) UpdateMappingInTx(ctx context.Context, tx pgx.Tx, mapping domain.DescriptionMapping) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mappings[mapping.MappingID]; !ok {
		return apperrors.ErrNotFound
	}
	s.mappings[mapping.MappingID] = mapping
	return nil
}

// --- Transactions ---

func (s *memStore) ExistsByRawFingerprint(ctx context.Context, rawFingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txns {
		if t.RawFingerprint == rawFingerprint {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ExistsByNormalizedFingerprint(ctx context.Context, normalizedFingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txns {
		if t.NormalizedFingerprint != nil && *t.NormalizedFingerprint == normalizedFingerprint {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txns[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (s *memStore) FindReversalCandidates(ctx context.Context, search domain.ReversalSearch) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.txns {
		if t.AccountID != search.AccountID || t.TransactionID == search.ExcludeID || t.IsReversal {
			continue
		}
		if t.Date.Before(search.From) || t.Date.After(search.To) || !t.Amount.Equal(search.Amount) {
			continue
		}
		if search.CardID != nil && (t.CardID == nil || *t.CardID != *search.CardID) {
			continue
		}
		out = append(out, t)
	}
	sortByDateAndID(out)
	return out, nil
}

func (s *memStore) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.txns {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sortByDateAndID(out)
	return out, nil
}

func (s *memStore) SaveTransactionsInTx(ctx context.Context, tx pgx.Tx, transactions []domain.Transaction) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if s.fingerprintTaken(t) {
			continue
		}
		s.txns[t.TransactionID] = t
		stored = append(stored, t)
	}
	return stored, nil
}

func (s *memStore) fingerprintTaken(t domain.Transaction) bool {
	for _, existing := range s.txns {
		if existing.RawFingerprint == t.RawFingerprint {
			return true
		}
		if existing.NormalizedFingerprint != nil && t.NormalizedFingerprint != nil &&
			*existing.NormalizedFingerprint == *t.NormalizedFingerprint {
			return true
		}
	}
	return false
}

func (s *memStore) LinkReversalPair(ctx context.Context, firstID, secondID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.linkErr != nil {
		return s.linkErr
	}
	a, okA := s.txns[firstID]
	b, okB := s.txns[secondID]
	if !okA || !okB || a.IsReversal || b.IsReversal {
		return apperrors.ErrConflict
	}
	a.IsReversal, a.RelatedTransactionID = true, &b.TransactionID
	b.IsReversal, b.RelatedTransactionID = true, &a.TransactionID
	a.Touch(userID, now)
	b.Touch(userID, now)
	s.txns[firstID], s.txns[secondID] = a, b
	return nil
}

func (s *memStore) CascadeMappingInTx(ctx context.Context, tx pgx.Tx, mapping domain.DescriptionMapping) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, t := range s.txns {
		if t.AccountID == mapping.AccountID && t.NormalizedDescription == mapping.NormalizedDescription {
			t.SimplifiedDescription = mapping.SimplifiedDescription
			t.Category = mapping.Category
			s.txns[id] = t
			n++
		}
	}
	return n, nil
}

func (s *memStore) DeleteTransactionsByImportInTx(ctx context.Context, tx pgx.Tx, importID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, t := range s.txns {
		if t.ImportID == nil || *t.ImportID != importID {
			continue
		}
		if t.RelatedTransactionID != nil {
			if partner, ok := s.txns[*t.RelatedTransactionID]; ok {
				partner.IsReversal = false
				partner.RelatedTransactionID = nil
				s.txns[partner.TransactionID] = partner
			}
		}
		delete(s.txns, id)
		n++
	}
	return n, nil
}

// --- Import history ---

func (s *memStore) FindImportRecordByID(ctx context.Context, importID string) (*domain.ImportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.imports[importID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) ListImportRecordsByAccount(ctx context.Context, accountID string, limit int, after *domain.ImportCursor) ([]domain.ImportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	newerFirst := func(a, b domain.ImportRecord) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ImportID > b.ImportID
	}
	var out []domain.ImportRecord
	for _, r := range s.imports {
		if r.AccountID != accountID {
			continue
		}
		if after != nil && !r.CreatedAt.Before(after.CreatedAt) &&
			!(r.CreatedAt.Equal(after.CreatedAt) && r.ImportID < after.ImportID) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return newerFirst(out[i], out[j]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) SaveImportRecordInTx(ctx context.Context, tx pgx.Tx, record domain.ImportRecord) error {
	return s.SaveImportRecord(ctx, record)
}

func (s *memStore) SaveImportRecord(ctx context.Context, record domain.ImportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imports[record.ImportID] = record
	return nil
}

func (s *memStore) DeleteImportRecordInTx(ctx context.Context, tx pgx.Tx, importID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.imports, importID)
	return nil
}

// staleGateStore answers the pre-transaction reads as if nothing were stored,
// like an import whose checks ran before a concurrent import committed.
type staleGateStore struct {
	*memStore
}

func (s staleGateStore) ExistsByRawFingerprint(ctx context.Context, rawFingerprint string) (bool, error) {
	return false, nil
}

func (s staleGateStore) ExistsByNormalizedFingerprint(ctx context.Context, normalizedFingerprint string) (bool, error) {
	return false, nil
}

func (s staleGateStore) ListMappingsByAccount(ctx context.Context, accountID string) ([]domain.DescriptionMapping, error) {
	return nil, nil
}

func sortByDateAndID(txns []domain.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].TransactionID < txns[j].TransactionID
	})
}

var (
	_ portsrepo.AccountReader                = (*memStore)(nil)
	_ portsrepo.CardReader                   = (*memStore)(nil)
	_ portsrepo.MappingRepositoryWithTx      = (*memStore)(nil)
	_ portsrepo.TransactionRepositoryWithTx  = (*memStore)(nil)
	_ portsrepo.ImportRecordRepositoryFacade = (*memStore)(nil)
)
