package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/statement_ingestion/internal/core/ports/repositories"
)

// DedupGate admits a candidate only when neither of its fingerprints is already
// stored or was admitted earlier in the same import. A gate serves one import.
type DedupGate struct {
	repo     portsrepo.FingerprintReader
	seenRaw  map[string]struct{}
	seenNorm map[string]struct{}
}

// NewDedupGate creates a gate backed by the given fingerprint store.
func NewDedupGate(repo portsrepo.FingerprintReader) *DedupGate {
	return &DedupGate{
		repo:     repo,
		seenRaw:  make(map[string]struct{}),
		seenNorm: make(map[string]struct{}),
	}
}

// Admit reports whether the candidate may be persisted. A false result is a
// silent skip, not an error.
func (g *DedupGate) Admit(ctx context.Context, rawFP, normFP string) (bool, error) {
	if _, ok := g.seenRaw[rawFP]; ok {
		return false, nil
	}
	if _, ok := g.seenNorm[normFP]; ok && normFP != "" {
		return false, nil
	}

	exists, err := g.repo.ExistsByRawFingerprint(ctx, rawFP)
	if err != nil {
		return false, fmt.Errorf("failed to check raw fingerprint: %w", err)
	}
	if exists {
		return false, nil
	}

	if normFP != "" {
		exists, err = g.repo.ExistsByNormalizedFingerprint(ctx, normFP)
		if err != nil {
			return false, fmt.Errorf("failed to check normalized fingerprint: %w", err)
		}
		if exists {
			return false, nil
		}
		g.seenNorm[normFP] = struct{}{}
	}

	g.seenRaw[rawFP] = struct{}{}
	return true, nil
}
