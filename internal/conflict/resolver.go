// Package conflict implements detection and resolution of divergence
// between two versions of the same record.
package conflict

import (
	"bytes"
	"fmt"

	"github.com/nvoronin/calcsync/internal/models"
)

// Strategy selects which side of a conflict pair survives resolution.
type Strategy string

const (
	// StrategyClientWins keeps the local version unconditionally.
	StrategyClientWins Strategy = "client_wins"
	// StrategyServerWins keeps the remote version unconditionally.
	StrategyServerWins Strategy = "server_wins"
	// StrategyKeepNewest keeps whichever version has the later updatedAt.
	// Exact ties resolve in favor of remote.
	StrategyKeepNewest Strategy = "keep_newest"
	// StrategyMerge is an alias of StrategyKeepNewest. Payloads are opaque
	// to the engine, so a field-level merge is not possible; the name is
	// kept for callers migrating from systems that offered one.
	StrategyMerge Strategy = "merge"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyClientWins, StrategyServerWins, StrategyKeepNewest, StrategyMerge:
		return true
	}
	return false
}

// DetectConflict reports whether a and b are divergent versions of the same
// logical record: same id, different payload. The check is symmetric.
// Records are correlated purely by id; unrelated records must never share one.
func DetectConflict(a, b *models.SyncableRecord) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID == b.ID && !bytes.Equal(a.Payload, b.Payload)
}

// Resolve applies the strategy to a conflict pair and returns the surviving
// record. Neither input is mutated; the result is a copy, so resolving the
// same pair twice with the same strategy yields identical results.
func Resolve(local, remote *models.SyncableRecord, strategy Strategy) (*models.SyncableRecord, error) {
	if local == nil || remote == nil {
		return nil, fmt.Errorf("resolve requires both sides of the pair")
	}

	switch strategy {
	case StrategyClientWins:
		return local.Clone(), nil
	case StrategyServerWins:
		return remote.Clone(), nil
	case StrategyKeepNewest, StrategyMerge:
		if local.IsNewerThan(remote) {
			return local.Clone(), nil
		}
		// remote wins ties
		return remote.Clone(), nil
	default:
		return nil, fmt.Errorf("unknown conflict resolution strategy %q", strategy)
	}
}

// ResolvePair is Resolve over a ConflictPair.
func ResolvePair(pair models.ConflictPair, strategy Strategy) (*models.SyncableRecord, error) {
	return Resolve(pair.Local, pair.Remote, strategy)
}
