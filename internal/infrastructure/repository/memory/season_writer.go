package memory

import (
	"context"
	"sync"

	"github.com/rkl-hq/season-engine/internal/domain/seasonstats"
)

// SeasonWriter keeps the latest committed document set per season. Local runs
// and tests use it in place of the Postgres writer.
type SeasonWriter struct {
	mu     sync.RWMutex
	sets   map[string]seasonstats.DocumentSet
	writes int
}

func NewSeasonWriter() *SeasonWriter {
	return &SeasonWriter{sets: make(map[string]seasonstats.DocumentSet)}
}

func (w *SeasonWriter) WriteDocumentSet(_ context.Context, set seasonstats.DocumentSet) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.sets[set.SeasonID] = set
	w.writes++
	return nil
}

func (w *SeasonWriter) DocumentSet(seasonID string) (seasonstats.DocumentSet, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	set, ok := w.sets[seasonID]
	return set, ok
}

func (w *SeasonWriter) Writes() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.writes
}
