package usecase

import (
	"context"
	"log"

	"github.com/robinlwong/tech-talent-radar/internal/corpus"
	"github.com/robinlwong/tech-talent-radar/internal/ws"
)

// CorpusUsecase wraps the privileged reload operation: swap the snapshot,
// drop stale cached recommendations, tell the dashboards.
type CorpusUsecase struct {
	store *corpus.Store
	cache Cache
	log   *log.Logger
}

func NewCorpusUsecase(store *corpus.Store, cache Cache, logger *log.Logger) *CorpusUsecase {
	if logger == nil {
		logger = log.Default()
	}
	return &CorpusUsecase{store: store, cache: cache, log: logger}
}

func (u *CorpusUsecase) Reload(ctx context.Context) (int, error) {
	n, err := u.store.Reload(ctx)
	if err != nil {
		return 0, err
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "reco:*"); err != nil {
			u.log.Printf("usecase=corpus_reload cache_invalidate=failed err=%v", err)
		}
	}

	ws.NotifyCorpusReloaded(n)
	return n, nil
}
