package usecase

import (
	"context"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/vocab"
)

// SkillUsecase exposes the selectable skill vocabulary: only tags actually
// inferable from the current corpus, so every option a user can pick is
// guaranteed to match at least one job.
type SkillUsecase struct {
	corpus CorpusProvider
	index  *vocab.Index
}

func NewSkillUsecase(corpus CorpusProvider, index *vocab.Index) *SkillUsecase {
	if index == nil {
		index = vocab.NewIndex()
	}
	return &SkillUsecase{corpus: corpus, index: index}
}

func (u *SkillUsecase) GetAllInferableSkills(ctx context.Context) ([]job.SkillTag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return u.index.AllInferableSkills(u.corpus.Jobs()), nil
}
