package app

import (
	"context"
	"log"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/config"
	"github.com/robinlwong/tech-talent-radar/internal/corpus"
	"github.com/robinlwong/tech-talent-radar/internal/database"
	dbpostgres "github.com/robinlwong/tech-talent-radar/internal/database/postgres"
	"github.com/robinlwong/tech-talent-radar/internal/database/schema"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
	"github.com/robinlwong/tech-talent-radar/internal/infrastructure/cache"
	"github.com/robinlwong/tech-talent-radar/internal/pkg/jwt"
	"github.com/robinlwong/tech-talent-radar/internal/repository"
	"github.com/robinlwong/tech-talent-radar/internal/usecase"
	"github.com/robinlwong/tech-talent-radar/internal/vocab"
	"github.com/robinlwong/tech-talent-radar/internal/ws"
)

// Container owns every long-lived dependency. Construction order matters:
// corpus source first, then the store and its initial load, then the
// usecases that read from it.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Store *corpus.Store
	Hub   *ws.Hub

	JWT jwt.Service

	AuthUC           *usecase.AuthUsecase
	SkillUC          *usecase.SkillUsecase
	JobListUC        *usecase.JobListUsecase
	RecommendationUC *usecase.RecommendationUsecase
	CorpusUC         *usecase.CorpusUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	lex := lexicon.Default()

	loader, err := c.buildLoader(cfg, logger)
	if err != nil {
		return nil, err
	}

	c.Cache = cache.NewRedis(logger)
	c.Store = corpus.NewStore(loader, lex, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := c.Store.Reload(ctx); err != nil {
		logger.Printf("app=container corpus_initial_load=failed err=%v", err)
	}

	c.Hub = ws.NewHub(logger)
	ws.SetDefaultHub(c.Hub)

	c.JWT = jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	c.AuthUC = usecase.NewAuthUsecase(cfg.Auth, c.JWT)
	c.SkillUC = usecase.NewSkillUsecase(c.Store, vocab.NewIndex())
	c.JobListUC = usecase.NewJobListUsecase(c.Store)
	c.RecommendationUC = usecase.NewRecommendationUsecase(c.Store, lex, c.Cache, cfg.Corpus.Workers, logger)
	c.CorpusUC = usecase.NewCorpusUsecase(c.Store, c.Cache, logger)

	return c, nil
}

func (c *Container) buildLoader(cfg config.Config, logger *log.Logger) (corpus.Loader, error) {
	if !cfg.Database.Enabled() {
		logger.Printf("app=container corpus_source=csv path=%s", cfg.Corpus.CSVPath)
		return repository.NewCSVJobRepository(cfg.Corpus.CSVPath, logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c.DB = db
	logger.Printf("app=container corpus_source=postgres host=%s db=%s", cfg.Database.DBHost, cfg.Database.DBName)
	return repository.NewPostgresJobRepository(db), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
