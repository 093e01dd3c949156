package main

import (
	"context"
	"flag"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/robinlwong/tech-talent-radar/internal/config"
	dbpostgres "github.com/robinlwong/tech-talent-radar/internal/database/postgres"
	"github.com/robinlwong/tech-talent-radar/internal/database/schema"
	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
	"github.com/robinlwong/tech-talent-radar/internal/pipeline"
	"github.com/robinlwong/tech-talent-radar/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	input := flag.String("input", "", "raw MyCareersFuture export CSV")
	output := flag.String("output", "tech_talent_radar_processed.csv", "processed corpus CSV")
	workers := flag.Int("workers", 0, "tagging workers (default: NumCPU)")
	toDB := flag.Bool("db", false, "also upsert the processed corpus into Postgres")
	flag.Parse()

	_ = godotenv.Load()

	if strings.TrimSpace(*input) == "" {
		log.Fatalf("provide -input")
	}

	raws, err := pipeline.ReadRawCSV(*input)
	if err != nil {
		log.Fatalf("read raw csv failed: %v", err)
	}

	p := pipeline.NewTaggingPipeline(lexicon.Default(), *workers, log.Default())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	tagged, stats, err := p.Run(ctx, raws)
	if err != nil {
		log.Fatalf("tagging pipeline failed: %v", err)
	}

	if err := pipeline.WriteProcessedCSV(*output, tagged); err != nil {
		log.Fatalf("write processed csv failed: %v", err)
	}
	log.Printf("etl=write status=ok path=%s jobs=%d", *output, len(tagged))

	printSkillDistribution(stats)

	if *toDB {
		if err := upsertToPostgres(ctx, tagged); err != nil {
			log.Fatalf("postgres upsert failed: %v", err)
		}
	}
}

func printSkillDistribution(stats pipeline.Stats) {
	type freq struct {
		tag   job.SkillTag
		count int
	}
	out := make([]freq, 0, len(stats.SkillFreq))
	for tag, count := range stats.SkillFreq {
		out = append(out, freq{tag: tag, count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].tag < out[j].tag
	})

	for _, f := range out {
		log.Printf("etl=skill_freq skill=%q count=%d", f.tag, f.count)
	}
}

func upsertToPostgres(ctx context.Context, tagged []pipeline.TaggedJob) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.Database.Enabled() {
		return repository.ErrNoCorpusSource
	}

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := schema.Ensure(ctx, db); err != nil {
		return err
	}

	records := make([]job.Record, 0, len(tagged))
	for _, t := range tagged {
		records = append(records, t.Record)
	}

	repo := repository.NewPostgresJobRepository(db)
	if err := repo.UpsertJobs(ctx, records); err != nil {
		return err
	}
	log.Printf("etl=upsert status=ok jobs=%d", len(records))
	return nil
}
