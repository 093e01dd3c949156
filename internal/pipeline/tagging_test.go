package pipeline

import (
	"context"
	"reflect"
	"testing"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
	"github.com/robinlwong/tech-talent-radar/internal/domain/lexicon"
)

func TestRunFiltersToTargetSectors(t *testing.T) {
	p := NewTaggingPipeline(lexicon.Default(), 2, nil)

	raws := []RawJob{
		{Title: "Python Developer", CategoriesJSON: `[{"category":"Information Technology"}]`},
		{Title: "Retail Assistant", CategoriesJSON: `[{"category":"Retail"}]`},
		{Title: "Site Engineer", CategoriesJSON: `[{'category':'Engineering'}]`},
	}

	tagged, stats, err := p.Run(context.Background(), raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Input != 3 || stats.Kept != 2 {
		t.Fatalf("stats: input=%d kept=%d", stats.Input, stats.Kept)
	}
	if len(tagged) != 2 {
		t.Fatalf("expected 2 tagged jobs, got %d", len(tagged))
	}
}

func TestRunTagsAndCountsSentinel(t *testing.T) {
	p := NewTaggingPipeline(lexicon.Default(), 1, nil)

	raws := []RawJob{
		{Title: "Python Developer", CategoriesJSON: `[{"category":"Information Technology"}]`},
		{Title: "Office Administrator", CategoriesJSON: `[{"category":"Information Technology"}]`},
	}

	tagged, stats, err := p.Run(context.Background(), raws)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(tagged[0].Skills, []job.SkillTag{"Python"}) {
		t.Fatalf("tagged skills: %v", tagged[0].Skills)
	}
	if !reflect.DeepEqual(tagged[1].Skills, []job.SkillTag{GeneralTag}) {
		t.Fatalf("unmatched title should carry the sentinel, got %v", tagged[1].Skills)
	}
	if stats.Tagged != 1 || stats.Untagged != 1 {
		t.Fatalf("stats: tagged=%d untagged=%d", stats.Tagged, stats.Untagged)
	}
	if stats.SkillFreq["Python"] != 1 || stats.SkillFreq[GeneralTag] != 1 {
		t.Fatalf("freq: %v", stats.SkillFreq)
	}
}

func TestTagOneSalaryBackfill(t *testing.T) {
	p := NewTaggingPipeline(lexicon.Default(), 1, nil)

	got := p.tagOne(RawJob{
		Title:          "Python Developer",
		CategoriesJSON: `[{"category":"Information Technology"}]`,
		SalaryMin:      "4000",
		SalaryMax:      "6000",
	})
	if got.Record.SalaryAvg != 5000 {
		t.Fatalf("expected avg backfilled to 5000, got %v", got.Record.SalaryAvg)
	}

	got = p.tagOne(RawJob{
		Title:          "Python Developer",
		CategoriesJSON: `[{"category":"Information Technology"}]`,
		SalaryAvg:      "5500",
	})
	if got.Record.SalaryAvg != 5500 {
		t.Fatalf("explicit avg must win, got %v", got.Record.SalaryAvg)
	}
}

func TestTagOneParsesYearsAndDate(t *testing.T) {
	p := NewTaggingPipeline(lexicon.Default(), 1, nil)

	got := p.tagOne(RawJob{
		Title:              "Python Developer",
		CategoriesJSON:     `[{"category":"Information Technology"}]`,
		MinYearsExperience: "3.0",
		Date:               "2024-06-15",
	})
	if got.Record.MinYearsExperience != 3 {
		t.Fatalf("years: %d", got.Record.MinYearsExperience)
	}
	if got.Record.PostedAt == nil || got.Record.PostedAt.Format("2006-01-02") != "2024-06-15" {
		t.Fatalf("date: %v", got.Record.PostedAt)
	}
}

func TestParseCategories(t *testing.T) {
	got := ParseCategories(`[{"id":21,"category":"Information Technology"},{"id":10,"category":"Engineering"}]`)
	if !reflect.DeepEqual(got, []string{"Information Technology", "Engineering"}) {
		t.Fatalf("got %v", got)
	}

	// The raw export sometimes carries Python-style single quotes.
	got = ParseCategories(`[{'id': 21, 'category': 'Engineering'}]`)
	if !reflect.DeepEqual(got, []string{"Engineering"}) {
		t.Fatalf("single-quoted: %v", got)
	}

	if got := ParseCategories("not json"); got != nil {
		t.Fatalf("expected nil for junk, got %v", got)
	}
}

func TestPrimaryCategory(t *testing.T) {
	if c := PrimaryCategory([]string{"Engineering", "Information Technology"}); c != job.CategoryIT {
		t.Fatalf("IT should win over Engineering, got %q", c)
	}
	if c := PrimaryCategory([]string{"Engineering", "Logistics"}); c != job.CategoryEngineering {
		t.Fatalf("got %q", c)
	}
	if c := PrimaryCategory([]string{"Retail"}); c != job.CategoryOther {
		t.Fatalf("got %q", c)
	}
}

func TestCleanSalary(t *testing.T) {
	cases := map[string]float64{
		"4500":     4500,
		" 4500.5 ": 4500.5,
		"":         0,
		"n/a":      0,
		"-100":     0,
	}
	for in, want := range cases {
		if got := cleanSalary(in); got != want {
			t.Fatalf("cleanSalary(%q) = %v, want %v", in, got, want)
		}
	}
}
