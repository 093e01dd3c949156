package vocab

import (
	"reflect"
	"testing"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"

	"github.com/google/uuid"
)

func TestAllInferableSkills(t *testing.T) {
	jobs := []job.Record{
		{ID: uuid.New(), Title: "a", InferredSkills: []job.SkillTag{"Python", "SQL"}},
		{ID: uuid.New(), Title: "b", InferredSkills: []job.SkillTag{"sql", "DevOps"}},
		{ID: uuid.New(), Title: "c"},
	}

	ix := NewIndex()
	got := ix.AllInferableSkills(jobs)
	want := []job.SkillTag{"DevOps", "Python", "SQL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAllInferableSkillsCachesByFingerprint(t *testing.T) {
	jobs := []job.Record{
		{ID: uuid.New(), Title: "a", InferredSkills: []job.SkillTag{"Python"}},
	}

	ix := NewIndex()
	first := ix.AllInferableSkills(jobs)
	second := ix.AllInferableSkills(jobs)

	// Unchanged corpus returns the cached slice, not a recomputed copy.
	if len(first) != 1 || &first[0] != &second[0] {
		t.Fatalf("expected cached result for identical corpus")
	}
}

func TestAllInferableSkillsRecomputesOnChange(t *testing.T) {
	id := uuid.New()
	jobs := []job.Record{{ID: id, Title: "a", InferredSkills: []job.SkillTag{"Python"}}}

	ix := NewIndex()
	if got := ix.AllInferableSkills(jobs); !reflect.DeepEqual(got, []job.SkillTag{"Python"}) {
		t.Fatalf("got %v", got)
	}

	jobs = append(jobs, job.Record{ID: uuid.New(), Title: "b", InferredSkills: []job.SkillTag{"SQL"}})
	got := ix.AllInferableSkills(jobs)
	if !reflect.DeepEqual(got, []job.SkillTag{"Python", "SQL"}) {
		t.Fatalf("after corpus change got %v", got)
	}
}

func TestFingerprint(t *testing.T) {
	id := uuid.New()
	a := []job.Record{{ID: id, Title: "Engineer"}}
	b := []job.Record{{ID: id, Title: "Engineer"}}
	c := []job.Record{{ID: id, Title: "Manager"}}

	if Fingerprint(a) != Fingerprint(b) {
		t.Fatalf("identical corpora must fingerprint equally")
	}
	if Fingerprint(a) == Fingerprint(c) {
		t.Fatalf("title change must change the fingerprint")
	}
	if Fingerprint(nil) == Fingerprint(a) {
		t.Fatalf("empty corpus must differ from non-empty")
	}
}
