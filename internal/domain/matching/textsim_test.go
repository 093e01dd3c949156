package matching

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Senior C++/Go Engineer (Backend), 5 yrs!")
	want := []string{"senior", "c", "go", "engineer", "backend", "5", "yrs"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if Tokenize("   ") != nil {
		t.Fatalf("blank text should tokenize to nil")
	}
}

func TestCosineSimilarityIdenticalText(t *testing.T) {
	s := CosineSimilarity("data engineer python sql", "data engineer python sql")
	if math.Abs(s-1) > 1e-12 {
		t.Fatalf("identical text should score 1, got %v", s)
	}
}

func TestCosineSimilarityDisjointText(t *testing.T) {
	if s := CosineSimilarity("civil structural works", "python sql backend"); s != 0 {
		t.Fatalf("disjoint text should score 0, got %v", s)
	}
}

func TestCosineSimilarityEmpty(t *testing.T) {
	if s := CosineSimilarity("", "python"); s != 0 {
		t.Fatalf("empty side should score 0, got %v", s)
	}
	if s := CosineSimilarity("python", ""); s != 0 {
		t.Fatalf("empty side should score 0, got %v", s)
	}
}

func TestCosineSimilarityPartial(t *testing.T) {
	s := CosineSimilarity("python developer", "python tester")
	if s <= 0 || s >= 1 {
		t.Fatalf("partial overlap should land strictly between 0 and 1, got %v", s)
	}
	// One shared term out of two per side.
	if math.Abs(s-0.5) > 1e-12 {
		t.Fatalf("expected 0.5, got %v", s)
	}
}

func TestCosineSimilarityDeterministic(t *testing.T) {
	a := "built data platforms on aws with python airflow and sql warehousing"
	b := "data engineer role covering python sql aws glue airflow dbt"

	first := CosineSimilarity(a, b)
	for i := 0; i < 100; i++ {
		if again := CosineSimilarity(a, b); again != first {
			t.Fatalf("run %d: similarity drifted from %v to %v", i, first, again)
		}
	}
}
