package lexicon

import "github.com/robinlwong/tech-talent-radar/internal/domain/job"

// The tag vocabularies mirror the dashboard ETL dictionaries so that tags in
// the processed datasets and tags produced by the recommender line up.

var itPatterns = map[job.SkillTag]string{
	"Python":        `\bpython\b`,
	"Java":          `\bjava\b`,
	"React/JS":      `\b(react|node|javascript|typescript|vue|angular)\b`,
	"Cloud/AWS":     `\b(aws|azure|cloud|gcp|google cloud)\b`,
	"Data/AI":       `\b(data|ai|machine learning|nlp|torch|tensorflow|bi|tableau)\b`,
	"Cybersecurity": `\b(cyber|security|infosec)\b`,
	"DevOps":        `\b(devops|sre|ci/cd|kubernetes|docker|jenkins)\b`,
	".NET/C#":       `(\.net\b|\bc#|\bdotnet\b)`,
	"SQL":           `\bsql\b`,
	"Mobile Dev":    `\b(ios|android|flutter|react native|swift|kotlin)\b`,
	"PHP/Laravel":   `\b(php|laravel)\b`,
	"Ruby":          `\bruby\b`,
	"Go/Rust":       `\b(golang|go lang|rust)\b`,
}

var engPatterns = map[job.SkillTag]string{
	"Civil/Structural": `\b(civil|structural|concrete|steel|tunnel|bridge|geotechnical)\b`,
	"Mechanical":       `\b(mechanical|hvac|piping|m&e)\b`,
	"Electrical":       `\b(electrical|power|high voltage|switchgear)\b`,
	"Electronics":      `\b(electronics|pcb|embedded|firmware|semiconductor|wafer)\b`,
	"Chemical/Process": `\b(chemical|process eng|refinery|oil and gas)\b`,
	"Marine/Offshore":  `\b(marine|offshore|naval|ship)\b`,
}

// Default builds the lexicon covering both target sectors.
func Default() *Lexicon {
	l, err := New(map[job.Category]map[job.SkillTag]string{
		job.CategoryIT:          itPatterns,
		job.CategoryEngineering: engPatterns,
	})
	if err != nil {
		panic(err)
	}
	return l
}
