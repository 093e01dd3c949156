package vocab

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"sync/atomic"

	"github.com/robinlwong/tech-talent-radar/internal/domain/job"
)

// Index caches the set of skill tags reachable from the current job corpus.
// Every tag it returns is inferred from at least one job, which makes the set
// safe to offer as selectable options: any other tag could never match.
//
// The cache is keyed by a corpus fingerprint and swapped atomically on
// change; readers never block behind a recompute.
type Index struct {
	snapshot atomic.Pointer[indexSnapshot]
	mu       sync.Mutex
}

type indexSnapshot struct {
	fingerprint string
	tags        []job.SkillTag
}

func NewIndex() *Index {
	return &Index{}
}

// AllInferableSkills returns the union of inferred skills across jobs,
// sorted by tag key. Repeated calls with an unchanged corpus are O(1).
func (ix *Index) AllInferableSkills(jobs []job.Record) []job.SkillTag {
	fp := Fingerprint(jobs)
	if snap := ix.snapshot.Load(); snap != nil && snap.fingerprint == fp {
		return snap.tags
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if snap := ix.snapshot.Load(); snap != nil && snap.fingerprint == fp {
		return snap.tags
	}

	set := job.NewSkillSet()
	for _, j := range jobs {
		for _, tag := range j.InferredSkills {
			set.Add(tag)
		}
	}
	tags := set.Tags()
	ix.snapshot.Store(&indexSnapshot{fingerprint: fp, tags: tags})
	return tags
}

// Fingerprint derives a content hash of the corpus from its row count and
// each record's identity and title, in corpus order.
func Fingerprint(jobs []job.Record) string {
	h := sha256.New()
	var count [8]byte
	binary.BigEndian.PutUint64(count[:], uint64(len(jobs)))
	h.Write(count[:])
	for _, j := range jobs {
		h.Write(j.ID[:])
		h.Write([]byte(j.Title))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
