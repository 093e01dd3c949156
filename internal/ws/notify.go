package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// CorpusReloadedEvent tells listening dashboards that the job corpus was
// swapped and cached recommendations are stale.
type CorpusReloadedEvent struct {
	Type      string `json:"type"`
	Jobs      int    `json:"jobs"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyCorpusReloaded(jobs int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := CorpusReloadedEvent{
		Type:      "corpus_reloaded",
		Jobs:      jobs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
