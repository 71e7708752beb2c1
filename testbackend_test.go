package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/lifedash/lifedash-go/internal/types"
)

// testBackend is an in-memory stand-in for the LifeDash REST backend.
type testBackend struct {
	mu sync.Mutex

	contents []types.Content
	tasks    []types.Task
	jobs     []types.Job
	leads    []types.Lead
	mastery  *types.SkillMastery

	hits map[string]int  // "GET /api/tasks" -> count
	fail map[string]bool // force 500 for a method+path key

	lastUserID  string
	lastTaskDue string              // raw dueDate of the last task PATCH
	lastPut     *types.SkillMastery // body of the last skillMastery PUT
}

func newTestBackend() *testBackend {
	return &testBackend{hits: map[string]int{}, fail: map[string]bool{}}
}

func (b *testBackend) hitCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[key]
}

func (b *testBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := r.Method + " " + r.URL.Path
	b.hits[key]++
	b.lastUserID = r.Header.Get("X-User-Id")

	if b.fail[key] {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch {
	case key == "GET /api/contents":
		_ = json.NewEncoder(w).Encode(b.contents)
	case key == "GET /api/tasks":
		_ = json.NewEncoder(w).Encode(b.tasks)
	case key == "GET /api/jobs":
		_ = json.NewEncoder(w).Encode(b.jobs)
	case key == "GET /api/leads":
		_ = json.NewEncoder(w).Encode(b.leads)
	case key == "GET /api/skillMastery":
		if b.mastery == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(b.mastery)
	case key == "PUT /api/skillMastery":
		var doc types.SkillMastery
		_ = json.NewDecoder(r.Body).Decode(&doc)
		b.mastery = &doc
		b.lastPut = &doc
		_ = json.NewEncoder(w).Encode(doc)
	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/contents/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/contents/")
		var patch types.ContentPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		for i := range b.contents {
			if b.contents[i].ID == id {
				b.contents[i].ScheduledDate = patch.ScheduledDate
				_ = json.NewEncoder(w).Encode(b.contents[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/tasks/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
		var patch types.TaskPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		b.lastTaskDue = patch.DueDate
		for i := range b.tasks {
			if b.tasks[i].ID == id {
				b.tasks[i].DueDate = patch.DueDate
				_ = json.NewEncoder(w).Encode(b.tasks[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/leads/"):
		id := strings.TrimPrefix(r.URL.Path, "/api/leads/")
		var patch types.LeadPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		for i := range b.leads {
			if b.leads[i].ID == id {
				b.leads[i].FollowUpDate = patch.FollowUpDate
				_ = json.NewEncoder(w).Encode(b.leads[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// newTestEngine spins up the fake backend and an engine pointed at it.
// Read retries are pinned to a single attempt so failure tests stay fast.
func newTestEngine(t *testing.T, b *testBackend, opts ...Option) *Engine {
	t.Helper()
	t.Setenv("LIFEDASH_FETCH_MAX_ATTEMPTS", "1")
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)
	return New(srv.URL, "u-1", opts...)
}
