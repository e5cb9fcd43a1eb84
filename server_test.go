package cubeview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/pkg/types"
)

// newTestServer serves the solving service endpoints from the local model.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	var mu sync.Mutex
	c := cube.New()

	reply := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			t.Errorf("encode reply: %v", err)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /get-state", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		reply(w, map[string]any{"current": c.State.Slice()})
	})
	mux.HandleFunc("POST /apply-moves", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Moves []string `json:"moves"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		mu.Lock()
		defer mu.Unlock()
		history := [][]int{}
		for _, tok := range req.Moves {
			m, err := types.ParseMove(tok)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			c.ApplyMove(m)
			history = append(history, c.State.Slice())
		}
		reply(w, map[string]any{"current": c.State.Slice(), "history": history})
	})
	mux.HandleFunc("GET /solve", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string]string{"solution": ""})
	})

	return httptest.NewServer(mux)
}
