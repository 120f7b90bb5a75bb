package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/assetkeeper/internal/client/api"
	"github.com/go-chi/chi/v5"
)

// call is one request seen by the fake backend.
type call struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

type fakeBackend struct {
	*chi.Mux
	mu    sync.Mutex
	calls []call
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{Mux: chi.NewRouter()}
	b.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
			b.mu.Lock()
			b.calls = append(b.calls, call{
				Method: r.Method,
				Path:   r.URL.Path,
				Query:  r.URL.RawQuery,
				Auth:   r.Header.Get("Authorization"),
				Body:   string(body),
			})
			b.mu.Unlock()
			next.ServeHTTP(w, r)
		})
	})
	return b
}

func (b *fakeBackend) Calls() []call {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]call(nil), b.calls...)
}

func (b *fakeBackend) last(t *testing.T) call {
	t.Helper()
	calls := b.Calls()
	if len(calls) == 0 {
		t.Fatal("no request reached the backend")
	}
	return calls[len(calls)-1]
}

// start serves b under /api and returns a client whose token comes from tok.
func (b *fakeBackend) start(t *testing.T, tok api.TokenSource) *api.Client {
	t.Helper()
	root := chi.NewRouter()
	root.Mount("/api", b)
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)
	return api.New(srv.URL+"/api", "v1", tok, api.WithHTTPClient(srv.Client()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func reply(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, status, v) }
}
