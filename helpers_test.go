package nexus

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/nexus-sdk/internal/model"
)

type recordedRequest struct {
	Query  map[string][]string
	Method string
	Path   string
	Secret string
	Body   []byte
}

// fakeAPI is an in-process stand-in for the Nexus API. Routes go on router;
// respond short-circuits every route with one fixed answer.
type fakeAPI struct {
	srv      *httptest.Server
	router   *chi.Mux
	fixed    http.Handler
	requests []recordedRequest
	mu       sync.Mutex
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	f := &fakeAPI{router: chi.NewRouter()}
	f.srv = httptest.NewTLSServer(f)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Secret: r.Header.Get(model.HeaderSharedSecret),
		Body:   body,
	})
	fixed := f.fixed
	f.mu.Unlock()

	if fixed != nil {
		fixed.ServeHTTP(w, r)
		return
	}
	f.router.ServeHTTP(w, r)
}

func (f *fakeAPI) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fixed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(model.HeaderContentType, model.MIMEApplicationJSON)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

func (f *fakeAPI) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *fakeAPI) lastCall(t *testing.T) recordedRequest {
	t.Helper()
	calls := f.calls()
	require.NotEmpty(t, calls)
	return calls[len(calls)-1]
}

// client returns a client configured against the fake.
func (f *fakeAPI) client(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c := f.unconfiguredClient(opts...)
	require.NoError(t, c.SetConfig(Config{
		PublicKey:  "mockPublicKey",
		PrivateKey: "mockPrivateKey",
		BaseURL:    f.srv.URL,
	}))
	return c
}

func (f *fakeAPI) unconfiguredClient(opts ...Option) *Client {
	return NewClient(append([]Option{WithHTTPClient(f.srv.Client())}, opts...)...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(model.HeaderContentType, model.MIMEApplicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
