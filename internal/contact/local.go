package contact

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
)

// LocalBaseURL is the base URL used with NewLocalClient. Requests never leave
// the process, so the host is only a placeholder.
const LocalBaseURL = "http://pinecoast.local"

// Handler returns a router serving only the contact API.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	a.RegisterRoutes(r)
	return r
}

// NewLocalClient returns a client that serves every request with h in
// process instead of dialing out.
func NewLocalClient(h http.Handler, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: handlerTransport{h: h},
		Timeout:   timeout,
	}
}

type handlerTransport struct {
	h http.Handler
}

func (t handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.RemoteAddr = "127.0.0.1:0"
	r.RequestURI = req.URL.RequestURI()

	rec := httptest.NewRecorder()
	t.h.ServeHTTP(rec, r)
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	return rec.Result(), nil
}
