package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Endpoint returns the contact API URL for baseURL. An empty base yields the
// same-origin path.
func Endpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/contact"
}

// Flow holds one visitor's form fields and submission status and sends the
// form to the contact API. At most one request is in flight at a time.
type Flow struct {
	client   *http.Client
	endpoint string

	mu     sync.Mutex
	form   Form
	status Status
	cancel context.CancelFunc
	closed bool
}

// NewFlow creates a Flow that posts to baseURL + "/api/contact". A nil
// client gets a default with a 10 second timeout.
func NewFlow(baseURL string, client *http.Client) *Flow {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Flow{
		client:   client,
		endpoint: Endpoint(baseURL),
	}
}

// URL returns the endpoint submissions are posted to.
func (f *Flow) URL() string { return f.endpoint }

// SetName sets the name field.
func (f *Flow) SetName(v string) {
	f.mu.Lock()
	f.form.Name = v
	f.mu.Unlock()
}

// SetEmail sets the email field.
func (f *Flow) SetEmail(v string) {
	f.mu.Lock()
	f.form.Email = v
	f.mu.Unlock()
}

// SetMessage sets the message field.
func (f *Flow) SetMessage(v string) {
	f.mu.Lock()
	f.form.Message = v
	f.mu.Unlock()
}

// Form returns the current field values.
func (f *Flow) Form() Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Status returns the current submission status.
func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Sending reports whether a request is in flight.
func (f *Flow) Sending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancel != nil
}

// Submit validates the form and posts it to the contact API, returning the
// resulting status. The status is "Sending..." for as long as the request is
// in flight; a Submit during that window sends nothing and returns it.
func (f *Flow) Submit(ctx context.Context) Status {
	f.mu.Lock()
	if f.closed {
		st := f.status
		f.mu.Unlock()
		return st
	}
	if f.cancel != nil {
		st := f.status
		f.mu.Unlock()
		log.Printf("contact: %v", ErrInFlight)
		return st
	}

	form := f.form
	if err := form.Validate(); err != nil {
		f.status = Status{Kind: KindError, Message: MsgMissingFields}
		st := f.status
		f.mu.Unlock()
		return st
	}

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.status = Status{Kind: KindInfo, Message: MsgSending}
	f.mu.Unlock()

	st := f.send(ctx, form)
	cancel()

	f.mu.Lock()
	f.cancel = nil
	f.status = st
	if st.Kind == KindSuccess {
		f.form = Form{}
	}
	f.mu.Unlock()
	return st
}

// Reset clears the fields and status. A request in flight is left alone,
// and Reset does nothing until it completes.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		return
	}
	f.form = Form{}
	f.status = Status{}
}

// Close cancels any in-flight request. Later submits do nothing.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *Flow) send(ctx context.Context, form Form) Status {
	body, err := json.Marshal(form)
	if err != nil {
		log.Printf("contact: encoding form: %v", err)
		return Status{Kind: KindError, Message: "Error: " + MsgFallback}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("contact: building request for %s: %v", f.endpoint, err)
		return Status{Kind: KindError, Message: MsgNoConnection}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("contact: submission error: %v", err)
		return Status{Kind: KindError, Message: MsgNoConnection}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return Status{Kind: KindSuccess, Message: MsgSuccess}
	}

	return Status{Kind: KindError, Message: "Error: " + errorMessage(resp)}
}

// errorMessage reads the "error" field of a failed response, falling back to
// a generic message when the body is missing or not JSON.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&payload); err != nil {
		log.Printf("contact: decoding %d error response: %v", resp.StatusCode, err)
		return MsgFallback
	}
	if payload.Error == "" {
		return MsgFallback
	}
	return payload.Error
}
