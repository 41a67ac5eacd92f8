package contact

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fillForm(f *Flow) {
	f.SetName("Jane Doe")
	f.SetEmail("jane@example.com")
	f.SetMessage("Can you cater a wedding for 80?")
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		base, want string
	}{
		{"", "/api/contact"},
		{"https://api.pinecoastbbq.com", "https://api.pinecoastbbq.com/api/contact"},
		{"https://api.pinecoastbbq.com/", "https://api.pinecoastbbq.com/api/contact"},
	}
	for _, tt := range tests {
		if got := Endpoint(tt.base); got != tt.want {
			t.Errorf("Endpoint(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestSubmitPostsJSONOnce(t *testing.T) {
	var calls atomic.Int32
	var got Form
	var contentType, method, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		method, path = r.Method, r.URL.Path
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFlow(srv.URL, srv.Client())
	fillForm(f)
	want := f.Form()

	f.Submit(t.Context())

	if n := calls.Load(); n != 1 {
		t.Fatalf("expected exactly 1 request, got %d", n)
	}
	if method != http.MethodPost || path != "/api/contact" {
		t.Errorf("request = %s %s, want POST /api/contact", method, path)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
	if got != want {
		t.Errorf("body = %+v, want %+v", got, want)
	}
}

func TestSubmitSuccessResetsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	f := NewFlow(srv.URL, srv.Client())
	fillForm(f)

	st := f.Submit(t.Context())
	if st.Kind != KindSuccess || st.Message != MsgSuccess {
		t.Errorf("status = %+v, want success", st)
	}
	if f.Form() != (Form{}) {
		t.Errorf("expected fields reset, got %+v", f.Form())
	}
	if f.Status() != st {
		t.Errorf("Status() = %+v, want %+v", f.Status(), st)
	}
}

func TestSubmitErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", http.StatusBadRequest, `{"error": "Invalid email"}`, "Error: Invalid email"},
		{"missing error field", http.StatusBadRequest, `{"message":"nope"}`, "Error: Something went wrong."},
		{"empty error field", http.StatusInternalServerError, `{"error":""}`, "Error: Something went wrong."},
		{"non-json body", http.StatusBadGateway, `<html>bad gateway</html>`, "Error: Something went wrong."},
		{"empty body", http.StatusServiceUnavailable, ``, "Error: Something went wrong."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			f := NewFlow(srv.URL, srv.Client())
			fillForm(f)
			before := f.Form()

			st := f.Submit(t.Context())
			if st.Kind != KindError {
				t.Errorf("kind = %s, want error", st.Kind)
			}
			if st.Message != tt.want {
				t.Errorf("message = %q, want %q", st.Message, tt.want)
			}
			if f.Form() != before {
				t.Errorf("fields changed on error: %+v", f.Form())
			}
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	f := NewFlow(base, nil)
	fillForm(f)

	st := f.Submit(t.Context())
	if st.Kind != KindError || st.Message != MsgNoConnection {
		t.Errorf("status = %+v, want %q", st, MsgNoConnection)
	}
}

func TestSubmitMissingFieldsSendsNothing(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	tests := []Form{
		{},
		{Name: "Jane", Email: "jane@example.com"},
		{Name: "Jane", Email: "   ", Message: "hi"},
		{Email: "jane@example.com", Message: "hi"},
	}
	for _, form := range tests {
		f := NewFlow(srv.URL, srv.Client())
		f.SetName(form.Name)
		f.SetEmail(form.Email)
		f.SetMessage(form.Message)

		st := f.Submit(t.Context())
		if st.Kind != KindError || st.Message != MsgMissingFields {
			t.Errorf("form %+v: status = %+v", form, st)
		}
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("expected no requests, got %d", n)
	}
}

func TestSubmitWhileInFlight(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFlow(srv.URL, srv.Client())
	fillForm(f)

	done := make(chan Status)
	go func() { done <- f.Submit(t.Context()) }()

	waitFor(t, f.Sending)

	if st := f.Status(); st.Kind != KindInfo || st.Message != MsgSending {
		t.Errorf("in-flight status = %+v, want info %q", st, MsgSending)
	}

	st := f.Submit(t.Context())
	if st.Kind != KindInfo {
		t.Errorf("second submit status = %+v, want info", st)
	}

	close(release)
	if st := <-done; st.Kind != KindSuccess {
		t.Errorf("first submit status = %+v, want success", st)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("expected 1 request, got %d", n)
	}
	if f.Sending() {
		t.Error("expected flow idle after completion")
	}
}

func TestCloseCancelsInFlight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	f := NewFlow(srv.URL, srv.Client())
	fillForm(f)

	done := make(chan Status)
	go func() { done <- f.Submit(t.Context()) }()

	waitFor(t, f.Sending)
	f.Close()

	select {
	case st := <-done:
		if st.Message != MsgNoConnection {
			t.Errorf("status = %+v, want %q", st, MsgNoConnection)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Close did not cancel the in-flight request")
	}

	// Closed flows ignore further submits.
	if st := f.Submit(t.Context()); st.Kind == KindInfo {
		t.Errorf("closed flow started a submission: %+v", st)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestReset(t *testing.T) {
	f := NewFlow("", nil)
	fillForm(f)
	f.SetEmail("")
	f.Submit(t.Context())
	if f.Status().Kind != KindError {
		t.Fatalf("status = %+v, want error", f.Status())
	}

	f.Reset()
	if f.Form() != (Form{}) || f.Status() != (Status{}) {
		t.Errorf("after Reset form=%+v status=%+v", f.Form(), f.Status())
	}
}

func TestResetLeavesInFlightAlone(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := NewFlow(srv.URL, srv.Client())
	fillForm(f)

	done := make(chan Status)
	go func() { done <- f.Submit(t.Context()) }()
	waitFor(t, f.Sending)

	f.Reset()
	if st := f.Status(); st.Message != MsgSending {
		t.Errorf("Reset changed in-flight status to %+v", st)
	}

	close(release)
	if st := <-done; st.Kind != KindSuccess {
		t.Errorf("in-flight submit = %+v, want success", st)
	}
}
