package contact

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

func validForm() Form {
	return Form{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Message: "Tell me about the 14 inch frame.",
	}
}

func fill(t *testing.T, c *Controller, f Form) {
	t.Helper()
	for field, value := range map[string]string{
		"name": f.Name, "email": f.Email, "company": f.Company, "message": f.Message,
	} {
		if err := c.Set(field, value); err != nil {
			t.Fatalf("Set(%q) failed: %v", field, err)
		}
	}
}

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Form)
		wantErr bool
	}{
		{"complete", func(*Form) {}, false},
		{"company optional", func(f *Form) { f.Company = "" }, false},
		{"missing name", func(f *Form) { f.Name = "" }, true},
		{"missing email", func(f *Form) { f.Email = "" }, true},
		{"bad email", func(f *Form) { f.Email = "not-an-address" }, true},
		{"missing message", func(f *Form) { f.Message = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidForm) {
				t.Errorf("expected ErrInvalidForm, got %v", err)
			}
		})
	}
}

func TestFormSet_UnknownField(t *testing.T) {
	var f Form
	if err := f.Set("phone", "555"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestClientSubmit_PostsJSON(t *testing.T) {
	var (
		got         map[string]string
		method      string
		contentType string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("body is not JSON: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if err := NewClient(server.URL, 0).Submit(context.Background(), validForm()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("method = %s, want POST", method)
	}
	if contentType != "application/json" {
		t.Errorf("content type = %q", contentType)
	}
	want := map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines",
		"message": "Tell me about the 14 inch frame.",
	}
	if len(got) != len(want) {
		t.Fatalf("payload = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("payload[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestController_Submit(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus Status
		wantClear  bool
	}{
		{"ok", http.StatusOK, StatusSuccess, true},
		{"created", http.StatusCreated, StatusSuccess, true},
		{"bad request", http.StatusBadRequest, StatusError, false},
		{"server error", http.StatusInternalServerError, StatusError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c := NewController(NewClient(server.URL, 0))
			fill(t, c, validForm())
			err := c.Submit(context.Background())

			if c.Status() != tt.wantStatus {
				t.Errorf("status = %v, want %v", c.Status(), tt.wantStatus)
			}
			if tt.wantStatus == StatusError && !errors.Is(err, ErrSubmitFailed) {
				t.Errorf("expected ErrSubmitFailed, got %v", err)
			}
			if tt.wantClear && c.Form() != (Form{}) {
				t.Errorf("fields not cleared: %+v", c.Form())
			}
			if !tt.wantClear && c.Form() != validForm() {
				t.Errorf("fields lost on error: %+v", c.Form())
			}
			if calls != 1 {
				t.Errorf("relay called %d times, want 1", calls)
			}
		})
	}
}

func TestController_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewController(NewClient(url, 0))
	fill(t, c, validForm())
	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitFailed) {
		t.Errorf("expected ErrSubmitFailed, got %v", err)
	}
	if c.Status() != StatusError || c.Banner() != ErrorMessage {
		t.Errorf("status = %v, banner = %q", c.Status(), c.Banner())
	}
}

func TestController_InvalidFormNotSent(t *testing.T) {
	var calls int
	sub := submitFunc(func(context.Context, Form) error {
		calls++
		return nil
	})

	c := NewController(sub)
	_ = c.Set("name", "Ada")
	if err := c.Submit(context.Background()); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("expected ErrInvalidForm, got %v", err)
	}
	if calls != 0 {
		t.Errorf("invalid form was sent")
	}
	if c.Status() != StatusError {
		t.Errorf("status = %v, want error", c.Status())
	}
}

func TestController_RejectsWhileSubmitting(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	sub := submitFunc(func(context.Context, Form) error {
		close(started)
		<-release
		return nil
	})

	c := NewController(sub)
	fill(t, c, validForm())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Submit(context.Background())
	}()
	<-started

	if c.Status() != StatusSubmitting {
		t.Errorf("status = %v, want submitting", c.Status())
	}
	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	wg.Wait()
	if c.Status() != StatusSuccess || c.Banner() != SuccessMessage {
		t.Errorf("status = %v, banner = %q", c.Status(), c.Banner())
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		s      Status
		name   string
		banner string
	}{
		{StatusIdle, "idle", ""},
		{StatusSubmitting, "submitting", ""},
		{StatusSuccess, "success", SuccessMessage},
		{StatusError, "error", ErrorMessage},
	}
	for _, tt := range tests {
		if tt.s.String() != tt.name || tt.s.Banner() != tt.banner {
			t.Errorf("%d: got %q / %q", tt.s, tt.s.String(), tt.s.Banner())
		}
	}
}

type submitFunc func(context.Context, Form) error

func (f submitFunc) Submit(ctx context.Context, form Form) error { return f(ctx, form) }
