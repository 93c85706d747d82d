// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"oxonnsite/internal/blog"
	"oxonnsite/internal/dispatch"
	"oxonnsite/internal/ratelimit"
	"oxonnsite/internal/validation"
)

// stubLimiter returns a fixed decision or error on every check.
type stubLimiter struct {
	result ratelimit.Result
	err    error
	keys   []string
}

func (s *stubLimiter) Check(ctx context.Context, key string) (ratelimit.Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

func allowAll() *stubLimiter {
	return &stubLimiter{result: ratelimit.Result{Allowed: true}}
}

// recordingMailer captures sent emails and optionally fails.
type recordingMailer struct {
	sent []dispatch.Email
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, email dispatch.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, email)
	return nil
}

// recordingAudience captures subscriptions and optionally fails.
type recordingAudience struct {
	emails []string
	err    error
}

func (a *recordingAudience) Subscribe(ctx context.Context, email, source string) error {
	if a.err != nil {
		return a.err
	}
	a.emails = append(a.emails, email)
	return nil
}

func newTestForms(limiter ratelimit.Limiter, mailer dispatch.Mailer, audience dispatch.Audience) *Forms {
	return NewForms(limiter, mailer, audience, nil, nil,
		"ops@oxonn-tech.com", "noreply@oxonn-tech.com")
}

func contactPayload() validation.ContactForm {
	return validation.ContactForm{
		Name:            "Jordan Reyes",
		Email:           "jordan@fund.example.com",
		Message:         "We would like a walkthrough of the risk platform.",
		Company:         "Meridian Capital",
		ServiceInterest: "risk",
		InquiryType:     "demo",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestContact_Success(t *testing.T) {
	mailer := &recordingMailer{}
	limiter := allowAll()
	h := newTestForms(limiter, mailer, &recordingAudience{})

	w := postJSON(t, h.Contact, "/api/contact", contactPayload())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	body := decodeResponse(t, w)
	if body["success"] != true || body["message"] != "Message received" {
		t.Errorf("body = %v", body)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("emails sent = %d, want notification + acknowledgment", len(mailer.sent))
	}
	notification, ack := mailer.sent[0], mailer.sent[1]
	if notification.To[0] != "ops@oxonn-tech.com" {
		t.Errorf("notification to = %v", notification.To)
	}
	if notification.ReplyTo != "jordan@fund.example.com" {
		t.Errorf("notification reply-to = %q", notification.ReplyTo)
	}
	if want := "[DEMO] New inquiry from Jordan Reyes - Meridian Capital"; notification.Subject != want {
		t.Errorf("subject = %q, want %q", notification.Subject, want)
	}
	if ack.To[0] != "jordan@fund.example.com" {
		t.Errorf("acknowledgment to = %v", ack.To)
	}

	if len(limiter.keys) != 1 || !strings.HasPrefix(limiter.keys[0], "contact:") {
		t.Errorf("limiter keys = %v, want one contact-scoped key", limiter.keys)
	}
}

func TestContact_ValidationFailure(t *testing.T) {
	mailer := &recordingMailer{}
	h := newTestForms(allowAll(), mailer, &recordingAudience{})

	form := contactPayload()
	form.Name = "J"
	w := postJSON(t, h.Contact, "/api/contact", form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeResponse(t, w)
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v", body["error"])
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields missing: %v", body)
	}
	if fields["name"] != "Name must be at least 2 characters" {
		t.Errorf("fields.name = %v", fields["name"])
	}
	if len(mailer.sent) != 0 {
		t.Error("email dispatched despite validation failure")
	}
}

func TestContact_HoneypotRejected(t *testing.T) {
	mailer := &recordingMailer{}
	h := newTestForms(allowAll(), mailer, &recordingAudience{})

	form := contactPayload()
	form.Honeypot = "gotcha"
	w := postJSON(t, h.Contact, "/api/contact", form)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if len(mailer.sent) != 0 {
		t.Error("email dispatched for a honeypot submission")
	}
}

func TestContact_MalformedBody(t *testing.T) {
	h := newTestForms(allowAll(), &recordingMailer{}, &recordingAudience{})

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Contact(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeResponse(t, w); body["error"] != "Invalid request body" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestContact_RateLimited(t *testing.T) {
	mailer := &recordingMailer{}
	limiter := &stubLimiter{result: ratelimit.Result{Allowed: false, RetryAfter: 30 * time.Second}}
	h := newTestForms(limiter, mailer, &recordingAudience{})

	w := postJSON(t, h.Contact, "/api/contact", contactPayload())

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "30" {
		t.Errorf("Retry-After = %q, want 30", got)
	}
	if body := decodeResponse(t, w); body["error"] != "Too many requests. Please try again later." {
		t.Errorf("error = %v", body["error"])
	}
	if len(mailer.sent) != 0 {
		t.Error("email dispatched despite rate limit")
	}
}

// A limiter backend failure never blocks a legitimate submission.
func TestContact_LimiterFailureFailsOpen(t *testing.T) {
	mailer := &recordingMailer{}
	limiter := &stubLimiter{err: errors.New("redis down")}
	h := newTestForms(limiter, mailer, &recordingAudience{})

	w := postJSON(t, h.Contact, "/api/contact", contactPayload())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want fail-open 200", w.Code)
	}
	if len(mailer.sent) != 2 {
		t.Errorf("emails sent = %d, want 2", len(mailer.sent))
	}
}

func TestContact_MailerFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("provider 500")}
	h := newTestForms(allowAll(), mailer, &recordingAudience{})

	w := postJSON(t, h.Contact, "/api/contact", contactPayload())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeResponse(t, w); body["error"] != "Internal server error" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestNewsletter_Success(t *testing.T) {
	audience := &recordingAudience{}
	h := newTestForms(allowAll(), &recordingMailer{}, audience)

	w := postJSON(t, h.Newsletter, "/api/newsletter",
		validation.NewsletterForm{Email: "reader@example.com", Source: "footer"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	body := decodeResponse(t, w)
	if body["success"] != true || body["message"] != "Subscribed successfully" {
		t.Errorf("body = %v", body)
	}
	if len(audience.emails) != 1 || audience.emails[0] != "reader@example.com" {
		t.Errorf("subscribed = %v", audience.emails)
	}
}

func TestNewsletter_InvalidEmail(t *testing.T) {
	audience := &recordingAudience{}
	h := newTestForms(allowAll(), &recordingMailer{}, audience)

	w := postJSON(t, h.Newsletter, "/api/newsletter", validation.NewsletterForm{Email: "nope"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeResponse(t, w); body["error"] != "Please enter a valid email address" {
		t.Errorf("error = %v", body["error"])
	}
	if len(audience.emails) != 0 {
		t.Error("invalid email reached the audience provider")
	}
}

func TestNewsletter_AudienceFailure(t *testing.T) {
	audience := &recordingAudience{err: errors.New("provider down")}
	h := newTestForms(allowAll(), &recordingMailer{}, audience)

	w := postJSON(t, h.Newsletter, "/api/newsletter",
		validation.NewsletterForm{Email: "reader@example.com"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestNewsletter_RateLimitKeyIsScoped(t *testing.T) {
	limiter := allowAll()
	h := newTestForms(limiter, &recordingMailer{}, &recordingAudience{})

	postJSON(t, h.Newsletter, "/api/newsletter", validation.NewsletterForm{Email: "reader@example.com"})

	if len(limiter.keys) != 1 || !strings.HasPrefix(limiter.keys[0], "newsletter:") {
		t.Errorf("limiter keys = %v, want one newsletter-scoped key", limiter.keys)
	}
}

// fixedSource serves hand-built insight files for handler tests.
type fixedSource struct{ files []blog.File }

func (s fixedSource) List(ctx context.Context) ([]blog.File, error) { return s.files, nil }

func insightData(title, slug, category, date string) []byte {
	return []byte(fmt.Sprintf(
		"---\ntitle: %q\nslug: %s\ncategory: %s\npublishDate: %q\nstatus: published\n---\n\n## Overview\n\nbody\n",
		title, slug, category, date))
}

// newContentRouter wires the content handlers onto a router at a fixed clock.
func newContentRouter(t *testing.T) http.Handler {
	t.Helper()
	src := fixedSource{files: []blog.File{
		{Name: "a.md", Data: insightData("Alpha Signals", "alpha-signals", "quantitative-research", "2025-03-01")},
		{Name: "b.md", Data: insightData("Beta Exposure", "beta-exposure", "quantitative-research", "2025-04-01")},
		{Name: "c.md", Data: insightData("Value at Risk", "value-at-risk", "risk-management", "2025-05-01")},
	}}
	h := NewContent(blog.New(src, 0))
	h.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	r.Route("/api/insights", func(r chi.Router) {
		r.Get("/", h.ListInsights)
		r.Get("/slugs", h.InsightSlugs)
		r.Get("/{slug}", h.InsightBySlug)
		r.Get("/{slug}/related", h.RelatedInsights)
	})
	r.Get("/api/services", h.ListServices)
	r.Get("/api/services/{slug}", h.ServiceBySlug)
	r.Get("/api/team", h.Team)
	return r
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListInsights(t *testing.T) {
	router := newContentRouter(t)
	w := get(t, router, "/api/insights")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Posts []struct {
			Slug string `json:"slug"`
		} `json:"posts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Posts) != 3 {
		t.Fatalf("posts = %d, want 3", len(body.Posts))
	}
	if body.Posts[0].Slug != "value-at-risk" {
		t.Errorf("first = %q, want newest", body.Posts[0].Slug)
	}
}

func TestListInsights_CategoryFilter(t *testing.T) {
	router := newContentRouter(t)
	w := get(t, router, "/api/insights?category=risk-management")

	var body struct {
		Posts []struct {
			Slug string `json:"slug"`
		} `json:"posts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Posts) != 1 || body.Posts[0].Slug != "value-at-risk" {
		t.Errorf("filtered = %+v", body.Posts)
	}
}

func TestInsightBySlug(t *testing.T) {
	router := newContentRouter(t)

	w := get(t, router, "/api/insights/alpha-signals")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeResponse(t, w)
	if body["title"] != "Alpha Signals" {
		t.Errorf("title = %v", body["title"])
	}
	if _, ok := body["body"]; !ok {
		t.Error("rendered body missing from response")
	}

	if w := get(t, router, "/api/insights/no-such-post"); w.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d, want 404", w.Code)
	}
}

func TestRelatedInsights(t *testing.T) {
	router := newContentRouter(t)
	w := get(t, router, "/api/insights/alpha-signals/related")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Posts []struct {
			Slug string `json:"slug"`
		} `json:"posts"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Posts) != 1 || body.Posts[0].Slug != "beta-exposure" {
		t.Errorf("related = %+v, want same category minus current", body.Posts)
	}

	if w := get(t, router, "/api/insights/no-such-post/related"); w.Code != http.StatusNotFound {
		t.Errorf("unknown slug status = %d, want 404", w.Code)
	}
}

func TestInsightSlugs(t *testing.T) {
	router := newContentRouter(t)
	w := get(t, router, "/api/insights/slugs")

	var body struct {
		Slugs []string `json:"slugs"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	want := []string{"value-at-risk", "beta-exposure", "alpha-signals"}
	if len(body.Slugs) != len(want) {
		t.Fatalf("slugs = %v", body.Slugs)
	}
	for i, s := range want {
		if body.Slugs[i] != s {
			t.Errorf("slugs[%d] = %q, want %q", i, body.Slugs[i], s)
		}
	}
}

func TestServices(t *testing.T) {
	router := newContentRouter(t)

	w := get(t, router, "/api/services")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Services []struct {
			Slug string `json:"slug"`
		} `json:"services"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Services) == 0 {
		t.Fatal("no services returned")
	}

	single := get(t, router, "/api/services/"+body.Services[0].Slug)
	if single.Code != http.StatusOK {
		t.Errorf("service by slug status = %d", single.Code)
	}
	if w := get(t, router, "/api/services/no-such-service"); w.Code != http.StatusNotFound {
		t.Errorf("unknown service status = %d, want 404", w.Code)
	}
}

func TestTeam(t *testing.T) {
	router := newContentRouter(t)
	w := get(t, router, "/api/team")

	var body struct {
		Team []struct {
			ID string `json:"id"`
		} `json:"team"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	ids := make(map[string]bool)
	for _, m := range body.Team {
		ids[m.ID] = true
	}
	for _, id := range []string{"ceo", "cto"} {
		if !ids[id] {
			t.Errorf("team missing %q: %v", id, ids)
		}
	}
}

func TestOGImage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/og?title=Alpha+Signals&subtitle=Research", nil)
	w := httptest.NewRecorder()
	OGImage(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=86400") {
		t.Errorf("cache control = %q", cc)
	}

	cfg, err := png.DecodeConfig(w.Body)
	if err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
	if cfg.Width != 1200 || cfg.Height != 630 {
		t.Errorf("dimensions = %dx%d, want 1200x630", cfg.Width, cfg.Height)
	}
}
