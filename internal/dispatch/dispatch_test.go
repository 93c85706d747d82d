// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogFallbacks(t *testing.T) {
	ctx := context.Background()
	if err := (LogMailer{}).Send(ctx, Email{To: []string{"x@example.com"}, Subject: "hi"}); err != nil {
		t.Errorf("LogMailer.Send: %v", err)
	}
	if err := (LogAudience{}).Subscribe(ctx, "x@example.com", "footer"); err != nil {
		t.Errorf("LogAudience.Subscribe: %v", err)
	}
}

func TestResend_Send(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody resendEmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer server.Close()

	client := NewResend("re_test_key", "aud_1")
	client.baseURL = server.URL

	err := client.Send(context.Background(), Email{
		From:    "OXONN Technologies <noreply@oxonn-tech.com>",
		To:      []string{"contact@oxonn-tech.com"},
		ReplyTo: "visitor@example.com",
		Subject: "[DEMO] New inquiry",
		Text:    "body",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotPath != "/emails" {
		t.Errorf("path = %q, want /emails", gotPath)
	}
	if gotAuth != "Bearer re_test_key" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody.ReplyTo != "visitor@example.com" {
		t.Errorf("reply_to = %q", gotBody.ReplyTo)
	}
	if len(gotBody.To) != 1 || gotBody.To[0] != "contact@oxonn-tech.com" {
		t.Errorf("to = %v", gotBody.To)
	}
}

func TestResend_Subscribe(t *testing.T) {
	var gotPath string
	var gotBody resendContactRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewResend("re_test_key", "aud_1")
	client.baseURL = server.URL

	if err := client.Subscribe(context.Background(), "reader@example.com", "footer"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if gotPath != "/audiences/aud_1/contacts" {
		t.Errorf("path = %q", gotPath)
	}
	if gotBody.Email != "reader@example.com" {
		t.Errorf("email = %q", gotBody.Email)
	}
	if gotBody.Unsubscribed {
		t.Error("new contact marked unsubscribed")
	}
}

func TestResend_SubscribeWithoutAudience(t *testing.T) {
	client := NewResend("re_test_key", "")
	if err := client.Subscribe(context.Background(), "reader@example.com", ""); err == nil {
		t.Error("expected error with no audience configured")
	}
}

func TestResend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer server.Close()

	client := NewResend("re_test_key", "aud_1")
	client.baseURL = server.URL

	err := client.Send(context.Background(), Email{To: []string{"x@example.com"}})
	if err == nil {
		t.Fatal("expected error on 422 response")
	}
}
