package zenodo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestAuthorizeURL(t *testing.T) {
	o := NewOAuth("https://zenodo.org/", "client-id", "secret", "https://app.example/zenodo/callback", nil)
	raw := o.AuthorizeURL("user:poster")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Path != "/oauth/authorize" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("response_type") != "code" {
		t.Errorf("response_type = %q", q.Get("response_type"))
	}
	if q.Get("scope") != OAuthScope {
		t.Errorf("scope = %q", q.Get("scope"))
	}
	if q.Get("state") != "user:poster" {
		t.Errorf("state = %q", q.Get("state"))
	}
	if q.Get("client_secret") != "" {
		t.Error("client secret must never appear in the authorize URL")
	}
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth/token" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "authorization_code" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.PostForm.Get("code"); got != "abc123" {
			t.Errorf("code = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600}`))
	}))
	defer srv.Close()

	o := NewOAuth(srv.URL, "client-id", "secret", "https://app.example/cb", nil)
	pair, err := o.ExchangeCode(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if pair.AccessToken != "at" || pair.RefreshToken != "rt" || pair.ExpiresIn != 3600 {
		t.Errorf("pair = %+v", pair)
	}
}

func TestRefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q", got)
		}
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	o := NewOAuth(srv.URL, "client-id", "secret", "https://app.example/cb", nil)
	if _, err := o.Refresh(context.Background(), "dead-token"); err == nil {
		t.Fatal("expected error for rejected refresh")
	}
}
