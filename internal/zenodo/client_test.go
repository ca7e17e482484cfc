package zenodo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, 5*time.Second, nil)
}

func writeDeposition(t *testing.T, w http.ResponseWriter, dep Deposition) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(dep); err != nil {
		t.Fatalf("encode deposition: %v", err)
	}
}

func TestGetDepositionPublished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/records/42/versions/latest" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		writeDeposition(t, w, Deposition{ID: 42, RecordID: 42, Submitted: true})
	}))
	defer srv.Close()

	dep, err := testClient(srv).GetDeposition(context.Background(), "tok", 42)
	if err != nil {
		t.Fatalf("GetDeposition: %v", err)
	}
	if dep.RecordID != 42 || !dep.Submitted {
		t.Errorf("deposition = %+v", dep)
	}
}

func TestGetDepositionDraftFallback(t *testing.T) {
	var draftHit bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/records/7/versions/latest":
			// unsubmitted drafts answer 404 on the published-record endpoint
			http.Error(w, `{"status": 404}`, http.StatusNotFound)
		case "/deposit/depositions/7":
			draftHit = true
			writeDeposition(t, w, Deposition{ID: 7, RecordID: 7, Submitted: false})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	dep, err := testClient(srv).GetDeposition(context.Background(), "tok", 7)
	if err != nil {
		t.Fatalf("GetDeposition: %v", err)
	}
	if !draftHit {
		t.Error("draft endpoint was not consulted after 404")
	}
	if dep.Submitted {
		t.Error("draft reported as submitted")
	}
}

func TestGetDepositionNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := testClient(srv).GetDeposition(context.Background(), "tok", 9)
	if err == nil {
		t.Fatal("expected error for missing deposition")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not-found message", err)
	}
}

func TestGetDepositionServerErrorIsNotFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/records/3/versions/latest" {
			t.Fatalf("fallback attempted after non-404 failure: %s", r.URL.Path)
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv).GetDeposition(context.Background(), "tok", 3)
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("error = %v, want *OpError", err)
	}
	if opErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", opErr.Status)
	}
}

func TestCreateDeposition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/deposit/depositions" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "{}" {
			t.Errorf("body = %q, want empty object", body)
		}
		writeDeposition(t, w, Deposition{
			ID:       10,
			RecordID: 10,
			Links:    DepositionLinks{Bucket: "https://bucket/10"},
			Metadata: DepositionMetadata{PrereserveDOI: &PrereserveDOI{DOI: "10.5281/zenodo.10"}},
		})
	}))
	defer srv.Close()

	dep, err := testClient(srv).CreateDeposition(context.Background(), "tok")
	if err != nil {
		t.Fatalf("CreateDeposition: %v", err)
	}
	if dep.Metadata.PrereserveDOI.DOI != "10.5281/zenodo.10" {
		t.Errorf("prereserved DOI = %+v", dep.Metadata.PrereserveDOI)
	}
}

func TestUpdateMetadataWrapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/deposit/depositions/4" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]DepositionMetadata
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		meta, ok := payload["metadata"]
		if !ok {
			t.Fatal("payload missing metadata wrapper")
		}
		if meta.UploadType != "poster" {
			t.Errorf("upload_type = %q", meta.UploadType)
		}
		writeDeposition(t, w, Deposition{ID: 4, RecordID: 4, Metadata: meta})
	}))
	defer srv.Close()

	echo, err := testClient(srv).UpdateMetadata(context.Background(), "tok", 4, DepositionMetadata{
		Title:      "A Poster",
		UploadType: "poster",
	})
	if err != nil {
		t.Fatalf("UpdateMetadata: %v", err)
	}
	if echo.Metadata.Title != "A Poster" {
		t.Errorf("echoed title = %q", echo.Metadata.Title)
	}
}

func TestUploadFile(t *testing.T) {
	var uploaded []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/bucket/poster.json" {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/octet-stream" {
			t.Errorf("Content-Type = %q", ct)
		}
		uploaded, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := testClient(srv).UploadFile(context.Background(), "tok", srv.URL+"/bucket", "poster.json", []byte(`{"doi":"x"}`))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if string(uploaded) != `{"doi":"x"}` {
		t.Errorf("uploaded body = %q", uploaded)
	}
}

func TestOpErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv).ListDepositions(context.Background(), "tok")
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("error = %v, want *OpError", err)
	}
	if opErr.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d", opErr.Status)
	}
	if !strings.Contains(opErr.Body, "rate limited") {
		t.Errorf("body = %q, want remote diagnostic preserved", opErr.Body)
	}
}
