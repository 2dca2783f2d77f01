package ghapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const marker = "<!-- docdrift-report -->"

func testClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New("token")
	c.BaseURL = srv.URL
	return c
}

func TestUpsertByMarkerCreates(t *testing.T) {
	var created string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/docs/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Comment{{ID: 1, Body: "unrelated"}})
	})
	mux.HandleFunc("POST /repos/octo/docs/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		var in Comment
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Error(err)
		}
		created = in.Body
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Comment{ID: 2, Body: in.Body})
	})
	c := testClient(t, mux)

	got, err := c.UpsertByMarker(context.Background(), "octo/docs", 7, marker, marker+"\nreport")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 2 || created != marker+"\nreport" {
		t.Errorf("got %+v, created %q", got, created)
	}
}

func TestUpsertByMarkerUpdates(t *testing.T) {
	var updated string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/docs/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Comment{
			{ID: 1, Body: "unrelated"},
			{ID: 9, Body: marker + "\nold report"},
		})
	})
	mux.HandleFunc("PATCH /repos/octo/docs/issues/comments/9", func(w http.ResponseWriter, r *http.Request) {
		var in Comment
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Error(err)
		}
		updated = in.Body
		json.NewEncoder(w).Encode(Comment{ID: 9, Body: in.Body})
	})
	c := testClient(t, mux)

	got, err := c.UpsertByMarker(context.Background(), "octo/docs", 7, marker, marker+"\nnew report")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != 9 || updated != marker+"\nnew report" {
		t.Errorf("got %+v, updated %q", got, updated)
	}
}

func TestAuthAndErrorStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/docs/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("got auth %q", r.Header.Get("Authorization"))
		}
		http.Error(w, `{"message":"rate limited"}`, http.StatusForbidden)
	})
	c := testClient(t, mux)

	if _, err := c.ListComments(context.Background(), "octo/docs", 7); err == nil {
		t.Fatal("expected an error for a non-2xx status")
	}
}
