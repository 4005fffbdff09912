package reviewsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"stayhub/internal/adapters/reviewsapi"
	"stayhub/internal/domain"
)

func TestClient_ListReviews(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/properties/1/reviews" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]domain.Review{{ID: "rev1", Rating: 5}})
	}))
	defer ts.Close()

	cl, err := reviewsapi.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.ListReviews(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != "rev1" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_SubmitReview_NoRetryOnFailure(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Rating must be between 1 and 5"}`))
	}))
	defer ts.Close()

	cl, _ := reviewsapi.New(ts.URL, 100)
	_, err := cl.SubmitReview(context.Background(), "1", domain.NewReview{Rating: 9})

	var se *reviewsapi.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusBadRequest || se.Message != "Rating must be between 1 and 5" {
		t.Fatalf("unexpected error %+v", se)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected exactly one call, got %d", n)
	}
}

func TestClient_GetProperty_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, _ := reviewsapi.New(ts.URL, 100)
	_, err := cl.GetProperty(context.Background(), "1")
	if !errors.Is(err, reviewsapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNew_RejectsBadBase(t *testing.T) {
	if _, err := reviewsapi.New("localhost", 1); err == nil {
		t.Fatalf("expected error for base without scheme")
	}
}
