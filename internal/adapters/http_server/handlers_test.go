package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	server "stayhub/internal/adapters/http_server"
	"stayhub/internal/app"
	"stayhub/internal/domain"
	"stayhub/internal/seed"
	"stayhub/internal/storage/memory"
)

type fixture struct {
	h     http.Handler
	store *memory.ReviewStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	d, err := seed.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := memory.NewReviewStore(d.ReviewsByProperty())
	srv := server.New(5 * time.Second)
	srv.MountHandlers(&server.Handlers{
		Reviews:    app.NewReviewService(store),
		Properties: app.NewPropertyQueryService(memory.NewCatalog(d.Properties), nil, time.Minute),
		Bookings:   app.NewBookingService(memory.NewBookingStore()),
	})
	return fixture{h: srv.Mux(), store: store}
}

func (f fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	f.h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode: %v (body %q)", err, rr.Body.String())
	}
	return v
}

func TestListReviews_SeededProperty(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodGet, "/properties/1/reviews", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if rr.Header().Get("ETag") == "" {
		t.Fatalf("expected ETag header")
	}
	rs := decode[[]domain.Review](t, rr)
	if len(rs) != 3 || rs[0].ID != "rev1" {
		t.Fatalf("unexpected reviews %+v", rs)
	}
	if st := domain.Aggregate(rs); st.Count != 3 || st.MeanRating != 4.7 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestListReviews_UnknownPropertyIsEmptyArray(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodGet, "/properties/42/reviews", nil)
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected 200 [], got %d %q", rr.Code, rr.Body.String())
	}
}

func TestListReviews_NotModified(t *testing.T) {
	f := newFixture(t)
	first := f.do(t, http.MethodGet, "/properties/1/reviews", nil)

	req := httptest.NewRequest(http.MethodGet, "/properties/1/reviews", nil)
	req.Header.Set("If-None-Match", first.Header().Get("ETag"))
	rr := httptest.NewRecorder()
	f.h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rr.Code)
	}
}

func TestListReviews_MalformedID(t *testing.T) {
	f := newFixture(t)
	for _, path := range []string{"/properties/a,b/reviews", "/properties/%20/reviews", "/properties//reviews"} {
		rr := f.do(t, http.MethodGet, path, nil)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rr.Code)
		}
		if msg := decode[map[string]string](t, rr)["message"]; msg != app.MsgInvalidPropertyID {
			t.Fatalf("%s: unexpected message %q", path, msg)
		}
	}
}

func TestCreateReview_UnseededProperty(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodPost, "/properties/9/reviews", map[string]any{
		"userId": "user-1", "userName": "Ana", "rating": 5, "comment": "Great",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rr.Code, rr.Body.String())
	}
	created := decode[domain.Review](t, rr)
	if created.ID == "" || created.Date == "" {
		t.Fatalf("missing server fields: %+v", created)
	}

	list := decode[[]domain.Review](t, f.do(t, http.MethodGet, "/properties/9/reviews", nil))
	if len(list) != 1 || list[0].ID != created.ID || list[0].Date != created.Date {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestCreateReview_KeepsAnyAvatar(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodPost, "/properties/1/reviews", map[string]any{
		"userId": "u", "userName": "n", "rating": 5, "comment": "c", "userAvatar": "avatar.png",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rr.Code, rr.Body.String())
	}
	created := decode[domain.Review](t, rr)
	if created.UserAvatar == nil || *created.UserAvatar != "avatar.png" {
		t.Fatalf("avatar not stored: %+v", created)
	}

	list := decode[[]domain.Review](t, f.do(t, http.MethodGet, "/properties/1/reviews", nil))
	if list[0].UserAvatar == nil || *list[0].UserAvatar != "avatar.png" {
		t.Fatalf("avatar not returned: %+v", list[0])
	}
}

func TestCreateReview_RejectsWithoutMutation(t *testing.T) {
	cases := []struct {
		name string
		body any
		msg  string
	}{
		{"rating zero", map[string]any{"userId": "u", "userName": "n", "rating": 0, "comment": "c"}, app.MsgMissingFields},
		{"rating six", map[string]any{"userId": "u", "userName": "n", "rating": 6, "comment": "c"}, app.MsgRatingRange},
		{"missing comment", map[string]any{"userId": "u", "userName": "n", "rating": 3}, app.MsgMissingFields},
		{"not json", "{", "Invalid request body"},
		{"fractional rating", `{"userId":"u","userName":"n","rating":4.5,"comment":"c"}`, "Invalid request body"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			rr := f.do(t, http.MethodPost, "/properties/1/reviews", c.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if msg := decode[map[string]any](t, rr)["message"]; msg != c.msg {
				t.Fatalf("unexpected message %v", msg)
			}
			rs, _ := f.store.ListReviews(context.Background(), "1")
			if len(rs) != 3 {
				t.Fatalf("store mutated: %d reviews", len(rs))
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		method, path, allow string
	}{
		{http.MethodDelete, "/properties/1/reviews", "GET, POST"},
		{http.MethodPut, "/properties/1/reviews", "GET, POST"},
		{http.MethodDelete, "/properties/1", "GET"},
		{http.MethodPost, "/properties/1", "GET"},
		{http.MethodPost, "/properties/1/reviews/stats", "GET"},
		{http.MethodGet, "/bookings", "POST"},
	}
	for _, c := range cases {
		rr := f.do(t, c.method, c.path, nil)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405, got %d", c.method, c.path, rr.Code)
		}
		if got := rr.Header().Get("Allow"); got != c.allow {
			t.Fatalf("%s %s: Allow %q, want %q", c.method, c.path, got, c.allow)
		}
		if body := rr.Body.String(); body != "Method "+c.method+" Not Allowed" {
			t.Fatalf("%s %s: body %q", c.method, c.path, body)
		}
	}
}

func TestGetProperty(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodGet, "/properties/2", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if p := decode[domain.Property](t, rr); p.Title != "Cozy Family House" {
		t.Fatalf("unexpected property %+v", p)
	}

	rr = f.do(t, http.MethodGet, "/properties/77", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if msg := decode[map[string]string](t, rr)["message"]; msg != "Property not found" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestReviewStats(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodGet, "/properties/2/reviews/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if st := decode[domain.AggregateStats](t, rr); st.Count != 2 || st.MeanRating != 4.5 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodPost, "/bookings", map[string]string{
		"propertyId": "1", "firstName": "Ana", "lastName": "Lima", "email": "ana@example.com",
		"phoneNumber": "555", "cardNumber": "4111 1111 1111 1111", "expirationDate": "01/30",
		"cvv": "999", "billingAddress": "1 Main St",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", rr.Code, rr.Body.String())
	}
	if msg := decode[map[string]string](t, rr)["message"]; msg != app.MsgBookingConfirmed {
		t.Fatalf("unexpected message %q", msg)
	}

	rr = f.do(t, http.MethodPost, "/bookings", map[string]string{"firstName": "Ana"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := decode[struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}](t, rr)
	if body.Message != app.MsgFixFields || body.Errors["email"] != "Email is required" || body.Errors["firstName"] != "" {
		t.Fatalf("unexpected body %+v", body)
	}
}
