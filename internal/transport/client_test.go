package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/session"
	"github.com/Spok95/school-admin-client/internal/transport"
	"go.uber.org/zap"
)

func newSession(t *testing.T) *session.Service {
	t.Helper()
	s := session.NewService(filepath.Join(t.TempDir(), "session.json"))
	err := s.Establish(models.Session{
		User:         &models.UserInfo{ID: 1, Username: "admin"},
		AccessToken:  "token-123",
		RefreshToken: "ref",
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestJSON_AttachesBearer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("ожидали X-Request-ID на каждом запросе")
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := transport.New(srv.URL, newSession(t), zap.NewNop())
	if _, err := c.JSON(context.Background(), http.MethodGet, "/api/school/grades", nil, nil); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer token-123" {
		t.Fatalf("ожидали bearer-заголовок, получили %q", got)
	}
}

func TestJSON_AnonymousWithoutHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	anon := session.NewService(filepath.Join(t.TempDir(), "session.json"))
	c := transport.New(srv.URL, anon, zap.NewNop())
	if _, err := c.JSON(context.Background(), http.MethodGet, "/api/school/grades", nil, nil); err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("без сессии заголовка Authorization быть не должно, получили %q", got)
	}
}

// Сценарий из жизни: логин → 401 от любого вызова → сессия снята,
// маркер выставлен, следующий запрос уходит без Authorization.
func TestUnauthorized_InvalidatesSession(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get("Authorization"))
		if len(headers) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"token expired"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	sess := newSession(t)
	c := transport.New(srv.URL, sess, zap.NewNop())

	_, err := c.JSON(context.Background(), http.MethodGet, "/api/users/students", nil, nil)
	var he *transport.HTTPError
	if !errors.As(err, &he) || he.Status != http.StatusUnauthorized {
		t.Fatalf("ожидали HTTPError 401, получили %v", err)
	}

	if sess.Authenticated() {
		t.Fatal("401 должен снять сессию")
	}
	if !sess.TakeExpired() {
		t.Fatal("401 должен выставить durable-маркер")
	}

	if _, err := c.JSON(context.Background(), http.MethodGet, "/api/users/students", nil, nil); err != nil {
		t.Fatal(err)
	}
	if headers[1] != "" {
		t.Fatalf("после снятия сессии запрос должен идти без Authorization, получили %q", headers[1])
	}
}

func TestNon2xx_ReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"non_field_errors":["дата занята"]}`))
	}))
	defer srv.Close()

	c := transport.New(srv.URL, newSession(t), zap.NewNop())
	_, err := c.JSON(context.Background(), http.MethodPost, "/api/landingpage/visits-dates", nil, map[string]string{"date": "x"})

	var he *transport.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("ожидали *HTTPError, получили %T", err)
	}
	if he.Status != http.StatusBadRequest || len(he.Body) == 0 {
		t.Fatalf("ошибка должна нести статус и тело: %+v", he)
	}
}

func TestQueryString_Appended(t *testing.T) {
	var raw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := transport.New(srv.URL, newSession(t), zap.NewNop())
	q := url.Values{"section": {"5"}}
	if _, err := c.JSON(context.Background(), http.MethodGet, "/api/school/schedules", q, nil); err != nil {
		t.Fatal(err)
	}
	if raw != "section=5" {
		t.Fatalf("ожидали section=5, получили %q", raw)
	}
}
