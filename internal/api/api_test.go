package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/session"
	"github.com/Spok95/school-admin-client/internal/transport"
	"go.uber.org/zap"
)

func client(t *testing.T, h http.HandlerFunc) (*transport.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	sess := session.NewService(filepath.Join(t.TempDir(), "session.json"))
	return transport.New(srv.URL, sess, zap.NewNop()), srv
}

func TestListAttendances_FilterSerialization(t *testing.T) {
	var query string
	c, _ := client(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := api.ListAttendances(context.Background(), c, map[string]string{
		"student__section": "5",
		"date":             "", // пустое значение не отправляется
		"unknown":          "x", // нераспознанный ключ не отправляется
	})
	if err != nil {
		t.Fatal(err)
	}
	if query != "student__section=5" {
		t.Fatalf("ожидали student__section=5, получили %q", query)
	}
}

func TestListGrades_UnwrapsEnvelope(t *testing.T) {
	c, _ := client(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"1-А"}]}`))
	})

	grades, err := api.ListGrades(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	if len(grades) != 1 || grades[0].Name != "1-А" {
		t.Fatalf("конверт data должен сниматься: %+v", grades)
	}
}

func TestListGrades_BarePayload(t *testing.T) {
	c, _ := client(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":2,"name":"2-Б"}]`))
	})

	grades, err := api.ListGrades(context.Background(), c)
	if err != nil {
		t.Fatal(err)
	}
	if len(grades) != 1 || grades[0].ID != 2 {
		t.Fatalf("payload без конверта читается как есть: %+v", grades)
	}
}

func TestUpdateActivity_OmitsUnchangedImage(t *testing.T) {
	var hadImage bool
	var contentType string
	c, _ := client(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart не разобрался: %v", err)
		}
		_, _, err := r.FormFile("image")
		hadImage = err == nil
		_, _ = w.Write([]byte(`{"id":1,"title":"день открытых дверей","description":"d"}`))
	})

	// картинка не менялась (Image=nil) — поля image в форме быть не должно
	_, err := api.UpdateActivity(context.Background(), c, 1, api.ActivityForm{
		Title:       "день открытых дверей",
		Description: "d",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		t.Fatalf("запись активности идёт multipart, получили %q", contentType)
	}
	if hadImage {
		t.Fatal("неизменённая картинка не должна отправляться")
	}
}

func TestCreateActivity_SendsNewImage(t *testing.T) {
	var filename string
	c, _ := client(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart не разобрался: %v", err)
		}
		if _, hdr, err := r.FormFile("image"); err == nil {
			filename = hdr.Filename
		}
		_, _ = w.Write([]byte(`{"id":2,"title":"t","description":"d"}`))
	})

	_, err := api.CreateActivity(context.Background(), c, api.ActivityForm{
		Title:       "t",
		Description: "d",
		Image:       &api.Upload{Filename: "cover.jpg", Content: strings.NewReader("jpegdata")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if filename != "cover.jpg" {
		t.Fatalf("новый файл должен уйти полем image, получили %q", filename)
	}
}

func TestDeleteStudent_NoBody(t *testing.T) {
	var method, path string
	c, _ := client(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := api.DeleteStudent(context.Background(), c, 9); err != nil {
		t.Fatal(err)
	}
	if method != http.MethodDelete || path != "/api/users/students/9" {
		t.Fatalf("ожидали DELETE /api/users/students/9, получили %s %s", method, path)
	}
}
