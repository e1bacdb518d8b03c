package app_test

import (
	"net/http"
	"testing"

	"github.com/Spok95/school-admin-client/internal/api"
)

func apiGradeCreate() api.GradeCreate {
	return api.GradeCreate{Name: "7-В", StudyStage: 2, StudyYear: 1}
}

// mux — минимальный бэкенд для сценариев список+создание классов.
func mux(t *testing.T) http.Handler {
	t.Helper()
	m := http.NewServeMux()
	m.HandleFunc("/api/school/grades", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":1,"name":"1-А"}]`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"id":7,"name":"7-В"}`))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return m
}
