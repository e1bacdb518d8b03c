package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Spok95/school-admin-client/internal/metrics"
)

type HTTPServer struct {
	srv *http.Server
}

// StartHTTP поднимает служебный сервер: /healthz — доступность школьного
// бэкенда, /metrics — prometheus.
func StartHTTP(ctx context.Context, addr, backendURL string) *HTTPServer {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, backendURL, nil)
		if err != nil {
			http.Error(w, "bad backend url: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		// проверяем достижимость, а не авторизацию: любой ответ < 500 — живой
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			http.Error(w, "backend not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		_ = resp.Body.Close()
		if resp.StatusCode >= 500 {
			http.Error(w, "backend not ok: "+resp.Status, http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe() // закрываем аккуратно при Shutdown
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &HTTPServer{srv: srv}
}
