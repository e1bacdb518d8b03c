package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Spok95/school-admin-client/internal/ctxutil"
	"github.com/Spok95/school-admin-client/internal/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sessioner — то, что транспорту нужно от сессии: токен перед каждым
// запросом и инвалидация по 401. Единственное место, где это делается;
// шлюзы ресурсов auth-логику не дублируют.
type Sessioner interface {
	AccessToken() string
	Expire()
}

type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, strings.TrimSpace(string(e.Body)))
}

type Client struct {
	base string
	hc   *http.Client
	sess Sessioner
	log  *zap.Logger
}

func New(base string, sess Sessioner, log *zap.Logger) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{},
		sess: sess,
		log:  log,
	}
}

// JSON выполняет запрос с JSON-телом (или без тела) и возвращает сырое
// тело ответа. Не-2xx превращается в *HTTPError, 401 дополнительно
// снимает сессию.
func (c *Client) JSON(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: marshal: %w", method, path, err)
		}
		rd = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, query, rd, "application/json")
}

// Multipart — для эндпоинтов с файлами (activities, programs).
func (c *Client) Multipart(ctx context.Context, method, path string, form *Form) ([]byte, error) {
	contentType, body, err := form.Encode()
	if err != nil {
		return nil, fmt.Errorf("%s %s: multipart: %w", method, path, err)
	}
	return c.do(ctx, method, path, nil, body, contentType)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.sess.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	fields := []zap.Field{
		zap.String("method", method), zap.String("path", path),
		zap.String("request_id", reqID),
	}
	if op, ok := ctxutil.Op(ctx); ok {
		fields = append(fields, zap.String("op", op))
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.ObserveRequest(resource, method, 0, time.Since(start))
		c.log.Debug("запрос не дошёл до бэкенда", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(resp.Body)
	metrics.ObserveRequest(resource, method, resp.StatusCode, time.Since(start))
	c.log.Debug("ответ бэкенда", append(fields, zap.Int("status", resp.StatusCode))...)

	if resp.StatusCode == http.StatusUnauthorized {
		metrics.SessionExpired.Inc()
		c.sess.Expire()
		return nil, &HTTPError{Status: resp.StatusCode, Body: raw}
	}
	if resp.StatusCode/100 != 2 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: raw}
	}
	return raw, nil
}

// resourceLabel — метка ресурса для метрик: третий сегмент пути
// (/api/school/grades/5 → grades).
func resourceLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 3 {
		return parts[2]
	}
	return path
}
