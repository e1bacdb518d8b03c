package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Service хранит текущую сессию и дублирует её в файл:
// запись — только целиком, удаление — только целиком,
// поэтому частичных состояний на диске не бывает.
type Service struct {
	mu      sync.Mutex
	path    string
	cur     models.Session
	loading bool
	err     string
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// Rehydrate читает сохранённую сессию с диска. Идемпотентна,
// вызывается один раз на старте процесса, но повторный вызов безопасен.
func (s *Service) Rehydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return
	}
	if !sess.Complete() {
		// битый или частичный файл — игнорируем
		return
	}
	s.cur = sess
}

// Begin — вход начат (login в полёте).
func (s *Service) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

// Establish — успешный вход: сессия в памяти и на диске.
func (s *Service) Establish(sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if !sess.Complete() {
		s.err = "Сервер вернул неполную сессию"
		return fmt.Errorf("session: неполная сессия (user/access/refresh)")
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	s.cur = sess
	s.err = ""
	return nil
}

// Reject — вход не удался.
func (s *Service) Reject(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = msg
}

// Logout синхронно чистит память и диск.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Expire — серверная инвалидация (401): как Logout, плюс durable-маркер,
// который презентационный слой читает один раз.
func (s *Service) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cur.Complete() {
		// сессия уже снята параллельным 401 — повторно не помечаем
		return
	}
	s.clearLocked()
	_ = os.WriteFile(s.expiredPath(), []byte("1"), 0o600)
}

// TakeExpired возвращает и сбрасывает маркер «сессия завершена сервером».
func (s *Service) TakeExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := os.Stat(s.expiredPath()); err != nil {
		return false
	}
	_ = os.Remove(s.expiredPath())
	return true
}

func (s *Service) clearLocked() {
	s.cur = models.Session{}
	s.loading = false
	s.err = ""
	_ = os.Remove(s.path)
}

func (s *Service) expiredPath() string { return s.path + ".expired" }

func (s *Service) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.AccessToken
}

func (s *Service) User() *models.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.User
}

func (s *Service) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Complete()
}

func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Service) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// TokenExpiry достаёт exp из access-токена без проверки подписи —
// подпись проверяет бэкенд, клиенту нужен только срок жизни.
func (s *Service) TokenExpiry() (time.Time, bool) {
	token := s.AccessToken()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
