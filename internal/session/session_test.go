package session_test

import (
	"path/filepath"
	"testing"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/session"
)

func sess() models.Session {
	return models.Session{
		User:         &models.UserInfo{ID: 1, Username: "admin"},
		AccessToken:  "acc",
		RefreshToken: "ref",
	}
}

func TestEstablish_RehydrateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := session.NewService(path)
	s.Begin()
	if err := s.Establish(sess()); err != nil {
		t.Fatal(err)
	}

	// новый процесс: читает с диска то же самое
	s2 := session.NewService(path)
	s2.Rehydrate()
	if !s2.Authenticated() {
		t.Fatal("после Rehydrate ожидали авторизованную сессию")
	}
	if u := s2.User(); u == nil || u.Username != "admin" {
		t.Fatalf("восстановлен не тот пользователь: %+v", u)
	}
	if s2.AccessToken() != "acc" {
		t.Fatal("восстановлен не тот токен")
	}
}

func TestLogout_ThenRehydrateAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := session.NewService(path)
	if err := s.Establish(sess()); err != nil {
		t.Fatal(err)
	}
	s.Logout()

	s2 := session.NewService(path)
	s2.Rehydrate()
	if s2.Authenticated() || s2.User() != nil {
		t.Fatal("после Logout диск чист, Rehydrate должен оставить anonymous")
	}
}

func TestRehydrate_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := session.NewService(path)
	s.Rehydrate()
	s.Rehydrate()
	if s.Authenticated() {
		t.Fatal("без файла сессии быть не должно")
	}
}

func TestEstablish_RejectsPartialSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := session.NewService(path)

	partial := sess()
	partial.RefreshToken = ""
	if err := s.Establish(partial); err == nil {
		t.Fatal("частичная сессия не должна сохраняться")
	}
	if s.Authenticated() {
		t.Fatal("после отказа сессии быть не должно")
	}
}

func TestExpire_FlagReadOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := session.NewService(path)
	if err := s.Establish(sess()); err != nil {
		t.Fatal(err)
	}

	s.Expire()
	if s.Authenticated() {
		t.Fatal("Expire должен снять сессию")
	}
	if !s.TakeExpired() {
		t.Fatal("маркер истечения должен читаться")
	}
	if s.TakeExpired() {
		t.Fatal("маркер читается ровно один раз")
	}

	// повторный Expire на пустой сессии маркер не возвращает
	s.Expire()
	if s.TakeExpired() {
		t.Fatal("Expire без сессии — no-op")
	}
}

func TestLogin_LifecycleFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := session.NewService(path)

	s.Begin()
	if !s.Loading() {
		t.Fatal("после Begin ожидали loading=true")
	}
	s.Reject("Не удалось войти")
	if s.Loading() || s.Err() == "" {
		t.Fatal("после Reject loading снят, ошибка сохранена")
	}
	if err := s.Establish(sess()); err != nil {
		t.Fatal(err)
	}
	if s.Err() != "" {
		t.Fatal("успешный вход стирает ошибку")
	}
}
