package store_test

import (
	"errors"
	"testing"

	"github.com/Spok95/school-admin-client/internal/store"
	"github.com/Spok95/school-admin-client/internal/transport"
)

func TestMessage_PreferenceOrder(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail первее всего", `{"detail":"нет прав","message":"x","non_field_errors":["y"]}`, "нет прав"},
		{"затем message", `{"message":"дубликат","non_field_errors":["y"]}`, "дубликат"},
		{"затем non_field_errors", `{"non_field_errors":["дата занята"]}`, "дата занята"},
		{"иначе запасной текст", `{"something":"else"}`, "Не удалось загрузить классы"},
		{"битое тело - запасной текст", `<html>`, "Не удалось загрузить классы"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &transport.HTTPError{Status: 400, Body: []byte(tc.body)}
			if got := store.Message(err, "Не удалось загрузить классы"); got != tc.want {
				t.Fatalf("получили %q, ожидали %q", got, tc.want)
			}
		})
	}
}

func TestMessage_PlainError(t *testing.T) {
	got := store.Message(errors.New("connection refused"), "Не удалось войти")
	if got != "Не удалось войти" {
		t.Fatalf("сетевые ошибки сводятся к запасному тексту, получили %q", got)
	}
}
