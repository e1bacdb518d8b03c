package app

import (
	"errors"
	"sync"
)

// ErrBusy — такая же мутация уже в полёте.
var ErrBusy = errors.New("операция уже выполняется")

// ScopeLimiter не даёт запустить две одинаковые мутации одновременно —
// слой данных дублирует то, что интерфейс делает блокировкой кнопки.
type ScopeLimiter struct {
	mu   sync.Mutex
	busy map[string]bool
}

func NewScopeLimiter() *ScopeLimiter {
	return &ScopeLimiter{busy: make(map[string]bool)}
}

// TryLock захватывает скоуп без ожидания; false — скоуп занят.
func (l *ScopeLimiter) TryLock(scope string) (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy[scope] {
		return nil, false
	}
	l.busy[scope] = true
	return func() {
		l.mu.Lock()
		delete(l.busy, scope)
		l.mu.Unlock()
	}, true
}
