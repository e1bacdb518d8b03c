// Package store — контейнеры состояния, по одному на ресурс бэкенда.
// Контейнер держит коллекцию, выбранную запись, флаги загрузки по
// семействам операций и последнюю ошибку; переходы детерминированы
// и выполняются только через методы жизненного цикла.
package store

import (
	"sync"

	"github.com/Spok95/school-admin-client/internal/metrics"
)

type Flags struct {
	List   bool
	One    bool
	Create bool
	Update bool
	Delete bool
	Bulk   bool
}

// Snapshot — копия состояния контейнера на момент вызова.
type Snapshot[T any] struct {
	Items    []T
	Selected *T
	Loading  Flags
	Err      string
	Filters  map[string]string
}

type Store[T any] struct {
	mu       sync.Mutex
	name     string
	id       func(T) int64
	items    []T
	selected *T
	loading  Flags
	err      string
	filters  map[string]string
	fence    uint64 // монотонный токен последнего запущенного list-fetch
}

// New создаёт контейнер; id извлекает идентификатор записи —
// по нему работают replace/remove.
func New[T any](name string, id func(T) int64) *Store[T] {
	return &Store[T]{name: name, id: id}
}

func (s *Store[T]) Name() string { return s.name }

// ---- list-fetch ----

// BeginList помечает начало загрузки списка и возвращает токен;
// результат с устаревшим токеном будет отброшен (последний запущенный
// запрос выигрывает, а не последний завершившийся).
func (s *Store[T]) BeginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.List = true
	s.err = ""
	s.fence++
	return s.fence
}

// ListFulfilled целиком заменяет коллекцию. Возвращает false, если
// результат устарел и был отброшен.
func (s *Store[T]) ListFulfilled(token uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.fence {
		metrics.StaleResponses.WithLabelValues(s.name).Inc()
		return false
	}
	s.loading.List = false
	s.items = items
	return true
}

func (s *Store[T]) ListRejected(token uint64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.fence {
		return
	}
	s.loading.List = false
	s.err = msg
}

// ---- fetch-one ----

func (s *Store[T]) BeginOne() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.One = true
	s.err = ""
}

func (s *Store[T]) OneFulfilled(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.One = false
	s.selected = &item
}

func (s *Store[T]) OneRejected(msg string) { s.reject(&s.loading.One, msg) }

// ---- create ----

func (s *Store[T]) BeginCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Create = true
	s.err = ""
}

// CreateFulfilled добавляет подтверждённую сервером запись в начало
// коллекции; повторной загрузки списка не требуется.
func (s *Store[T]) CreateFulfilled(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Create = false
	s.items = append([]T{item}, s.items...)
}

func (s *Store[T]) CreateRejected(msg string) { s.reject(&s.loading.Create, msg) }

// ---- update ----

func (s *Store[T]) BeginUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Update = true
	s.err = ""
}

func (s *Store[T]) UpdateFulfilled(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Update = false
	id := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			break
		}
	}
	if s.selected != nil && s.id(*s.selected) == id {
		s.selected = &item
	}
}

func (s *Store[T]) UpdateRejected(msg string) { s.reject(&s.loading.Update, msg) }

// ---- delete ----

func (s *Store[T]) BeginDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Delete = true
	s.err = ""
}

func (s *Store[T]) DeleteFulfilled(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Delete = false
	kept := s.items[:0]
	for _, it := range s.items {
		if s.id(it) != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	if s.selected != nil && s.id(*s.selected) == id {
		s.selected = nil
	}
}

func (s *Store[T]) DeleteRejected(msg string) { s.reject(&s.loading.Delete, msg) }

// ---- bulk-create ----

func (s *Store[T]) BeginBulk() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Bulk = true
	s.err = ""
}

func (s *Store[T]) BulkFulfilled(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading.Bulk = false
	s.items = append(s.items, items...)
}

func (s *Store[T]) BulkRejected(msg string) { s.reject(&s.loading.Bulk, msg) }

func (s *Store[T]) reject(flag *bool, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*flag = false
	s.err = msg
}

// ---- локальные переходы ----

func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

func (s *Store[T]) Select(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
}

func (s *Store[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// SetFilters дополняет фильтры; пустое значение убирает ключ.
// Фильтры — параметры следующего запроса к бэкенду, к уже загруженной
// коллекции они не применяются: смена фильтра требует явного re-fetch.
func (s *Store[T]) SetFilters(partial map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters == nil {
		s.filters = make(map[string]string)
	}
	for k, v := range partial {
		if v == "" {
			delete(s.filters, k)
			continue
		}
		s.filters[k] = v
	}
}

func (s *Store[T]) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = nil
}

func (s *Store[T]) Filters() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.filters) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}
	return out
}

// Snapshot возвращает копию состояния; слайс копируется,
// чтобы читатель не гонялся с переходами.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	var sel *T
	if s.selected != nil {
		v := *s.selected
		sel = &v
	}
	var filters map[string]string
	if len(s.filters) > 0 {
		filters = make(map[string]string, len(s.filters))
		for k, v := range s.filters {
			filters[k] = v
		}
	}
	return Snapshot[T]{
		Items:    items,
		Selected: sel,
		Loading:  s.loading,
		Err:      s.err,
		Filters:  filters,
	}
}
