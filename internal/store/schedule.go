package store

import (
	"sync"

	"github.com/Spok95/school-admin-client/internal/models"
)

// FilterByGrade оставляет записи расписания указанной параллели,
// сохраняя исходный порядок.
func FilterByGrade(ss []models.Schedule, gradeID int64) []models.Schedule {
	out := make([]models.Schedule, 0, len(ss))
	for _, s := range ss {
		if s.Section != nil && s.Section.Grade != nil && s.Section.Grade.ID == gradeID {
			out = append(out, s)
		}
	}
	return out
}

// FilterBySection — то же для секции.
func FilterBySection(ss []models.Schedule, sectionID int64) []models.Schedule {
	out := make([]models.Schedule, 0, len(ss))
	for _, s := range ss {
		if s.Section != nil && s.Section.ID == sectionID {
			out = append(out, s)
		}
	}
	return out
}

// ExtractGrades — параллели, на которые ссылается расписание:
// уникальные по id, в порядке первого вхождения.
func ExtractGrades(ss []models.Schedule) []models.Grade {
	seen := make(map[int64]bool)
	var out []models.Grade
	for _, s := range ss {
		if s.Section == nil || s.Section.Grade == nil {
			continue
		}
		g := *s.Section.Grade
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		out = append(out, g)
	}
	return out
}

// ScheduleStore — контейнер расписаний плюс выбранная секция и
// производный список «расписание выбранной секции». Производный список
// пересчитывается при каждом успешном list-fetch и при смене секции.
type ScheduleStore struct {
	*Store[models.Schedule]

	mu      sync.Mutex
	section *models.Section
	derived []models.Schedule
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		Store: New("schedules", func(s models.Schedule) int64 { return s.ID }),
	}
}

func (s *ScheduleStore) ListFulfilled(token uint64, items []models.Schedule) bool {
	if !s.Store.ListFulfilled(token, items) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked()
	return true
}

func (s *ScheduleStore) SelectSection(sec *models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = sec
	s.recomputeLocked()
}

func (s *ScheduleStore) SelectedSection() *models.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.section
}

func (s *ScheduleStore) SectionSchedules() []models.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Schedule, len(s.derived))
	copy(out, s.derived)
	return out
}

func (s *ScheduleStore) recomputeLocked() {
	if s.section == nil {
		s.derived = nil
		return
	}
	s.derived = FilterBySection(s.Snapshot().Items, s.section.ID)
}
