package store_test

import (
	"testing"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/store"
)

func sched(id, sectionID, gradeID int64, day models.Weekday, start string) models.Schedule {
	return models.Schedule{
		ID:        id,
		Day:       day,
		StartTime: start,
		Section: &models.Section{
			ID:    sectionID,
			Grade: &models.Grade{ID: gradeID, Name: "класс"},
		},
	}
}

func TestFilterBySection_PreservesOrder(t *testing.T) {
	ss := []models.Schedule{
		sched(1, 5, 1, models.Sunday, "08:00"),
		sched(2, 6, 1, models.Sunday, "09:00"),
		sched(3, 5, 1, models.Monday, "08:00"),
	}
	got := store.FilterBySection(ss, 5)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("ожидали записи 1 и 3 в исходном порядке, получили %+v", got)
	}
}

func TestExtractGrades_UniqueFirstSeen(t *testing.T) {
	ss := []models.Schedule{
		sched(1, 5, 2, models.Sunday, "08:00"),
		sched(2, 6, 1, models.Sunday, "09:00"),
		sched(3, 7, 2, models.Monday, "08:00"),
		{ID: 4}, // запись без секции пропускается
	}
	got := store.ExtractGrades(ss)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("ожидали параллели [2 1], получили %+v", got)
	}
}

func TestScheduleStore_DerivedSectionView(t *testing.T) {
	s := store.NewScheduleStore()

	tok := s.BeginList()
	s.ListFulfilled(tok, []models.Schedule{
		sched(1, 5, 1, models.Sunday, "08:00"),
		sched(2, 6, 1, models.Sunday, "09:00"),
	})

	if got := s.SectionSchedules(); len(got) != 0 {
		t.Fatalf("до выбора секции производный список пуст: %+v", got)
	}

	// выбор секции пересчитывает производный список
	s.SelectSection(&models.Section{ID: 5})
	if got := s.SectionSchedules(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("после выбора секции ожидали запись 1: %+v", got)
	}

	// свежий list-fetch тоже пересчитывает
	tok = s.BeginList()
	s.ListFulfilled(tok, []models.Schedule{
		sched(3, 5, 1, models.Tuesday, "10:00"),
	})
	if got := s.SectionSchedules(); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("после перезагрузки ожидали запись 3: %+v", got)
	}

	s.SelectSection(nil)
	if got := s.SectionSchedules(); len(got) != 0 {
		t.Fatal("сброс секции должен очистить производный список")
	}
}
