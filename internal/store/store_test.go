package store_test

import (
	"testing"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/store"
)

func newGrades() *store.Store[models.Grade] {
	return store.New("grades", func(g models.Grade) int64 { return g.ID })
}

func TestListFetch_ReplacesCollection(t *testing.T) {
	s := newGrades()

	tok := s.BeginList()
	if !s.Snapshot().Loading.List {
		t.Fatal("после BeginList ожидали loading=true")
	}
	s.ListFulfilled(tok, []models.Grade{{ID: 1, Name: "1-А"}})

	tok = s.BeginList()
	s.ListFulfilled(tok, []models.Grade{{ID: 2, Name: "2-Б"}})

	snap := s.Snapshot()
	if snap.Loading.List || snap.Err != "" {
		t.Fatalf("после успеха ожидали loading=false err='', получили %+v", snap)
	}
	// коллекция заменяется целиком, без слияния со старыми данными
	if len(snap.Items) != 1 || snap.Items[0].ID != 2 {
		t.Fatalf("ожидали только запись id=2, получили %+v", snap.Items)
	}
}

func TestRejected_KeepsCollection(t *testing.T) {
	s := newGrades()
	tok := s.BeginList()
	s.ListFulfilled(tok, []models.Grade{{ID: 1}})

	tok = s.BeginList()
	s.ListRejected(tok, "Не удалось загрузить классы")

	snap := s.Snapshot()
	if snap.Loading.List {
		t.Fatal("после отказа loading должен сняться")
	}
	if snap.Err == "" {
		t.Fatal("после отказа ожидали непустую ошибку")
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != 1 {
		t.Fatalf("коллекция не должна меняться при отказе: %+v", snap.Items)
	}
}

func TestClearError_Idempotent(t *testing.T) {
	s := newGrades()
	before := s.Snapshot()
	s.ClearError()
	after := s.Snapshot()
	if before.Err != after.Err || len(before.Items) != len(after.Items) {
		t.Fatal("ClearError на чистом контейнере должен быть no-op")
	}
}

func TestCreate_PrependsExactlyOnce(t *testing.T) {
	s := newGrades()
	tok := s.BeginList()
	s.ListFulfilled(tok, []models.Grade{{ID: 1}})

	s.BeginCreate()
	s.CreateFulfilled(models.Grade{ID: 7, Name: "7-В"})

	snap := s.Snapshot()
	if snap.Loading.Create {
		t.Fatal("loading.Create должен сняться")
	}
	count := 0
	for _, g := range snap.Items {
		if g.ID == 7 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("созданная запись должна присутствовать ровно один раз, нашли %d", count)
	}
	if snap.Items[0].ID != 7 {
		t.Fatal("созданная запись должна встать в начало")
	}
}

func TestDelete_Selection(t *testing.T) {
	s := newGrades()
	tok := s.BeginList()
	s.ListFulfilled(tok, []models.Grade{{ID: 1}, {ID: 2}})

	// удаление не выбранной записи не трогает выбор
	s.Select(models.Grade{ID: 1})
	s.BeginDelete()
	s.DeleteFulfilled(2)
	if snap := s.Snapshot(); snap.Selected == nil || snap.Selected.ID != 1 {
		t.Fatalf("выбор не должен сброситься: %+v", snap.Selected)
	}

	// удаление выбранной — сбрасывает
	s.BeginDelete()
	s.DeleteFulfilled(1)
	if snap := s.Snapshot(); snap.Selected != nil {
		t.Fatal("выбор удалённой записи должен сброситься")
	}
}

func TestUpdate_ReplacesById(t *testing.T) {
	s := newGrades()
	tok := s.BeginList()
	s.ListFulfilled(tok, []models.Grade{{ID: 1, Name: "старое"}, {ID: 2}})
	s.Select(models.Grade{ID: 1, Name: "старое"})

	s.BeginUpdate()
	s.UpdateFulfilled(models.Grade{ID: 1, Name: "новое"})

	snap := s.Snapshot()
	if snap.Items[0].Name != "новое" {
		t.Fatalf("запись должна замениться по id: %+v", snap.Items[0])
	}
	if snap.Selected == nil || snap.Selected.Name != "новое" {
		t.Fatal("выбранная запись тоже должна обновиться")
	}
}

func TestFence_LastIssuedWins(t *testing.T) {
	s := newGrades()

	tokA := s.BeginList()
	tokB := s.BeginList()

	// B завершился первым, A пришёл позже и должен быть отброшен
	if !s.ListFulfilled(tokB, []models.Grade{{ID: 2}}) {
		t.Fatal("свежий результат не должен отбрасываться")
	}
	if s.ListFulfilled(tokA, []models.Grade{{ID: 1}}) {
		t.Fatal("устаревший результат должен быть отброшен")
	}
	if snap := s.Snapshot(); len(snap.Items) != 1 || snap.Items[0].ID != 2 {
		t.Fatalf("должен остаться результат последнего запущенного запроса: %+v", snap.Items)
	}

	// устаревший отказ тоже игнорируется
	s.ListRejected(tokA, "поздно")
	if snap := s.Snapshot(); snap.Err != "" {
		t.Fatal("устаревший отказ не должен записывать ошибку")
	}
}

func TestFilters_NotAppliedLocally(t *testing.T) {
	s := newGrades()
	tok := s.BeginList()
	s.ListFulfilled(tok, []models.Grade{{ID: 1}, {ID: 2}})

	s.SetFilters(map[string]string{"study_stage": "3"})
	if len(s.Snapshot().Items) != 2 {
		t.Fatal("смена фильтра не должна трогать загруженную коллекцию")
	}

	s.SetFilters(map[string]string{"study_stage": "", "year": "2026"})
	f := s.Filters()
	if _, ok := f["study_stage"]; ok {
		t.Fatal("пустое значение должно убирать ключ")
	}
	if f["year"] != "2026" {
		t.Fatalf("фильтры должны сливаться частично: %+v", f)
	}

	s.ClearFilters()
	if s.Filters() != nil {
		t.Fatal("после ClearFilters фильтров быть не должно")
	}
}
