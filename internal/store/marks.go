package store

import (
	"strconv"

	"github.com/Spok95/school-admin-client/internal/models"
)

// Значения по умолчанию для ещё не выставленной оценки.
const (
	DefaultTopMark  = 100
	DefaultPassMark = 60
)

// MarkRow — строка сетки оценок: ученик ростера плюс его существующая
// оценка либо заглушка «не оценён».
type MarkRow struct {
	Student  models.Student
	Mark     float64
	TopMark  float64
	PassMark float64
	MarkID   *int64
}

// Combine соединяет ростер секции с уже выставленными оценками —
// по строке на каждого ученика. Join идёт по полному имени
// (first_name + " " + last_name), потому что payload оценки
// денормализует имя ученика и не отдаёт внешний ключ.
//
// Известный дефект: два ученика с одинаковым полным именем получат одну
// и ту же оценку. Чинится только изменением контракта бэкенда (id
// ученика в payload оценки); здесь поведение сохранено намеренно.
func Combine(roster []models.Student, marks []models.Mark, filters map[string]string) []MarkRow {
	marks = filterMarks(marks, filters)

	byName := make(map[string]models.Mark, len(marks))
	for _, m := range marks {
		byName[m.Student] = m
	}

	rows := make([]MarkRow, 0, len(roster))
	for _, st := range roster {
		row := MarkRow{
			Student:  st,
			Mark:     0,
			TopMark:  DefaultTopMark,
			PassMark: DefaultPassMark,
		}
		if m, ok := byName[st.FullName()]; ok {
			row.Mark = m.Mark
			row.TopMark = m.TopMark
			row.PassMark = m.PassMark
			id := m.ID
			row.MarkID = &id
		}
		rows = append(rows, row)
	}
	return rows
}

func filterMarks(marks []models.Mark, filters map[string]string) []models.Mark {
	if len(filters) == 0 {
		return marks
	}
	subject, hasSubject := int64(0), false
	if v := filters["subject"]; v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			subject, hasSubject = n, true
		}
	}
	markType := filters["mark_type"]
	if !hasSubject && markType == "" {
		return marks
	}
	out := make([]models.Mark, 0, len(marks))
	for _, m := range marks {
		if hasSubject && m.Subject != subject {
			continue
		}
		if markType != "" && string(m.MarkType) != markType {
			continue
		}
		out = append(out, m)
	}
	return out
}
