package export_test

import (
	"testing"

	"github.com/Spok95/school-admin-client/internal/export"
	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/store"
)

func TestStudentsWorkbook(t *testing.T) {
	students := []models.Student{
		{
			ID:   1,
			Card: &models.Card{FirstName: "Иван", LastName: "Петров", Phone: "+7900"},
			Section: &models.Section{
				ID: 5, Name: "А",
				Grade: &models.Grade{ID: 2, Name: "7 класс"},
			},
		},
	}

	wb, err := export.StudentsWorkbook(students)
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := wb.GetCellValue("Ученики", "B1"); got != "Имя" {
		t.Fatalf("в B1 ожидали заголовок 'Имя', получили %q", got)
	}
	if got, _ := wb.GetCellValue("Ученики", "B2"); got != "Иван Петров" {
		t.Fatalf("в B2 ожидали полное имя, получили %q", got)
	}
	if got, _ := wb.GetCellValue("Ученики", "C2"); got != "7 класс" {
		t.Fatalf("в C2 ожидали класс, получили %q", got)
	}
}

func TestBuildWorkbook_ShortRow(t *testing.T) {
	wb, err := export.BuildWorkbook([]export.SheetSpec{
		{
			Title:  "Лист",
			Header: []string{"ID", "Имя", "Телефон"},
			Rows: [][]string{
				{"1"}, // короче заголовка
				{"2", "Анна", "+7900"},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := wb.GetCellValue("Лист", "B3"); got != "Анна" {
		t.Fatalf("полная строка должна лечь как есть, получили %q", got)
	}
	if got, _ := wb.GetCellValue("Лист", "B2"); got != "" {
		t.Fatalf("недостающие ячейки остаются пустыми, получили %q", got)
	}
}

func TestMarksWorkbook_UngradedStatus(t *testing.T) {
	rows := []store.MarkRow{
		{
			Student:  models.Student{ID: 1, Card: &models.Card{FirstName: "Анна", LastName: "Сидорова"}},
			Mark:     0,
			TopMark:  100,
			PassMark: 60,
		},
	}
	wb, err := export.MarksWorkbook(rows, models.Subject{ID: 3, Name: "Математика"}, models.MarkExam1)
	if err != nil {
		t.Fatal(err)
	}
	sheet := "Математика (exam 1)"
	if got, _ := wb.GetCellValue(sheet, "E2"); got != "не оценён" {
		t.Fatalf("неоценённый ученик помечается заглушкой, получили %q", got)
	}
}

func TestAttendanceWorkbook_Statuses(t *testing.T) {
	section := models.Section{ID: 5, Name: "7-А"}
	roster := []models.Student{
		{ID: 1, Card: &models.Card{FirstName: "Иван", LastName: "Петров"}},
		{ID: 2, Card: &models.Card{FirstName: "Анна", LastName: "Сидорова"}},
	}
	recs := []models.Attendance{
		{ID: 10, StudentID: 2, Date: "2026-09-01", Absent: true, Excused: true, Note: "справка"},
	}

	wb, err := export.AttendanceWorkbook(section, "2026-09-01", recs, roster)
	if err != nil {
		t.Fatal(err)
	}
	sheet := "7-А 2026-09-01"
	if got, _ := wb.GetCellValue(sheet, "B2"); got != "присутствовал" {
		t.Fatalf("без записи ученик считается присутствовавшим, получили %q", got)
	}
	if got, _ := wb.GetCellValue(sheet, "B3"); got != "отсутствовал (уважительная)" {
		t.Fatalf("ожидали уважительное отсутствие, получили %q", got)
	}
}
