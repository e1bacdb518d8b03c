package export

import (
	"fmt"
	"strconv"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/store"
	"github.com/xuri/excelize/v2"
)

// StudentsWorkbook — список учеников, один лист.
func StudentsWorkbook(students []models.Student) (*excelize.File, error) {
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		section, grade := "", ""
		if s.Section != nil {
			section = s.Section.Name
			if s.Section.Grade != nil {
				grade = s.Section.Grade.Name
			}
		}
		phone := ""
		if s.Card != nil {
			phone = s.Card.Phone
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10), s.FullName(), grade, section, phone,
		})
	}
	return BuildWorkbook([]SheetSpec{{
		Title:  "Ученики",
		Header: []string{"ID", "Имя", "Класс", "Секция", "Телефон"},
		Rows:   rows,
	}})
}

// MarksWorkbook — сетка оценок секции за предмет и тип экзамена.
func MarksWorkbook(rows []store.MarkRow, subject models.Subject, markType models.MarkType) (*excelize.File, error) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		status := "не оценён"
		if r.MarkID != nil {
			status = fmt.Sprintf("%g из %g", r.Mark, r.TopMark)
		}
		out = append(out, []string{
			r.Student.FullName(),
			fmt.Sprintf("%g", r.Mark),
			fmt.Sprintf("%g", r.TopMark),
			fmt.Sprintf("%g", r.PassMark),
			status,
		})
	}
	title := fmt.Sprintf("%s (%s)", subject.Name, markType)
	return BuildWorkbook([]SheetSpec{{
		Title:  title,
		Header: []string{"Ученик", "Оценка", "Максимум", "Проходной", "Статус"},
		Rows:   out,
	}})
}

// AttendanceWorkbook — посещаемость секции за день.
func AttendanceWorkbook(section models.Section, date string, recs []models.Attendance, roster []models.Student) (*excelize.File, error) {
	byStudent := make(map[int64]models.Attendance, len(recs))
	for _, r := range recs {
		byStudent[r.StudentID] = r
	}
	rows := make([][]string, 0, len(roster))
	for _, s := range roster {
		status, note := "присутствовал", ""
		if r, ok := byStudent[s.ID]; ok && r.Absent {
			status = "отсутствовал"
			if r.Excused {
				status = "отсутствовал (уважительная)"
			}
			note = r.Note
		}
		rows = append(rows, []string{s.FullName(), status, note})
	}
	return BuildWorkbook([]SheetSpec{{
		Title:  fmt.Sprintf("%s %s", section.Name, date),
		Header: []string{"Ученик", "Статус", "Примечание"},
		Rows:   rows,
	}})
}
