package app

import (
	"fmt"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/go-playground/validator/v10"
)

// AttendanceInput — строка дневной посещаемости до отправки.
type AttendanceInput struct {
	StudentID int64  `validate:"required"`
	Date      string `validate:"required"`
	Absent    bool
	Excused   bool
	Note      string
}

// MarkInput — оценка до отправки.
type MarkInput struct {
	Student  string          `validate:"required"`
	Subject  int64           `validate:"required"`
	MarkType models.MarkType `validate:"required,oneof='exam 1' 'exam 2' 'exam 3' 'exam 4'"`
	Mark     float64         `validate:"gte=0"`
	TopMark  float64         `validate:"gt=0"`
	PassMark float64         `validate:"gte=0"`
	Date     string
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(attendanceRules, AttendanceInput{})
	v.RegisterStructValidation(markRules, MarkInput{})
	return v
}

// «Уважительная причина» имеет смысл только вместе с отсутствием;
// бэкенд этого не проверяет, отсекаем до запроса.
func attendanceRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(AttendanceInput)
	if in.Excused && !in.Absent {
		sl.ReportError(in.Excused, "Excused", "excused", "excused_requires_absent", "")
	}
}

func markRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(MarkInput)
	if in.Mark > in.TopMark {
		sl.ReportError(in.Mark, "Mark", "mark", "mark_within_top", "")
	}
	if in.PassMark > in.TopMark {
		sl.ReportError(in.PassMark, "PassMark", "pass_mark", "pass_within_top", "")
	}
}

func validationError(what string, err error) error {
	return fmt.Errorf("%s: %w", what, err)
}
