package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
)

func (a *App) FetchAttendances(ctx context.Context) error {
	return fetchList(ctx, a, a.Attendances, "Не удалось загрузить посещаемость",
		func(ctx context.Context) ([]models.Attendance, error) {
			return api.ListAttendances(ctx, a.client, a.Attendances.Filters())
		})
}

func (a *App) FetchAttendance(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Attendances, "Не удалось загрузить отметку",
		func(ctx context.Context) (*models.Attendance, error) {
			return api.GetAttendance(ctx, a.client, id)
		})
}

func (a *App) CreateAttendance(ctx context.Context, in AttendanceInput) error {
	if err := a.validate.Struct(in); err != nil {
		return validationError("посещаемость", err)
	}
	return createOne(ctx, a, a.Attendances, "Не удалось сохранить отметку",
		func(ctx context.Context) (*models.Attendance, error) {
			return api.CreateAttendance(ctx, a.client, attendanceRecord(in))
		})
}

// SubmitDailyAttendance — посещаемость секции за день одним bulk-запросом.
// Любая невалидная строка отклоняет весь ввод до обращения к бэкенду.
func (a *App) SubmitDailyAttendance(ctx context.Context, inputs []AttendanceInput) error {
	for _, in := range inputs {
		if err := a.validate.Struct(in); err != nil {
			return validationError("посещаемость", err)
		}
	}
	records := make([]models.Attendance, 0, len(inputs))
	for _, in := range inputs {
		records = append(records, attendanceRecord(in))
	}
	return bulkCreate(ctx, a, a.Attendances, "Не удалось сохранить посещаемость за день",
		func(ctx context.Context) ([]models.Attendance, error) {
			return api.BulkCreateAttendances(ctx, a.client, records)
		})
}

func (a *App) UpdateAttendance(ctx context.Context, id int64, patch map[string]any) error {
	return updateOne(ctx, a, a.Attendances, "Не удалось обновить отметку",
		func(ctx context.Context) (*models.Attendance, error) {
			return api.UpdateAttendance(ctx, a.client, id, patch)
		})
}

func (a *App) DeleteAttendance(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Attendances, id, "Не удалось удалить отметку",
		func(ctx context.Context) error {
			return api.DeleteAttendance(ctx, a.client, id)
		})
}

func attendanceRecord(in AttendanceInput) models.Attendance {
	return models.Attendance{
		StudentID: in.StudentID,
		Date:      in.Date,
		Absent:    in.Absent,
		Excused:   in.Excused,
		Note:      in.Note,
	}
}
