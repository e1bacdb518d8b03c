package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
)

// ---- ученики ----

func (a *App) FetchStudents(ctx context.Context) error {
	return fetchList(ctx, a, a.Students, "Не удалось загрузить учеников",
		func(ctx context.Context) ([]models.Student, error) {
			return api.ListStudents(ctx, a.client, a.Students.Filters())
		})
}

func (a *App) FetchStudent(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Students, "Не удалось загрузить карточку ученика",
		func(ctx context.Context) (*models.Student, error) {
			return api.GetStudent(ctx, a.client, id)
		})
}

func (a *App) CreateStudent(ctx context.Context, in api.StudentCreate) error {
	return createOne(ctx, a, a.Students, "Не удалось зарегистрировать ученика",
		func(ctx context.Context) (*models.Student, error) {
			return api.CreateStudent(ctx, a.client, in)
		})
}

func (a *App) UpdateStudent(ctx context.Context, id int64, patch map[string]any) error {
	return updateOne(ctx, a, a.Students, "Не удалось обновить данные ученика",
		func(ctx context.Context) (*models.Student, error) {
			return api.UpdateStudent(ctx, a.client, id, patch)
		})
}

func (a *App) DeleteStudent(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Students, id, "Не удалось удалить ученика",
		func(ctx context.Context) error {
			return api.DeleteStudent(ctx, a.client, id)
		})
}

// Roster — ростер секции: ученики с фильтром по секции, без записи
// результата в контейнер (основа для сеток оценок и посещаемости).
func (a *App) Roster(ctx context.Context, sectionID int64) ([]models.Student, error) {
	return api.ListStudents(ctx, a.client, map[string]string{
		"section": formatID(sectionID),
	})
}

// ---- сотрудники ----

func (a *App) FetchStaff(ctx context.Context) error {
	return fetchList(ctx, a, a.Staff, "Не удалось загрузить сотрудников",
		func(ctx context.Context) ([]models.Employee, error) {
			return api.ListEmployees(ctx, a.client, a.Staff.Filters())
		})
}

func (a *App) FetchEmployee(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Staff, "Не удалось загрузить карточку сотрудника",
		func(ctx context.Context) (*models.Employee, error) {
			return api.GetEmployee(ctx, a.client, id)
		})
}

func (a *App) CreateEmployee(ctx context.Context, in api.EmployeeCreate) error {
	return createOne(ctx, a, a.Staff, "Не удалось зарегистрировать сотрудника",
		func(ctx context.Context) (*models.Employee, error) {
			return api.CreateEmployee(ctx, a.client, in)
		})
}

func (a *App) UpdateEmployee(ctx context.Context, id int64, patch map[string]any) error {
	return updateOne(ctx, a, a.Staff, "Не удалось обновить данные сотрудника",
		func(ctx context.Context) (*models.Employee, error) {
			return api.UpdateEmployee(ctx, a.client, id, patch)
		})
}

func (a *App) DeleteEmployee(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Staff, id, "Не удалось удалить сотрудника",
		func(ctx context.Context) error {
			return api.DeleteEmployee(ctx, a.client, id)
		})
}
