package app

import (
	"context"
	"strconv"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
)

func formatID(id int64) string { return strconv.FormatInt(id, 10) }

// ---- секции ----

func (a *App) FetchSections(ctx context.Context) error {
	return fetchList(ctx, a, a.Sections, "Не удалось загрузить секции",
		func(ctx context.Context) ([]models.Section, error) {
			return api.ListSections(ctx, a.client, a.Sections.Filters())
		})
}

func (a *App) FetchSection(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Sections, "Не удалось загрузить секцию",
		func(ctx context.Context) (*models.Section, error) {
			return api.GetSection(ctx, a.client, id)
		})
}

func (a *App) CreateSection(ctx context.Context, in api.SectionCreate) error {
	return createOne(ctx, a, a.Sections, "Не удалось создать секцию",
		func(ctx context.Context) (*models.Section, error) {
			return api.CreateSection(ctx, a.client, in)
		})
}

func (a *App) UpdateSection(ctx context.Context, id int64, in api.SectionCreate) error {
	return updateOne(ctx, a, a.Sections, "Не удалось обновить секцию",
		func(ctx context.Context) (*models.Section, error) {
			return api.UpdateSection(ctx, a.client, id, in)
		})
}

func (a *App) DeleteSection(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Sections, id, "Не удалось удалить секцию",
		func(ctx context.Context) error {
			return api.DeleteSection(ctx, a.client, id)
		})
}

// ---- параллели (классы) ----

func (a *App) FetchGrades(ctx context.Context) error {
	return fetchList(ctx, a, a.Grades, "Не удалось загрузить классы",
		func(ctx context.Context) ([]models.Grade, error) {
			return api.ListGrades(ctx, a.client)
		})
}

func (a *App) FetchGrade(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Grades, "Не удалось загрузить класс",
		func(ctx context.Context) (*models.Grade, error) {
			return api.GetGrade(ctx, a.client, id)
		})
}

func (a *App) CreateGrade(ctx context.Context, in api.GradeCreate) error {
	return createOne(ctx, a, a.Grades, "Не удалось создать класс",
		func(ctx context.Context) (*models.Grade, error) {
			return api.CreateGrade(ctx, a.client, in)
		})
}

func (a *App) UpdateGrade(ctx context.Context, id int64, in api.GradeCreate) error {
	return updateOne(ctx, a, a.Grades, "Не удалось обновить класс",
		func(ctx context.Context) (*models.Grade, error) {
			return api.UpdateGrade(ctx, a.client, id, in)
		})
}

func (a *App) DeleteGrade(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Grades, id, "Не удалось удалить класс",
		func(ctx context.Context) error {
			return api.DeleteGrade(ctx, a.client, id)
		})
}

// ---- справочники ----

func (a *App) FetchStudyStages(ctx context.Context) error {
	return fetchList(ctx, a, a.StudyStages, "Не удалось загрузить ступени обучения",
		func(ctx context.Context) ([]models.StudyStage, error) {
			return api.ListStudyStages(ctx, a.client)
		})
}

func (a *App) FetchSubjects(ctx context.Context) error {
	return fetchList(ctx, a, a.Subjects, "Не удалось загрузить предметы",
		func(ctx context.Context) ([]models.Subject, error) {
			return api.ListSubjects(ctx, a.client)
		})
}
