package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
)

// ---- активности ----

func (a *App) FetchActivities(ctx context.Context) error {
	return fetchList(ctx, a, a.Activities, "Не удалось загрузить активности",
		func(ctx context.Context) ([]models.Activity, error) {
			return api.ListActivities(ctx, a.client)
		})
}

func (a *App) FetchActivity(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Activities, "Не удалось загрузить активность",
		func(ctx context.Context) (*models.Activity, error) {
			return api.GetActivity(ctx, a.client, id)
		})
}

func (a *App) CreateActivity(ctx context.Context, in api.ActivityForm) error {
	return createOne(ctx, a, a.Activities, "Не удалось создать активность",
		func(ctx context.Context) (*models.Activity, error) {
			return api.CreateActivity(ctx, a.client, in)
		})
}

func (a *App) UpdateActivity(ctx context.Context, id int64, in api.ActivityForm) error {
	return updateOne(ctx, a, a.Activities, "Не удалось обновить активность",
		func(ctx context.Context) (*models.Activity, error) {
			return api.UpdateActivity(ctx, a.client, id, in)
		})
}

func (a *App) DeleteActivity(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Activities, id, "Не удалось удалить активность",
		func(ctx context.Context) error {
			return api.DeleteActivity(ctx, a.client, id)
		})
}

// ---- программы ----

func (a *App) FetchPrograms(ctx context.Context) error {
	return fetchList(ctx, a, a.Programs, "Не удалось загрузить программы",
		func(ctx context.Context) ([]models.Program, error) {
			return api.ListPrograms(ctx, a.client)
		})
}

func (a *App) FetchProgram(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Programs, "Не удалось загрузить программу",
		func(ctx context.Context) (*models.Program, error) {
			return api.GetProgram(ctx, a.client, id)
		})
}

func (a *App) CreateProgram(ctx context.Context, in api.ProgramForm) error {
	return createOne(ctx, a, a.Programs, "Не удалось создать программу",
		func(ctx context.Context) (*models.Program, error) {
			return api.CreateProgram(ctx, a.client, in)
		})
}

func (a *App) UpdateProgram(ctx context.Context, id int64, in api.ProgramForm) error {
	return updateOne(ctx, a, a.Programs, "Не удалось обновить программу",
		func(ctx context.Context) (*models.Program, error) {
			return api.UpdateProgram(ctx, a.client, id, in)
		})
}

func (a *App) DeleteProgram(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Programs, id, "Не удалось удалить программу",
		func(ctx context.Context) error {
			return api.DeleteProgram(ctx, a.client, id)
		})
}

// ---- даты посещений и заявки ----

func (a *App) FetchVisitDates(ctx context.Context) error {
	return fetchList(ctx, a, a.VisitDates, "Не удалось загрузить даты посещений",
		func(ctx context.Context) ([]models.VisitDate, error) {
			return api.ListVisitDates(ctx, a.client)
		})
}

func (a *App) FetchVisitDate(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.VisitDates, "Не удалось загрузить дату посещения",
		func(ctx context.Context) (*models.VisitDate, error) {
			return api.GetVisitDate(ctx, a.client, id)
		})
}

func (a *App) CreateVisitDate(ctx context.Context, in models.VisitDate) error {
	return createOne(ctx, a, a.VisitDates, "Не удалось добавить дату посещения",
		func(ctx context.Context) (*models.VisitDate, error) {
			return api.CreateVisitDate(ctx, a.client, in)
		})
}

func (a *App) UpdateVisitDate(ctx context.Context, id int64, patch map[string]any) error {
	return updateOne(ctx, a, a.VisitDates, "Не удалось обновить дату посещения",
		func(ctx context.Context) (*models.VisitDate, error) {
			return api.UpdateVisitDate(ctx, a.client, id, patch)
		})
}

func (a *App) DeleteVisitDate(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.VisitDates, id, "Не удалось удалить дату посещения",
		func(ctx context.Context) error {
			return api.DeleteVisitDate(ctx, a.client, id)
		})
}

func (a *App) FetchVisits(ctx context.Context) error {
	return fetchList(ctx, a, a.Visits, "Не удалось загрузить заявки на посещение",
		func(ctx context.Context) ([]models.Visit, error) {
			return api.ListVisits(ctx, a.client)
		})
}

func (a *App) FetchVisit(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Visits, "Не удалось загрузить заявку",
		func(ctx context.Context) (*models.Visit, error) {
			return api.GetVisit(ctx, a.client, id)
		})
}
