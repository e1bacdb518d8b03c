package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
)

func (a *App) FetchIncidents(ctx context.Context) error {
	return fetchList(ctx, a, a.Incidents, "Не удалось загрузить происшествия",
		func(ctx context.Context) ([]models.Incident, error) {
			return api.ListIncidents(ctx, a.client, a.Incidents.Filters())
		})
}

func (a *App) FetchIncident(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Incidents, "Не удалось загрузить происшествие",
		func(ctx context.Context) (*models.Incident, error) {
			return api.GetIncident(ctx, a.client, id)
		})
}

func (a *App) CreateIncident(ctx context.Context, in models.Incident) error {
	return createOne(ctx, a, a.Incidents, "Не удалось создать происшествие",
		func(ctx context.Context) (*models.Incident, error) {
			return api.CreateIncident(ctx, a.client, in)
		})
}

func (a *App) UpdateIncident(ctx context.Context, id int64, patch map[string]any) error {
	return updateOne(ctx, a, a.Incidents, "Не удалось обновить происшествие",
		func(ctx context.Context) (*models.Incident, error) {
			return api.UpdateIncident(ctx, a.client, id, patch)
		})
}

func (a *App) DeleteIncident(ctx context.Context, id int64) error {
	return deleteOne(ctx, a, a.Incidents, id, "Не удалось удалить происшествие",
		func(ctx context.Context) error {
			return api.DeleteIncident(ctx, a.client, id)
		})
}
