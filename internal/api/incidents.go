package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

// Исторический путь бэкенда: инциденты живут под /event.
const incidentsPath = "/api/school/event"

func ListIncidents(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Incident, error) {
	raw, err := c.JSON(ctx, http.MethodGet, incidentsPath,
		query(filters, "students__section", "date"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Incident](raw)
}

func GetIncident(ctx context.Context, c *transport.Client, id int64) (*models.Incident, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", incidentsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Incident](raw)
}

func CreateIncident(ctx context.Context, c *transport.Client, in models.Incident) (*models.Incident, error) {
	raw, err := c.JSON(ctx, http.MethodPost, incidentsPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Incident](raw)
}

func UpdateIncident(ctx context.Context, c *transport.Client, id int64, patch map[string]any) (*models.Incident, error) {
	raw, err := c.JSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", incidentsPath, id), nil, patch)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Incident](raw)
}

func DeleteIncident(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", incidentsPath, id), nil, nil)
	return err
}
