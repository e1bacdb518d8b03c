package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

const attendancesPath = "/api/school/attendances"

func ListAttendances(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Attendance, error) {
	raw, err := c.JSON(ctx, http.MethodGet, attendancesPath,
		query(filters, "student__section", "date", "student"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Attendance](raw)
}

func GetAttendance(ctx context.Context, c *transport.Client, id int64) (*models.Attendance, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", attendancesPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Attendance](raw)
}

func CreateAttendance(ctx context.Context, c *transport.Client, in models.Attendance) (*models.Attendance, error) {
	raw, err := c.JSON(ctx, http.MethodPost, attendancesPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Attendance](raw)
}

// BulkCreateAttendances — дневная посещаемость целой секции одним запросом.
func BulkCreateAttendances(ctx context.Context, c *transport.Client, in []models.Attendance) ([]models.Attendance, error) {
	raw, err := c.JSON(ctx, http.MethodPost, attendancesPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Attendance](raw)
}

// UpdateAttendance — у этого эндпоинта бэкенд требует завершающий слэш.
func UpdateAttendance(ctx context.Context, c *transport.Client, id int64, patch map[string]any) (*models.Attendance, error) {
	raw, err := c.JSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/", attendancesPath, id), nil, patch)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Attendance](raw)
}

func DeleteAttendance(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", attendancesPath, id), nil, nil)
	return err
}
