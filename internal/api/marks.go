package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

// Список оценок бэкенд отдаёт только с завершающим слэшем.
const marksPath = "/api/school/marks"

func ListMarks(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Mark, error) {
	raw, err := c.JSON(ctx, http.MethodGet, marksPath+"/",
		query(filters, "subject", "mark_type", "student__section"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Mark](raw)
}

func GetMark(ctx context.Context, c *transport.Client, id int64) (*models.Mark, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", marksPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Mark](raw)
}

func CreateMark(ctx context.Context, c *transport.Client, in models.Mark) (*models.Mark, error) {
	raw, err := c.JSON(ctx, http.MethodPost, marksPath+"/", nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Mark](raw)
}

// BulkCreateMarks — оценки всей секции за один предмет/тип одним запросом.
func BulkCreateMarks(ctx context.Context, c *transport.Client, in []models.Mark) ([]models.Mark, error) {
	raw, err := c.JSON(ctx, http.MethodPost, marksPath+"/", nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Mark](raw)
}

func UpdateMark(ctx context.Context, c *transport.Client, id int64, patch map[string]any) (*models.Mark, error) {
	raw, err := c.JSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/", marksPath, id), nil, patch)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Mark](raw)
}

// Удаления оценок у бэкенда нет.
