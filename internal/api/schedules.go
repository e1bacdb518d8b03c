package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

const schedulesPath = "/api/school/schedules"

type ScheduleCreate struct {
	Day       models.Weekday `json:"day"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Teacher   int64          `json:"teacher"`
	Section   int64          `json:"section"`
}

func ListSchedules(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Schedule, error) {
	raw, err := c.JSON(ctx, http.MethodGet, schedulesPath, query(filters, "section"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Schedule](raw)
}

func CreateSchedule(ctx context.Context, c *transport.Client, in ScheduleCreate) (*models.Schedule, error) {
	raw, err := c.JSON(ctx, http.MethodPost, schedulesPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Schedule](raw)
}

func UpdateSchedule(ctx context.Context, c *transport.Client, id int64, in ScheduleCreate) (*models.Schedule, error) {
	raw, err := c.JSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", schedulesPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Schedule](raw)
}

func DeleteSchedule(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", schedulesPath, id), nil, nil)
	return err
}
