package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

const staffPath = "/api/users/employees"

type EmployeeCreate struct {
	User     *AccountCreate `json:"user,omitempty"`
	Card     models.Card    `json:"card"`
	Position string         `json:"position,omitempty"`
	Subjects []int64        `json:"subjects,omitempty"`
}

func ListEmployees(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Employee, error) {
	raw, err := c.JSON(ctx, http.MethodGet, staffPath, query(filters, "position", "search"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Employee](raw)
}

func GetEmployee(ctx context.Context, c *transport.Client, id int64) (*models.Employee, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", staffPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Employee](raw)
}

func CreateEmployee(ctx context.Context, c *transport.Client, in EmployeeCreate) (*models.Employee, error) {
	raw, err := c.JSON(ctx, http.MethodPost, staffPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Employee](raw)
}

func UpdateEmployee(ctx context.Context, c *transport.Client, id int64, patch map[string]any) (*models.Employee, error) {
	raw, err := c.JSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", staffPath, id), nil, patch)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Employee](raw)
}

func DeleteEmployee(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", staffPath, id), nil, nil)
	return err
}
