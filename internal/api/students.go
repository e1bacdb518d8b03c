package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

const studentsPath = "/api/users/students"

// StudentCreate — полезная нагрузка регистрации ученика.
// С заполненным User создаются учётная запись и профиль вместе
// (двухсторонний вариант); без User — прямая регистрация профиля.
type StudentCreate struct {
	User    *AccountCreate `json:"user,omitempty"`
	Card    models.Card    `json:"card"`
	Section int64          `json:"section,omitempty"`
	Parent1 *models.Parent `json:"parent1,omitempty"`
	Parent2 *models.Parent `json:"parent2,omitempty"`
}

type AccountCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func ListStudents(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Student, error) {
	raw, err := c.JSON(ctx, http.MethodGet, studentsPath, query(filters, "section", "grade", "search"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Student](raw)
}

func GetStudent(ctx context.Context, c *transport.Client, id int64) (*models.Student, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", studentsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Student](raw)
}

func CreateStudent(ctx context.Context, c *transport.Client, in StudentCreate) (*models.Student, error) {
	raw, err := c.JSON(ctx, http.MethodPost, studentsPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Student](raw)
}

// UpdateStudent — частичный patch: отправляются только переданные поля.
func UpdateStudent(ctx context.Context, c *transport.Client, id int64, patch map[string]any) (*models.Student, error) {
	raw, err := c.JSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", studentsPath, id), nil, patch)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Student](raw)
}

func DeleteStudent(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", studentsPath, id), nil, nil)
	return err
}
