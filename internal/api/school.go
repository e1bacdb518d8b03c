package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

const (
	sectionsPath    = "/api/school/sections"
	gradesPath      = "/api/school/grades"
	studyStagesPath = "/api/school/study-stages"
	subjectsPath    = "/api/school/subjects"
)

// ---- sections ----

type SectionCreate struct {
	Name  string `json:"name"`
	Grade int64  `json:"grade"`
}

func ListSections(ctx context.Context, c *transport.Client, filters map[string]string) ([]models.Section, error) {
	raw, err := c.JSON(ctx, http.MethodGet, sectionsPath, query(filters, "grade"), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Section](raw)
}

func GetSection(ctx context.Context, c *transport.Client, id int64) (*models.Section, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", sectionsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Section](raw)
}

func CreateSection(ctx context.Context, c *transport.Client, in SectionCreate) (*models.Section, error) {
	raw, err := c.JSON(ctx, http.MethodPost, sectionsPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Section](raw)
}

// UpdateSection — PUT, бэкенд ждёт объект целиком.
func UpdateSection(ctx context.Context, c *transport.Client, id int64, in SectionCreate) (*models.Section, error) {
	raw, err := c.JSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", sectionsPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Section](raw)
}

func DeleteSection(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", sectionsPath, id), nil, nil)
	return err
}

// ---- grades ----

type GradeCreate struct {
	Name       string `json:"name"`
	StudyStage int64  `json:"study_stage"`
	StudyYear  int64  `json:"study_year"`
}

func ListGrades(ctx context.Context, c *transport.Client) ([]models.Grade, error) {
	raw, err := c.JSON(ctx, http.MethodGet, gradesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Grade](raw)
}

func GetGrade(ctx context.Context, c *transport.Client, id int64) (*models.Grade, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", gradesPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Grade](raw)
}

func CreateGrade(ctx context.Context, c *transport.Client, in GradeCreate) (*models.Grade, error) {
	raw, err := c.JSON(ctx, http.MethodPost, gradesPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Grade](raw)
}

func UpdateGrade(ctx context.Context, c *transport.Client, id int64, in GradeCreate) (*models.Grade, error) {
	raw, err := c.JSON(ctx, http.MethodPut, fmt.Sprintf("%s/%d", gradesPath, id), nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Grade](raw)
}

func DeleteGrade(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", gradesPath, id), nil, nil)
	return err
}

// ---- study stages / subjects (справочники, только чтение) ----

func ListStudyStages(ctx context.Context, c *transport.Client) ([]models.StudyStage, error) {
	raw, err := c.JSON(ctx, http.MethodGet, studyStagesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.StudyStage](raw)
}

func ListSubjects(ctx context.Context, c *transport.Client) ([]models.Subject, error) {
	raw, err := c.JSON(ctx, http.MethodGet, subjectsPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Subject](raw)
}
