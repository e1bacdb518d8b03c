package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/transport"
)

const (
	activitiesPath = "/api/landingpage/activities"
	programsPath   = "/api/landingpage/programs"
	visitDatesPath = "/api/landingpage/visits-dates"
	visitsPath     = "/api/landingpage/visits"
)

type Upload struct {
	Filename string
	Content  io.Reader
}

// ActivityForm — запись активности. Image == nil означает, что картинка
// не менялась (на клиенте остался уже разрешённый URL) и поле в форму
// не кладётся вовсе.
type ActivityForm struct {
	Title       string
	Description string
	Details     string
	Image       *Upload
	Videos      []Upload
}

func (f ActivityForm) form() *transport.Form {
	form := transport.NewForm().
		Field("title", f.Title).
		Field("description", f.Description).
		Field("details", f.Details)
	if f.Image != nil {
		form.File("image", f.Image.Filename, f.Image.Content)
	}
	for _, v := range f.Videos {
		form.File("videos", v.Filename, v.Content)
	}
	return form
}

func ListActivities(ctx context.Context, c *transport.Client) ([]models.Activity, error) {
	raw, err := c.JSON(ctx, http.MethodGet, activitiesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Activity](raw)
}

func GetActivity(ctx context.Context, c *transport.Client, id int64) (*models.Activity, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", activitiesPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Activity](raw)
}

func CreateActivity(ctx context.Context, c *transport.Client, in ActivityForm) (*models.Activity, error) {
	raw, err := c.Multipart(ctx, http.MethodPost, activitiesPath, in.form())
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Activity](raw)
}

func UpdateActivity(ctx context.Context, c *transport.Client, id int64, in ActivityForm) (*models.Activity, error) {
	raw, err := c.Multipart(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", activitiesPath, id), in.form())
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Activity](raw)
}

func DeleteActivity(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", activitiesPath, id), nil, nil)
	return err
}

// ProgramForm — как ActivityForm, но без видео.
type ProgramForm struct {
	Title       string
	Description string
	Details     string
	Image       *Upload
}

func (f ProgramForm) form() *transport.Form {
	form := transport.NewForm().
		Field("title", f.Title).
		Field("description", f.Description).
		Field("details", f.Details)
	if f.Image != nil {
		form.File("image", f.Image.Filename, f.Image.Content)
	}
	return form
}

func ListPrograms(ctx context.Context, c *transport.Client) ([]models.Program, error) {
	raw, err := c.JSON(ctx, http.MethodGet, programsPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Program](raw)
}

func GetProgram(ctx context.Context, c *transport.Client, id int64) (*models.Program, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", programsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Program](raw)
}

func CreateProgram(ctx context.Context, c *transport.Client, in ProgramForm) (*models.Program, error) {
	raw, err := c.Multipart(ctx, http.MethodPost, programsPath, in.form())
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Program](raw)
}

func UpdateProgram(ctx context.Context, c *transport.Client, id int64, in ProgramForm) (*models.Program, error) {
	raw, err := c.Multipart(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", programsPath, id), in.form())
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Program](raw)
}

func DeleteProgram(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", programsPath, id), nil, nil)
	return err
}

// ---- visit dates ----

func ListVisitDates(ctx context.Context, c *transport.Client) ([]models.VisitDate, error) {
	raw, err := c.JSON(ctx, http.MethodGet, visitDatesPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.VisitDate](raw)
}

func GetVisitDate(ctx context.Context, c *transport.Client, id int64) (*models.VisitDate, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", visitDatesPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.VisitDate](raw)
}

func CreateVisitDate(ctx context.Context, c *transport.Client, in models.VisitDate) (*models.VisitDate, error) {
	raw, err := c.JSON(ctx, http.MethodPost, visitDatesPath, nil, in)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.VisitDate](raw)
}

func UpdateVisitDate(ctx context.Context, c *transport.Client, id int64, patch map[string]any) (*models.VisitDate, error) {
	raw, err := c.JSON(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", visitDatesPath, id), nil, patch)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.VisitDate](raw)
}

func DeleteVisitDate(ctx context.Context, c *transport.Client, id int64) error {
	_, err := c.JSON(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", visitDatesPath, id), nil, nil)
	return err
}

// ---- visits: заявки читаем, но не меняем ----

func ListVisits(ctx context.Context, c *transport.Client) ([]models.Visit, error) {
	raw, err := c.JSON(ctx, http.MethodGet, visitsPath, nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[[]models.Visit](raw)
}

func GetVisit(ctx context.Context, c *transport.Client, id int64) (*models.Visit, error) {
	raw, err := c.JSON(ctx, http.MethodGet, fmt.Sprintf("%s/%d", visitsPath, id), nil, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[*models.Visit](raw)
}
