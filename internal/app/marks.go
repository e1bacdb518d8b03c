package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/store"
)

func (a *App) FetchMarks(ctx context.Context) error {
	return fetchList(ctx, a, a.Marks, "Не удалось загрузить оценки",
		func(ctx context.Context) ([]models.Mark, error) {
			return api.ListMarks(ctx, a.client, a.Marks.Filters())
		})
}

func (a *App) FetchMark(ctx context.Context, id int64) error {
	return fetchOne(ctx, a, a.Marks, "Не удалось загрузить оценку",
		func(ctx context.Context) (*models.Mark, error) {
			return api.GetMark(ctx, a.client, id)
		})
}

func (a *App) CreateMark(ctx context.Context, in MarkInput) error {
	if err := a.validate.Struct(in); err != nil {
		return validationError("оценка", err)
	}
	return createOne(ctx, a, a.Marks, "Не удалось сохранить оценку",
		func(ctx context.Context) (*models.Mark, error) {
			return api.CreateMark(ctx, a.client, markRecord(in))
		})
}

// SubmitSectionMarks — оценки секции за предмет/тип одним bulk-запросом.
func (a *App) SubmitSectionMarks(ctx context.Context, inputs []MarkInput) error {
	for _, in := range inputs {
		if err := a.validate.Struct(in); err != nil {
			return validationError("оценка", err)
		}
	}
	records := make([]models.Mark, 0, len(inputs))
	for _, in := range inputs {
		records = append(records, markRecord(in))
	}
	return bulkCreate(ctx, a, a.Marks, "Не удалось сохранить оценки",
		func(ctx context.Context) ([]models.Mark, error) {
			return api.BulkCreateMarks(ctx, a.client, records)
		})
}

func (a *App) UpdateMark(ctx context.Context, id int64, patch map[string]any) error {
	return updateOne(ctx, a, a.Marks, "Не удалось обновить оценку",
		func(ctx context.Context) (*models.Mark, error) {
			return api.UpdateMark(ctx, a.client, id, patch)
		})
}

// MarksGrid — сетка оценок секции: ростер × существующие оценки,
// по строке на ученика (0 — ещё не оценён).
func (a *App) MarksGrid(ctx context.Context, sectionID int64) ([]store.MarkRow, error) {
	roster, err := a.Roster(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if err := a.FetchMarks(ctx); err != nil {
		return nil, err
	}
	snap := a.Marks.Snapshot()
	return store.Combine(roster, snap.Items, snap.Filters), nil
}

func markRecord(in MarkInput) models.Mark {
	return models.Mark{
		Student:  in.Student,
		Subject:  in.Subject,
		MarkType: in.MarkType,
		Mark:     in.Mark,
		TopMark:  in.TopMark,
		PassMark: in.PassMark,
		Date:     in.Date,
	}
}
