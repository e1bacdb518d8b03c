package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/store"
	"go.uber.org/zap"
)

// FetchSchedules написан вручную (не через fetchList): у ScheduleStore
// свой ListFulfilled, который пересчитывает производный список
// выбранной секции.
func (a *App) FetchSchedules(ctx context.Context) error {
	token := a.Schedules.BeginList()
	items, err := api.ListSchedules(ctx, a.client, a.Schedules.Filters())
	if err != nil {
		a.Schedules.ListRejected(token, store.Message(err, "Не удалось загрузить расписание"))
		a.fail("schedules", "list", err)
		return err
	}
	if !a.Schedules.ListFulfilled(token, items) {
		a.log.Debug("устаревший ответ отброшен", zap.String("resource", "schedules"))
	}
	return nil
}

func (a *App) CreateSchedule(ctx context.Context, in api.ScheduleCreate) error {
	release, ok := a.lim.TryLock("schedules.create")
	if !ok {
		return ErrBusy
	}
	defer release()

	a.Schedules.BeginCreate()
	item, err := api.CreateSchedule(ctx, a.client, in)
	if err == nil && item == nil {
		err = errEmptyReply
	}
	if err != nil {
		a.Schedules.CreateRejected(store.Message(err, "Не удалось добавить урок"))
		a.fail("schedules", "create", err)
		return err
	}
	a.Schedules.CreateFulfilled(*item)
	return nil
}

func (a *App) UpdateSchedule(ctx context.Context, id int64, in api.ScheduleCreate) error {
	release, ok := a.lim.TryLock("schedules.update")
	if !ok {
		return ErrBusy
	}
	defer release()

	a.Schedules.BeginUpdate()
	item, err := api.UpdateSchedule(ctx, a.client, id, in)
	if err == nil && item == nil {
		err = errEmptyReply
	}
	if err != nil {
		a.Schedules.UpdateRejected(store.Message(err, "Не удалось обновить урок"))
		a.fail("schedules", "update", err)
		return err
	}
	a.Schedules.UpdateFulfilled(*item)
	return nil
}

func (a *App) DeleteSchedule(ctx context.Context, id int64) error {
	release, ok := a.lim.TryLock("schedules.delete")
	if !ok {
		return ErrBusy
	}
	defer release()

	a.Schedules.BeginDelete()
	if err := api.DeleteSchedule(ctx, a.client, id); err != nil {
		a.Schedules.DeleteRejected(store.Message(err, "Не удалось удалить урок"))
		a.fail("schedules", "delete", err)
		return err
	}
	a.Schedules.DeleteFulfilled(id)
	return nil
}
