package app

import (
	"context"
	"errors"

	"github.com/Spok95/school-admin-client/internal/observability"
	"github.com/Spok95/school-admin-client/internal/store"
	"go.uber.org/zap"
)

// Общий каркас жизненного цикла операций: контейнеры почти одинаковые,
// поэтому pending/fulfilled/rejected проводится единым кодом,
// а методы ресурсов остаются декларативными.

// errEmptyReply — бэкенд ответил 2xx без тела там, где ожидался объект.
// Такой ответ проводится как отказ операции, а не как паника.
var errEmptyReply = errors.New("сервер вернул пустой ответ")

func fetchList[T any](ctx context.Context, a *App, st *store.Store[T], fallback string, call func(context.Context) ([]T, error)) error {
	token := st.BeginList()
	items, err := call(ctx)
	if err != nil {
		st.ListRejected(token, store.Message(err, fallback))
		a.fail(st.Name(), "list", err)
		return err
	}
	if !st.ListFulfilled(token, items) {
		a.log.Debug("устаревший ответ отброшен", zap.String("resource", st.Name()))
	}
	return nil
}

func fetchOne[T any](ctx context.Context, a *App, st *store.Store[T], fallback string, call func(context.Context) (*T, error)) error {
	st.BeginOne()
	item, err := call(ctx)
	if err == nil && item == nil {
		err = errEmptyReply
	}
	if err != nil {
		st.OneRejected(store.Message(err, fallback))
		a.fail(st.Name(), "get", err)
		return err
	}
	st.OneFulfilled(*item)
	return nil
}

func createOne[T any](ctx context.Context, a *App, st *store.Store[T], fallback string, call func(context.Context) (*T, error)) error {
	release, ok := a.lim.TryLock(st.Name() + ".create")
	if !ok {
		return ErrBusy
	}
	defer release()

	st.BeginCreate()
	item, err := call(ctx)
	if err == nil && item == nil {
		err = errEmptyReply
	}
	if err != nil {
		st.CreateRejected(store.Message(err, fallback))
		a.fail(st.Name(), "create", err)
		return err
	}
	st.CreateFulfilled(*item)
	return nil
}

func updateOne[T any](ctx context.Context, a *App, st *store.Store[T], fallback string, call func(context.Context) (*T, error)) error {
	release, ok := a.lim.TryLock(st.Name() + ".update")
	if !ok {
		return ErrBusy
	}
	defer release()

	st.BeginUpdate()
	item, err := call(ctx)
	if err == nil && item == nil {
		err = errEmptyReply
	}
	if err != nil {
		st.UpdateRejected(store.Message(err, fallback))
		a.fail(st.Name(), "update", err)
		return err
	}
	st.UpdateFulfilled(*item)
	return nil
}

func deleteOne[T any](ctx context.Context, a *App, st *store.Store[T], id int64, fallback string, call func(context.Context) error) error {
	release, ok := a.lim.TryLock(st.Name() + ".delete")
	if !ok {
		return ErrBusy
	}
	defer release()

	st.BeginDelete()
	if err := call(ctx); err != nil {
		st.DeleteRejected(store.Message(err, fallback))
		a.fail(st.Name(), "delete", err)
		return err
	}
	st.DeleteFulfilled(id)
	return nil
}

func bulkCreate[T any](ctx context.Context, a *App, st *store.Store[T], fallback string, call func(context.Context) ([]T, error)) error {
	release, ok := a.lim.TryLock(st.Name() + ".bulk")
	if !ok {
		return ErrBusy
	}
	defer release()

	st.BeginBulk()
	items, err := call(ctx)
	if err != nil {
		st.BulkRejected(store.Message(err, fallback))
		a.fail(st.Name(), "bulk", err)
		return err
	}
	st.BulkFulfilled(items)
	return nil
}

func (a *App) fail(resource, op string, err error) {
	a.log.Warn("операция не удалась",
		zap.String("resource", resource), zap.String("op", op), zap.Error(err))
	observability.CaptureOp(resource, op, err)
}
