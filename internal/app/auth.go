package app

import (
	"context"

	"github.com/Spok95/school-admin-client/internal/api"
	"github.com/Spok95/school-admin-client/internal/models"
	"github.com/Spok95/school-admin-client/internal/observability"
	"github.com/Spok95/school-admin-client/internal/store"
	"go.uber.org/zap"
)

// Login проводит сессию через authenticating → authenticated|anonymous.
// Успешная сессия сразу сохраняется на диск.
func (a *App) Login(ctx context.Context, creds models.Credentials) error {
	if err := a.validate.Struct(creds); err != nil {
		a.Session.Reject("Укажите логин и пароль")
		return err
	}

	release, ok := a.lim.TryLock("session.login")
	if !ok {
		return ErrBusy
	}
	defer release()

	a.Session.Begin()
	sess, err := api.Login(ctx, a.client, creds)
	if err != nil {
		a.Session.Reject(store.Message(err, "Не удалось войти"))
		observability.CaptureErr(err)
		return err
	}
	if err := a.Session.Establish(sess); err != nil {
		observability.CaptureErr(err)
		return err
	}
	a.log.Info("вход выполнен", zap.String("user", sess.User.Username))
	return nil
}

func (a *App) Logout() {
	a.Session.Logout()
	a.log.Info("выход выполнен")
}
