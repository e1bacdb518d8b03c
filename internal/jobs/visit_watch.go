package jobs

import (
	"context"
	"time"

	"github.com/Spok95/school-admin-client/internal/app"
	"github.com/Spok95/school-admin-client/internal/ctxutil"
	"go.uber.org/zap"
)

// WatchVisits периодически подтягивает заявки на посещение и пишет в лог,
// когда появляются новые. Пока сессии нет — тихо пропускает тик.
func WatchVisits(r *Runner, a *app.App, interval time.Duration) {
	var known int
	r.Every(interval, "visit_watch", func(ctx context.Context) error {
		if !a.Session.Authenticated() {
			return nil
		}
		ctx, cancel := ctxutil.WithPollTimeout(ctxutil.WithOp(ctx, "visit_watch"))
		defer cancel()
		if err := a.FetchVisits(ctx); err != nil {
			return err
		}
		total := len(a.Visits.Snapshot().Items)
		if total > known {
			r.log.Info("новые заявки на посещение", zap.Int("count", total-known))
		}
		known = total
		return nil
	})
}

// WatchToken предупреждает о скором истечении access-токена.
func WatchToken(r *Runner, a *app.App, interval time.Duration) {
	r.Every(interval, "token_watch", func(ctx context.Context) error {
		exp, ok := a.Session.TokenExpiry()
		if !ok {
			return nil
		}
		if left := time.Until(exp); left > 0 && left < 10*time.Minute {
			r.log.Warn("access-токен скоро истечёт", zap.Duration("left", left))
		}
		return nil
	})
}
