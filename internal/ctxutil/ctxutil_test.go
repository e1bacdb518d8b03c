package ctxutil_test

import (
	"context"
	"testing"
	"time"

	"github.com/Spok95/school-admin-client/internal/ctxutil"
)

func TestOp_RoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := ctxutil.Op(ctx); ok {
		t.Fatal("в пустом контексте операции быть не должно")
	}
	op, ok := ctxutil.Op(ctxutil.WithOp(ctx, "visit_watch"))
	if !ok || op != "visit_watch" {
		t.Fatalf("ожидали visit_watch, получили %q (ok=%v)", op, ok)
	}
}

func TestWithPollTimeout_KeepsShorterDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ctx, cancel2 := ctxutil.WithPollTimeout(parent)
	defer cancel2()

	dl, ok := ctx.Deadline()
	if !ok {
		t.Fatal("дедлайн должен быть выставлен")
	}
	if time.Until(dl) > time.Second {
		t.Fatal("более короткий родительский дедлайн не должен продлеваться")
	}
}
