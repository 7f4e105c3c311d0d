package api

import (
	"context"
	"net/http"
	"runtime/debug"

	"github.com/fulldump/box"
	"github.com/google/uuid"

	"github.com/dbfkit/dbfkit/service"
)

const ContextServicerKey = "6f2fb1a4-8f03-11ef-9c47-3f6a8c9d1e52"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}

func RecoverFromPanic(next box.H) box.H {
	return func(ctx context.Context) {
		defer func() {
			if err := recover(); err != nil {
				debug.PrintStack()
				box.GetResponse(ctx).WriteHeader(http.StatusInternalServerError)
			}
		}()
		next(ctx)
	}
}

// RequestId tags every response so a log line can be matched back to
// its request.
func RequestId(next box.H) box.H {
	return func(ctx context.Context) {
		box.GetResponse(ctx).Header().Set("X-Request-Id", uuid.New().String())
		next(ctx)
	}
}
