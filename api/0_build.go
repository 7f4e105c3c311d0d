package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
	"github.com/dbfkit/dbfkit/statics"
)

func Build(s service.Servicer, staticsDir, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1").
		WithInterceptors(
			injectServicer(s),
			RequestId,
		)

	v1.Resource("/tables").
		WithActions(
			box.Get(listTables),
		)

	v1.Resource("/tables/{tableName}").
		WithActions(
			box.Get(getTable),
			box.ActionPost(grow),
			box.ActionPost(rows),
			box.ActionPost(getCell),
			box.ActionPost(updateCell),
			box.ActionPost(getHeader),
			box.ActionPost(setHeader),
			box.ActionPost(locate),
		)

	b.Resource("/version").
		WithActions(box.Get(func() string {
			return version
		}))

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
