package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

// grow pulls one more batch of records into the cache. It is bounded,
// exhausting a big table takes repeated calls.
func grow(ctx context.Context) (*service.GrowResult, error) {

	s := GetServicer(ctx)

	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.Grow(tableName)
}
