package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

func getTable(ctx context.Context) (*service.TableInfo, error) {

	s := GetServicer(ctx)

	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.GetTable(tableName)
}
