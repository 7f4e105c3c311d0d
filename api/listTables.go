package api

import (
	"context"

	"github.com/dbfkit/dbfkit/service"
)

func listTables(ctx context.Context) ([]*service.TableInfo, error) {
	return GetServicer(ctx).ListTables(), nil
}
