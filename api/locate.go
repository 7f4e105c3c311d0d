package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

// locate resolves a physical record position to the row holding it in
// the cache, if any.
func locate(ctx context.Context, r *http.Request) (*service.RowItem, error) {

	input := struct {
		Position int `json:"position"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.Locate(tableName, input.Position)
}
