package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

// updateCell writes one cell through the model. The write either lands
// on disk or leaves the cache untouched.
func updateCell(ctx context.Context, r *http.Request) (*service.Cell, error) {

	input := struct {
		Row    int         `json:"row"`
		Column int         `json:"column"`
		Value  interface{} `json:"value"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.UpdateCell(tableName, input.Row, input.Column, input.Value)
}
