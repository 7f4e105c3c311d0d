package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

func getCell(ctx context.Context, r *http.Request) (*service.Cell, error) {

	input := struct {
		Row    int    `json:"row"`
		Column int    `json:"column"`
		Role   string `json:"role"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil && err != io.EOF {
		return nil, err
	}

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.GetCell(tableName, input.Row, input.Column, input.Role)
}
