package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

func setHeader(ctx context.Context, r *http.Request) (*service.Header, error) {

	input := struct {
		Section int         `json:"section"`
		Axis    string      `json:"axis"`
		Role    string      `json:"role"`
		Value   interface{} `json:"value"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		return nil, err
	}

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.SetHeader(tableName, input.Section, input.Axis, input.Role, input.Value)
}
