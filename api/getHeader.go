package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
)

func getHeader(ctx context.Context, r *http.Request) (*service.Header, error) {

	input := struct {
		Section int    `json:"section"`
		Axis    string `json:"axis"`
		Role    string `json:"role"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil && err != io.EOF {
		return nil, err
	}

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")

	return s.GetHeader(tableName, input.Section, input.Axis, input.Role)
}
