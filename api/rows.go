package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// rows streams the requested range of cached rows as one JSON document
// per line, the same shape big tables are consumed in.
func rows(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	input := struct {
		Skip  int `json:"skip"`
		Limit int `json:"limit"`
	}{}
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil && err != io.EOF {
		return err
	}

	s := GetServicer(ctx)
	tableName := box.GetUrlParameter(ctx, "tableName")

	items, err := s.Rows(tableName, input.Skip, input.Limit)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/jsonl")

	e := jsontext.NewEncoder(w)
	for _, item := range items {
		err := json2.MarshalEncode(e, item)
		if err != nil {
			return err
		}
	}

	return nil
}
