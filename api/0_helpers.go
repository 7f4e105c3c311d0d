package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fulldump/box"

	"github.com/dbfkit/dbfkit/service"
	"github.com/dbfkit/dbfkit/workspace"
)

func AccessLog(l *log.Logger) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			r := box.GetRequest(ctx)
			now := time.Now()
			defer func() {
				l.Println(now.UTC().Format(time.RFC3339Nano), formatRemoteAddr(r), r.Method, r.URL.String(), time.Since(now))
			}()

			next(ctx)
		}
	}
}

func formatRemoteAddr(r *http.Request) string {
	xorigin := strings.TrimSpace(strings.Split(
		r.Header.Get("X-Forwarded-For"), ",")[0])
	if xorigin != "" {
		return xorigin
	}

	return r.RemoteAddr[0:strings.LastIndex(r.RemoteAddr, ":")]
}

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func InterceptorUnavailable(ws *workspace.Workspace) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {

			status := ws.GetStatus()
			if status == workspace.StatusOpening {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: opening"))
				return
			}
			if status == workspace.StatusClosing {
				box.SetError(ctx, fmt.Errorf("temporary unavailable: closing"))
				return
			}
			next(ctx)
		}
	}
}

// PrettyErrorInterceptor maps service errors to status codes and wraps
// them in a uniform body.
func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		writeError := func(status int, description string) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]interface{}{
					"message":     err.Error(),
					"description": description,
				},
			})
		}

		switch err {
		case service.ErrorTableNotFound:
			writeError(http.StatusNotFound, fmt.Sprintf("table '%s' not found", box.GetUrlParameter(ctx, "tableName")))
			return
		case service.ErrorRecordNotFound:
			writeError(http.StatusNotFound, "no cached row holds that record position")
			return
		case service.ErrorCellRejected:
			writeError(http.StatusConflict, "the cell is out of range, read only or could not be persisted")
			return
		case service.ErrorHeaderRejected:
			writeError(http.StatusConflict, "the header section is out of range or not writable")
			return
		case service.ErrorUnknownAxis, service.ErrorUnknownRole:
			writeError(http.StatusBadRequest, "valid axes are [columns|rows], valid roles are [display|edit]")
			return
		case box.ErrResourceNotFound:
			writeError(http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
			return
		case box.ErrMethodNotAllowed:
			writeError(http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
			return
		}

		if _, ok := err.(*json.SyntaxError); ok {
			writeError(http.StatusBadRequest, "Malformed JSON")
			return
		}

		writeError(http.StatusInternalServerError, "Unexpected error")
	}
}
