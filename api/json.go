package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/garnizeh/trivia/internal/schema"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("err", err))
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// flexInt decodes an integer sent either as a JSON number or as a numeric
// string. null and "" leave it unset.
type flexInt struct {
	Value int64
	Set   bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
		if s == "" {
			return nil
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %s", b)
	}
	f.Value, f.Set = n, true
	return nil
}

// decodeBody reads the request body, checks it against the named schema and
// decodes it into v. On failure the Validation response is already written.
func decodeBody(w http.ResponseWriter, r *http.Request, schemas *schema.Loader, name string, errs Classifier, v any) bool {
	ctx := r.Context()
	body, err := readBody(w, r)
	if err != nil {
		logger.DebugContext(ctx, "failed to read request body", slog.Any("err", err))
		errs.Write(w, Validation, "")
		return false
	}

	if err := schemas.Validate(ctx, name, body); err != nil {
		var verr *schema.ValidationError
		if !errors.As(err, &verr) {
			errs.Abort(ctx, w, err)
			return false
		}
		logger.DebugContext(ctx, "request body rejected",
			slog.String("schema", name),
			slog.String("reason", verr.Error()),
			slog.String("request_id", RequestIDFromContext(ctx)),
		)
		errs.Write(w, Validation, "")
		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		logger.DebugContext(ctx, "failed to decode request body", slog.Any("err", err))
		errs.Write(w, Validation, "")
		return false
	}
	return true
}
