package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GVarya/MA-homework-service/internal/errdefs"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

var validate = newValidator()

// newValidator reports fields by their JSON names. The uuid tag accepts any
// form uuid.Parse does, so body ids match path ids.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrValidation),
		errors.Is(err, errdefs.ErrInvalidState),
		errors.Is(err, errdefs.ErrInvalidTransition):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Handle adapts a service call to an HTTP handler. The request is built from
// the JSON body (when parseBody is set) and then from the path by reqParser,
// validated, and passed to call. Domain errors are reported with their
// message; anything else becomes a bare 500.
func Handle[Req any, Resp any](
	call func(ctx context.Context, req *Req) (Resp, error),
	reqParser func(r *http.Request, req *Req) error,
	parseBody bool,
	successStatus int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger, ok := logging.GetFromContext(ctx)
		if !ok {
			logger = logging.Nop()
		}

		req := new(Req)

		if parseBody {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Error(ctx, "Failed to read request body", zap.Error(err))
				writeErrorJSON(w, http.StatusInternalServerError, "failed to read request body", "internal")
				return
			}
			if err := json.Unmarshal(body, req); err != nil {
				logger.Warn(ctx, "Failed to parse request body", zap.Error(err))
				writeErrorJSON(w, http.StatusBadRequest, "invalid request body", errdefs.Kind(errdefs.ErrValidation))
				return
			}
		}

		if reqParser != nil {
			if err := reqParser(r, req); err != nil {
				logger.Warn(ctx, "Failed to parse request path", zap.Error(err))
				writeErrorJSON(w, http.StatusBadRequest, err.Error(), errdefs.Kind(errdefs.ErrValidation))
				return
			}
		}

		if err := validate.Struct(req); err != nil {
			logger.Warn(ctx, "Request validation failed", zap.Error(err))
			writeErrorJSON(w, http.StatusBadRequest, validationMessage(err), errdefs.Kind(errdefs.ErrValidation))
			return
		}

		resp, err := call(ctx, req)
		if err != nil {
			statusCode := mapErr(err)
			if statusCode == http.StatusInternalServerError {
				logger.Error(ctx, "request failed", zap.Error(err))
				writeErrorJSON(w, statusCode, http.StatusText(statusCode), errdefs.Kind(err))
				return
			}
			logger.Info(ctx, "request rejected", zap.Error(err))
			writeErrorJSON(w, statusCode, err.Error(), errdefs.Kind(err))
			return
		}

		writeJSON(w, successStatus, resp)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response", "internal")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message, "kind": kind})
	_, _ = w.Write(resp)
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("missing path param: %s", key)
	}
	return val, nil
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	val, err := parsePathParam(r, key)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %q is not a UUID", key, val)
	}
	return id, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a UUID", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
