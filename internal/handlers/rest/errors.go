package rest

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
)

// statusFor maps an error code to the HTTP status the client sees
func statusFor(code dnderr.Code) int {
	switch code {
	case dnderr.CodeInvalidArgument:
		return http.StatusBadRequest
	case dnderr.CodeNotFound:
		return http.StatusNotFound
	case dnderr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := dnderr.GetCode(err)
	status := statusFor(code)

	resp := errorResponse{
		Code:    string(code),
		Message: err.Error(),
	}
	if fields, ok := dnderr.GetMeta(err)[dnderr.MetaFields].([]string); ok {
		resp.Details = fields
	}

	logger := h.logger.With(
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("code", string(code)),
		zap.Error(err),
	)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed")
		if status == http.StatusInternalServerError {
			// store and driver messages stay in the log
			resp.Code = string(dnderr.CodeInternal)
			resp.Message = "internal server error"
		}
	} else {
		logger.Debug("request rejected")
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
