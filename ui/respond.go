package ui

import (
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"

	"goattrition/domain/core"
	"goattrition/domain/filter"
	"goattrition/internal/errors"
)

// errorResponse is the JSON error envelope
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// decodeSpec reads a filter specification from the request body. An empty
// body is the unconstrained spec (all rows pass).
func decodeSpec(r *http.Request) (filter.Spec, error) {
	var spec filter.Spec
	err := json.NewDecoder(r.Body).Decode(&spec)
	if err == io.EOF {
		return filter.Spec{}, nil
	}
	if err != nil {
		return filter.Spec{}, errors.InvalidInput("request body is not a valid filter spec")
	}
	return spec, nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	switch {
	case core.IsFieldMissing(err):
		code = errors.CodeFieldMissing
	case core.IsLoadError(err):
		code = errors.CodeLoadError
	case core.IsNotFoundError(err):
		code = errors.CodeNotFound
	}
	respondJSON(w, statusFor(code), errorResponse{Code: code, Error: err.Error()})
}

func statusFor(code string) int {
	switch code {
	case errors.CodeInvalidInput, errors.CodeConfigInvalid:
		return http.StatusBadRequest
	case errors.CodeFieldMissing, errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeLoadError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// nullable converts a matrix for JSON encoding: NaN becomes null, which
// encoding/json cannot express for float64 directly.
func nullable(m [][]float64) [][]*float64 {
	if m == nil {
		return nil
	}
	out := make([][]*float64, len(m))
	for i, row := range m {
		out[i] = make([]*float64, len(row))
		for j := range row {
			if math.IsNaN(row[j]) {
				continue
			}
			v := row[j]
			out[i][j] = &v
		}
	}
	return out
}
