// Package respond contains small helpers for writing JSON responses.
package respond

import (
	"encoding/json"
	"net/http"
)

type detailBody struct {
	Detail string `json:"detail"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Detail writes the `{"detail": "..."}` error envelope used across the API.
func Detail(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, detailBody{Detail: detail})
}
