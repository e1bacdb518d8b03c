package store

import (
	"encoding/json"
	"errors"

	"github.com/Spok95/school-admin-client/internal/transport"
)

// Message сводит ошибку операции к одной строке для баннера.
// Порядок предпочтения: detail → message → non_field_errors[0] →
// запасной текст операции.
func Message(err error, fallback string) string {
	var he *transport.HTTPError
	if errors.As(err, &he) && len(he.Body) > 0 {
		var payload struct {
			Detail         string   `json:"detail"`
			Message        string   `json:"message"`
			NonFieldErrors []string `json:"non_field_errors"`
		}
		if json.Unmarshal(he.Body, &payload) == nil {
			switch {
			case payload.Detail != "":
				return payload.Detail
			case payload.Message != "":
				return payload.Message
			case len(payload.NonFieldErrors) > 0:
				return payload.NonFieldErrors[0]
			}
		}
	}
	return fallback
}
