package item

// Item workflow statuses. The wire values are the Spanish strings the
// deployed frontend sends and renders; anything else is rejected at the
// input boundary.
const (
	StatusPending    = "Pendiente"
	StatusInProgress = "En progreso"
	StatusCompleted  = "Completado"
)

// ValidStatus reports whether s is one of the three accepted statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type (
	Item struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}

	CreateItemIn struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}

	UpdateItemIn struct {
		Name   *string `json:"name,omitempty"`
		Status *string `json:"status,omitempty"`
	}

	// DataResponse is the payload of the legacy /api/data endpoint: the full
	// item list plus the acting username.
	DataResponse struct {
		Items      []Item `json:"items"`
		UserActive string `json:"user_active"`
	}
)
