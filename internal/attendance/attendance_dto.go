package attendance

// ToggleRequest carries the status the operator saw on screen so a stale
// page cannot flip a row that already changed underneath it.
type ToggleRequest struct {
	CurrentStatus string `json:"current_status" binding:"required,oneof=official absent"`
}

type ToggleResponse struct {
	ID         string `json:"id"`
	LoginID    string `json:"login_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	IsOfficial bool   `json:"is_official"`
}

// RosterRow is one line of the admin day roster.
type RosterRow struct {
	ID          string `json:"id"`
	LoginID     string `json:"login_id"`
	DisplayName string `json:"display_name"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	StoreCode   string `json:"store_code,omitempty"`
}
