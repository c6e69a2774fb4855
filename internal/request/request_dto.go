package request

// Proposal is one optional per-date time override. "OFF" on either side
// means the staff member wants the whole day off.
type Proposal struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// LoginID is usually taken from the authenticated token; the body field
// only matters when an admin files a request on behalf of someone else.
type ValidateShiftRequest struct {
	LoginID   string              `json:"login_id"`
	Dates     []string            `json:"dates" binding:"required,min=1"`
	Proposals map[string]Proposal `json:"proposals"`
}

type SubmitShiftRequest struct {
	LoginID   string              `json:"login_id"`
	Dates     []string            `json:"dates" binding:"required,min=1"`
	Proposals map[string]Proposal `json:"proposals"`
}

// DateCheck is the validator's verdict for one candidate date.
type DateCheck struct {
	Date          string `json:"date"`
	BaselineStart string `json:"baseline_start"`
	BaselineEnd   string `json:"baseline_end"`
	Start         string `json:"start"`
	End           string `json:"end"`
	NewRequest    bool   `json:"new_request"`
	Redundant     bool   `json:"redundant"`
	TimeInverted  bool   `json:"time_inverted"`
	Past          bool   `json:"past"`
}

type Evaluation struct {
	Checks    []DateCheck `json:"checks"`
	CanSubmit bool        `json:"can_submit"`
}

type ShiftResponse struct {
	ID                 string  `json:"id"`
	LoginID            string  `json:"login_id"`
	Date               string  `json:"date"`
	Status             string  `json:"status"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	HPStartTime        *string `json:"hp_start_time,omitempty"`
	HPEndTime          *string `json:"hp_end_time,omitempty"`
	IsOfficialPreExist bool    `json:"is_official_pre_exist"`
	StoreCode          string  `json:"store_code,omitempty"`
}

type SubmitResponse struct {
	Submitted int         `json:"submitted"`
	Failed    int         `json:"failed"`
	Total     int         `json:"total"`
	Checks    []DateCheck `json:"checks,omitempty"`
}
