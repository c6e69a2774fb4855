package repair

// Result is the full report of one repair run. Logs keep the per-item
// wording the operator pastes into the incident thread.
type Result struct {
	Logs          []string `json:"logs"`
	Fixed         int      `json:"fixed"`
	Collisions    int      `json:"collisions"`
	Failed        int      `json:"failed"`
	RemovedFuture int64    `json:"removed_future"`
}
