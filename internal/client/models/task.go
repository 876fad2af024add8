package models

// Task is a reward task as served by the tasks service. Completed is
// per-user and changes only through a verify call.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TaskType    string `json:"task_type,omitempty"`
	Reward      int64  `json:"reward"`
	Icon        string `json:"icon,omitempty"`
	Completed   bool   `json:"completed"`
}

// VerifyResult is the outcome of a task verification. NewBalance carries
// the server-confirmed balance after the reward was credited.
type VerifyResult struct {
	Verified   bool  `json:"verified"`
	Reward     int64 `json:"reward"`
	NewBalance int64 `json:"new_balance"`
}
