package models

// Decision is the outcome of one rate-limit check. RetryAfter is in whole
// seconds, counted to the close of the window the first request opened, and
// is only meaningful when Allowed is false.
type Decision struct {
	Allowed    bool `json:"allowed"`
	Limit      int  `json:"limit"`
	Remaining  int  `json:"remaining"`
	RetryAfter int  `json:"retry_after,omitempty"`
}
