package types

import "encoding/json"

// RawObject carries a free-form JSON value through unchanged. The model's goal
// output has no fixed shape, so it is passed to the caller verbatim.
type RawObject = json.RawMessage

// Template is a reusable routine the assistant generates for the user.
type Template struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ActionItem is a concrete task with an optional due timestamp in
// "YYYY-MM-DD HH:MM:SS" format.
type ActionItem struct {
	Title string `json:"title"`
	Due   string `json:"due,omitempty"`
}

// Reminder frequencies accepted from the model.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
	FrequencyCustom = "custom"
)

type Reminder struct {
	DayOfWeek *string `json:"day_of_week"` // nil means every day
	Frequency string  `json:"frequency"`   // daily, weekly, or custom
	Time      string  `json:"time"`        // HH:MM:SS
	Message   string  `json:"message"`
}
