package model

// TuitionClass represents a tuition-class record.
//
// Dates, currency, and status are carried as opaque strings. None of the
// descriptive fields are validated; callers rely on the store accepting
// whatever shape the frontend submits.
type TuitionClass struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subject   string  `json:"subject"`
	Grade     string  `json:"grade"`
	Teacher   string  `json:"teacher"`
	Schedule  string  `json:"schedule"`
	Room      string  `json:"room"`
	Capacity  int     `json:"capacity"`
	Fee       float64 `json:"fee"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}
