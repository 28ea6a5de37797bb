package usecase

import "github.com/shirshiz/studio-crm/internal/entity"

// SaveLeadInput is the whole-record payload the UI sends on create and on
// update. Dates are ISO calendar date strings; missing numerics arrive
// as zero.
type SaveLeadInput struct {
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	City         string           `json:"city"`
	Age          string           `json:"age"`
	Job          string           `json:"job"`
	Source       string           `json:"source"`
	Status       int              `json:"status"`
	Quote        float64          `json:"quote"`
	RegDate      string           `json:"regDate"`
	RegTime      string           `json:"regTime"`
	NextCallDate string           `json:"nextCallDate"`
	EventDate    string           `json:"eventDate"`
	EventType    string           `json:"eventType"`
	Event2Date   string           `json:"event2Date"`
	CallDetails  string           `json:"callDetails"`
	Payments     []entity.Payment `json:"payments"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
