package entity

import (
	"context"

	"github.com/google/uuid"
)

// Lead statuses. Stored as plain integers in the leads collection.
type Status int

const (
	StatusNew        Status = 1
	StatusInProgress Status = 2
	StatusClosed     Status = 3
	StatusIrrelevant Status = 4
)

// StatusMeta is the display metadata attached to a status.
type StatusMeta struct {
	Key   string
	Label string
}

var statusMeta = map[Status]StatusMeta{
	StatusNew:        {Key: "new", Label: "חדש"},
	StatusInProgress: {Key: "inProgress", Label: "בתהליך"},
	StatusClosed:     {Key: "closed", Label: "נסגר"},
	StatusIrrelevant: {Key: "irrelevant", Label: "לא רלוונטי"},
}

// Meta returns display metadata for the status. Unknown values get a
// neutral "other" bucket instead of failing.
func (s Status) Meta() StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return StatusMeta{Key: "other", Label: "אחר"}
}

func (s Status) Valid() bool {
	_, ok := statusMeta[s]
	return ok
}

// IsActive reports whether a lead is still being worked (new or in progress).
func (s Status) IsActive() bool {
	return s == StatusNew || s == StatusInProgress
}

// Lead sources.
const (
	SourceInstagram = "instagram"
	SourceFacebook  = "facebook"
	SourceTikTok    = "tiktok"
	SourceReferral  = "referral"
	SourceShirshiz  = "shirshiz"
	SourceOther     = "other"
)

var sourceLabels = map[string]string{
	SourceInstagram: "אינסטגרם",
	SourceFacebook:  "פייסבוק",
	SourceTikTok:    "טיקטוק",
	SourceReferral:  "חבר מביא חבר",
	SourceShirshiz:  "SHIRSHIZ",
	SourceOther:     "אחר",
}

// SourceLabel returns the display label for a source, falling back to the
// "other" label for unknown or empty values.
func SourceLabel(source string) string {
	if l, ok := sourceLabels[source]; ok {
		return l
	}
	return sourceLabels[SourceOther]
}

// KnownSource reports whether source is one of the closed set.
func KnownSource(source string) bool {
	_, ok := sourceLabels[source]
	return ok
}

// Event types for a booked offering.
const (
	EventTypePro     = "pro_workshop"     // "מאפס למקצוענית"
	EventTypeVintage = "vintage_workshop" // "סדנת וינטאג'"
	EventTypeOther   = "other"
)

var eventTypeLabels = map[string]string{
	EventTypePro:     "מאפס למקצוענית",
	EventTypeVintage: "סדנת וינטאג'",
	EventTypeOther:   "אחר",
}

// EventTypeLabel returns the display label for an event type, falling back
// to "other" for unknown or empty values.
func EventTypeLabel(eventType string) string {
	if l, ok := eventTypeLabels[eventType]; ok {
		return l
	}
	return eventTypeLabels[EventTypeOther]
}

// Payment is a single installment in a lead's payment schedule.
type Payment struct {
	Date   string  `bson:"date" json:"date"`
	Amount float64 `bson:"amount" json:"amount"`
	Note   string  `bson:"note,omitempty" json:"note,omitempty"`
}

// Lead is a prospective or closed customer tracked through the pipeline.
// Dates are stored as ISO calendar date strings ("2006-01-02"); optional
// dates are empty when unset.
type Lead struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	City         string    `bson:"city,omitempty" json:"city,omitempty"`
	Age          string    `bson:"age,omitempty" json:"age,omitempty"`
	Job          string    `bson:"job,omitempty" json:"job,omitempty"`
	Source       string    `bson:"source" json:"source"`
	Status       Status    `bson:"status" json:"status"`
	Quote        float64   `bson:"quote,omitempty" json:"quote"`
	RegDate      string    `bson:"regDate" json:"regDate"`
	RegTime      string    `bson:"regTime,omitempty" json:"regTime,omitempty"`
	NextCallDate string    `bson:"nextCallDate,omitempty" json:"nextCallDate,omitempty"`
	EventDate    string    `bson:"eventDate,omitempty" json:"eventDate,omitempty"`
	EventType    string    `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Event2Date   string    `bson:"event2Date,omitempty" json:"event2Date,omitempty"`
	CallDetails  string    `bson:"callDetails,omitempty" json:"callDetails,omitempty"`
	Payments     []Payment `bson:"payments,omitempty" json:"payments,omitempty"`
}

// EnsureID mints a document id when the lead has none yet.
func (l *Lead) EnsureID() string {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return l.ID
}

// HasSecondSession reports whether event2Date is interpretable: only a
// closed pro-workshop lead has a second session.
func (l *Lead) HasSecondSession() bool {
	return l.Event2Date != "" && l.EventType == EventTypePro && l.Status == StatusClosed
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) (string, error)
	Update(ctx context.Context, id string, lead *Lead) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]Lead, error)

	// Subscribe emits a fully materialized snapshot of the collection,
	// ordered by regDate descending, once immediately and again after
	// every change, until ctx is cancelled.
	Subscribe(ctx context.Context) (<-chan []Lead, error)
}
