package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shirshiz/studio-crm/internal/entity"
	"github.com/shirshiz/studio-crm/internal/infra/queue"
)

// ValidationErrors carries the itemized result of a rejected save.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// SnapshotReader exposes the current in-memory collection snapshot to the
// write path, read-only.
type SnapshotReader interface {
	Lead(id string) (entity.Lead, bool)
}

// SaveLeadUseCase owns every lead mutation: create, update, delete, and the
// payment-schedule save. Writes are fire-and-forget from the UI's point of
// view; the visible state changes only when the store's change notification
// round-trips back into the snapshot.
type SaveLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Snapshot SnapshotReader
	Events   queue.DealEventPublisherInterface
	Log      *zap.Logger
}

func NewSaveLeadUseCase(
	repo entity.LeadRepositoryInterface,
	snapshot SnapshotReader,
	events queue.DealEventPublisherInterface,
	log *zap.Logger,
) *SaveLeadUseCase {
	return &SaveLeadUseCase{Repo: repo, Snapshot: snapshot, Events: events, Log: log}
}

// Create validates and normalizes a new lead, then writes it to the store.
func (uc *SaveLeadUseCase) Create(ctx context.Context, input SaveLeadInput) (*entity.Lead, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	lead := normalizeLead(input, time.Now())
	lead.EnsureID()

	if _, err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "STORE_CREATE", Message: "שגיאה בשמירה למסד הנתונים"}
	}

	if lead.Status == entity.StatusClosed {
		uc.publishDealClosed(ctx, lead)
	}
	return lead, nil
}

// Update replaces the whole record. Closing a lead that was not closed
// before publishes a deal-closed event.
func (uc *SaveLeadUseCase) Update(ctx context.Context, id string, input SaveLeadInput) (*entity.Lead, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	lead := normalizeLead(input, time.Now())
	lead.ID = id

	// An update that omits the registration stamp keeps the original one,
	// not a fresh default.
	prev, known := uc.Snapshot.Lead(id)
	if known && input.RegDate == "" {
		lead.RegDate = prev.RegDate
		if input.RegTime == "" {
			lead.RegTime = prev.RegTime
		}
	}

	if err := uc.Repo.Update(ctx, id, lead); err != nil {
		return nil, &TechnicalError{Code: "STORE_UPDATE", Message: "שגיאה בעדכון"}
	}

	if lead.Status == entity.StatusClosed && (!known || prev.Status != entity.StatusClosed) {
		uc.publishDealClosed(ctx, lead)
	}
	return lead, nil
}

func (uc *SaveLeadUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Repo.Delete(ctx, id); err != nil {
		return &TechnicalError{Code: "STORE_DELETE", Message: "שגיאה במחיקה"}
	}
	return nil
}

// SavePayments validates a candidate schedule against the lead's quote and
// persists it sorted by date ascending. A failed validation is not an
// error; the itemized result goes back to the caller.
func (uc *SaveLeadUseCase) SavePayments(ctx context.Context, id string, payments []entity.Payment) (ScheduleValidation, error) {
	lead, ok := uc.Snapshot.Lead(id)
	if !ok {
		return ScheduleValidation{}, &DomainError{Code: "LEAD_NOT_FOUND", Message: fmt.Sprintf("lead %s not found", id)}
	}

	result := ValidateSchedule(payments, lead.Quote)
	if !result.Valid {
		return result, nil
	}

	lead.Payments = result.Normalized
	if err := uc.Repo.Update(ctx, id, &lead); err != nil {
		return result, &TechnicalError{Code: "STORE_UPDATE", Message: "שגיאה בעדכון"}
	}
	return result, nil
}

func (uc *SaveLeadUseCase) publishDealClosed(ctx context.Context, lead *entity.Lead) {
	if uc.Events == nil {
		return
	}
	payload := queue.DealClosedPayload{
		LeadID:    lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Quote:     lead.Quote,
		EventType: lead.EventType,
		ClosedAt:  time.Now().Format(DateLayout),
	}
	// The record is already saved; a publish failure must not fail the save.
	if err := uc.Events.PublishDealClosed(ctx, payload); err != nil {
		uc.Log.Warn("deal-closed event not published",
			zap.String("leadId", lead.ID), zap.Error(err))
	}
}

// normalizeLead applies the create-time defaults: status coerced with new
// as fallback, registration date and time stamped from the local clock,
// source defaulted into the closed set.
func normalizeLead(input SaveLeadInput, now time.Time) *entity.Lead {
	status := entity.Status(input.Status)
	if input.Status == 0 {
		status = entity.StatusNew
	}

	source := input.Source
	if source == "" {
		source = entity.SourceOther
	}

	regDate := input.RegDate
	if regDate == "" {
		regDate = now.Format(DateLayout)
	}
	regTime := input.RegTime
	if regTime == "" {
		regTime = now.Format("15:04")
	}

	return &entity.Lead{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		City:         input.City,
		Age:          input.Age,
		Job:          input.Job,
		Source:       source,
		Status:       status,
		Quote:        input.Quote,
		RegDate:      regDate,
		RegTime:      regTime,
		NextCallDate: input.NextCallDate,
		EventDate:    input.EventDate,
		EventType:    input.EventType,
		Event2Date:   input.Event2Date,
		CallDetails:  input.CallDetails,
		Payments:     input.Payments,
	}
}
