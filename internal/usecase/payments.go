package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shirshiz/studio-crm/internal/entity"
)

// ScheduleValidation is the outcome of checking a payment schedule against
// a quoted price.
type ScheduleValidation struct {
	Valid  bool              `json:"valid"`
	Sum    float64           `json:"sum"`
	Errors []ValidationError `json:"errors,omitempty"`
	// Normalized is the schedule sorted ascending by date, ready to be
	// persisted. Only set when the schedule is valid.
	Normalized []entity.Payment `json:"normalized,omitempty"`
}

// ValidateSchedule checks that every installment carries a date and a
// strictly positive amount and that the installments sum to the quote
// exactly. Valid schedules come back sorted by date ascending.
func ValidateSchedule(payments []entity.Payment, quote float64) ScheduleValidation {
	var result ScheduleValidation

	if len(payments) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "payments",
			Message: "חייב להיות לפחות תשלום אחד",
		})
		return result
	}

	for i, p := range payments {
		if p.Date == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("payments[%d].date", i),
				Message: "יש למלא תאריך תשלום",
			})
		} else if _, err := time.Parse(DateLayout, p.Date); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("payments[%d].date", i),
				Message: "תאריך תשלום לא תקין",
			})
		}
		if p.Amount <= 0 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("payments[%d].amount", i),
				Message: "יש למלא סכום חיובי",
			})
		}
		result.Sum += p.Amount
	}

	if len(result.Errors) > 0 {
		return result
	}

	if result.Sum != quote {
		result.Errors = append(result.Errors, ValidationError{
			Field: "payments",
			Message: fmt.Sprintf(
				"סכום התשלומים (₪%s) לא תואם להצעת המחיר (₪%s)",
				formatAmount(result.Sum), formatAmount(quote)),
		})
		return result
	}

	sorted := make([]entity.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	result.Valid = true
	result.Normalized = sorted
	return result
}

// FullPaymentTemplate is a single installment for the whole quote, today.
func FullPaymentTemplate(quote float64, now time.Time) []entity.Payment {
	return []entity.Payment{
		{Date: now.Format(DateLayout), Amount: quote, Note: "תשלום מלא"},
	}
}

// DepositTemplate is a 25% deposit today with the balance due one month
// out. The balance is the exact remainder so the schedule always sums to
// the quote.
func DepositTemplate(quote float64, now time.Time) []entity.Payment {
	deposit := math.Round(quote / 4)
	return []entity.Payment{
		{Date: now.Format(DateLayout), Amount: deposit, Note: "מקדמה 25%"},
		{Date: now.AddDate(0, 1, 0).Format(DateLayout), Amount: quote - deposit, Note: "יתרה ביום האירוע"},
	}
}

// InstallmentsTemplate is three equal monthly installments; the rounding
// remainder is absorbed into the last one so the sum equals the quote
// exactly (1000 -> 333, 333, 334).
func InstallmentsTemplate(quote float64, now time.Time) []entity.Payment {
	per := math.Round(quote / 3)
	payments := make([]entity.Payment, 0, 3)
	for i := 0; i < 3; i++ {
		amount := per
		if i == 2 {
			amount = quote - per*2
		}
		payments = append(payments, entity.Payment{
			Date:   now.AddDate(0, i, 0).Format(DateLayout),
			Amount: amount,
			Note:   fmt.Sprintf("תשלום %d/3", i+1),
		})
	}
	return payments
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
