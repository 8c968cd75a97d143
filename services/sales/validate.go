package sales

import (
	"unicode/utf8"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

const (
	maxCashCollected = 10000
	maxFirstNameLen  = 50
	maxLastNameLen   = 100
)

// Accepted total revenue amounts, fixed by the sales offer.
var allowedRevenues = map[float64]bool{5800: true, 6000: true}

// validateUpdates checks a partial update payload. Absent (nil) fields are
// skipped; present fields must all pass before any store call.
func validateUpdates(u models.SaleUpdates) error {
	if u.BotMode != nil && *u.BotMode != models.BotModeFU && *u.BotMode != models.BotModeOCC {
		return ValidationError{Field: "BotMode", Reason: "must be FU or OCC"}
	}
	if u.CashCollected != nil && (*u.CashCollected < 0 || *u.CashCollected > maxCashCollected) {
		return ValidationError{Field: "Firebase_cashCollected", Reason: "must be between 0 and 10000"}
	}
	if u.TotalRevenue != nil && !allowedRevenues[*u.TotalRevenue] {
		return ValidationError{Field: "Firebase_totalRevenue", Reason: "must be 5800 or 6000"}
	}
	if u.FirstName != nil && utf8.RuneCountInString(*u.FirstName) > maxFirstNameLen {
		return ValidationError{Field: "BotFirstName", Reason: "must be at most 50 characters"}
	}
	if u.LastName != nil && utf8.RuneCountInString(*u.LastName) > maxLastNameLen {
		return ValidationError{Field: "BotLastName", Reason: "must be at most 100 characters"}
	}
	return nil
}
