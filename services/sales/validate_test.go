package sales

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Martial4034/gigi-sales-leaderboard/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestValidateUpdates_BotMode(t *testing.T) {
	assert.NoError(t, validateUpdates(models.SaleUpdates{BotMode: strPtr("FU")}))
	assert.NoError(t, validateUpdates(models.SaleUpdates{BotMode: strPtr("OCC")}))

	err := validateUpdates(models.SaleUpdates{BotMode: strPtr("XX")})
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "BotMode", vErr.Field)
}

func TestValidateUpdates_CashCollectedBoundaries(t *testing.T) {
	// Boundaries are inclusive.
	assert.NoError(t, validateUpdates(models.SaleUpdates{CashCollected: f64Ptr(0)}))
	assert.NoError(t, validateUpdates(models.SaleUpdates{CashCollected: f64Ptr(10000)}))

	assert.Error(t, validateUpdates(models.SaleUpdates{CashCollected: f64Ptr(-1)}))
	assert.Error(t, validateUpdates(models.SaleUpdates{CashCollected: f64Ptr(10001)}))
}

func TestValidateUpdates_TotalRevenueSet(t *testing.T) {
	assert.NoError(t, validateUpdates(models.SaleUpdates{TotalRevenue: f64Ptr(5800)}))
	assert.NoError(t, validateUpdates(models.SaleUpdates{TotalRevenue: f64Ptr(6000)}))

	assert.Error(t, validateUpdates(models.SaleUpdates{TotalRevenue: f64Ptr(5900)}))
}

func TestValidateUpdates_NameLengths(t *testing.T) {
	assert.NoError(t, validateUpdates(models.SaleUpdates{FirstName: strPtr(strings.Repeat("x", 50))}))
	assert.NoError(t, validateUpdates(models.SaleUpdates{LastName: strPtr(strings.Repeat("x", 100))}))

	err := validateUpdates(models.SaleUpdates{FirstName: strPtr(strings.Repeat("x", 51))})
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "BotFirstName", vErr.Field)

	assert.Error(t, validateUpdates(models.SaleUpdates{LastName: strPtr(strings.Repeat("x", 101))}))
}

func TestValidateUpdates_AbsentFieldsSkipped(t *testing.T) {
	assert.NoError(t, validateUpdates(models.SaleUpdates{}))
}
