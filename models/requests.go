package models

// SaleUpdates is the partial update payload for a sale record. Pointer fields
// distinguish "absent" from a legitimate zero value, so a cash amount of 0 is
// applied rather than skipped.
type SaleUpdates struct {
	BotMode       *string  `json:"BotMode,omitempty"`
	CashCollected *float64 `json:"Firebase_cashCollected,omitempty"`
	TotalRevenue  *float64 `json:"Firebase_totalRevenue,omitempty"`
	Commentaire   *string  `json:"Botcommentaire,omitempty"`
	FirstName     *string  `json:"BotFirstName,omitempty"`
	LastName      *string  `json:"BotLastName,omitempty"`
}

// IsEmpty reports whether no field is present.
func (u SaleUpdates) IsEmpty() bool {
	return u.BotMode == nil && u.CashCollected == nil && u.TotalRevenue == nil &&
		u.Commentaire == nil && u.FirstName == nil && u.LastName == nil
}

// UpdateSaleRequest is the body of POST /api/vendeur/:id/update-sale.
type UpdateSaleRequest struct {
	SaleID    string        `json:"saleId"`
	Challenge string        `json:"challenge"`
	Timestamp SaleTimestamp `json:"timestamp"`
	Updates   SaleUpdates   `json:"updates"`
}

// DeleteSaleRequest is the body of DELETE /api/vendeur/:id/delete-sale.
type DeleteSaleRequest struct {
	SaleID    string        `json:"saleId"`
	Challenge string        `json:"challenge"`
	Timestamp SaleTimestamp `json:"timestamp"`
}
