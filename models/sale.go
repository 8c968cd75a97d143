package models

import (
	"encoding/json"
	"time"
)

// Sale bot modes.
const (
	BotModeFU  = "FU"
	BotModeOCC = "OCC"
)

// SaleRecord is a single sale document inside a challenge collection. Records
// carry no stable primary key of their own; (id_slack, timestamp) is relied
// upon as the composite key, with the Firestore document id as the preferred
// address when the caller knows it.
type SaleRecord struct {
	IDSlack       string    `json:"id_slack" firestore:"id_slack"`
	Timestamp     time.Time `json:"-" firestore:"timestamp"`
	CashCollected float64   `json:"Firebase_cashCollected" firestore:"Firebase_cashCollected"`
	TotalRevenue  float64   `json:"Firebase_totalRevenue" firestore:"Firebase_totalRevenue"`
	BotMode       string    `json:"BotMode,omitempty" firestore:"BotMode"`
	Commentaire   string    `json:"Botcommentaire,omitempty" firestore:"Botcommentaire"`
	FirstName     string    `json:"BotFirstName,omitempty" firestore:"BotFirstName"`
	LastName      string    `json:"BotLastName,omitempty" firestore:"BotLastName"`

	// Out-of-band fields, populated by the repository.
	DocID     string `json:"saleId" firestore:"-"`
	Challenge string `json:"challenge,omitempty" firestore:"-"`
}

// MarshalJSON serializes the record with its timestamp in the wire form the
// dashboard sends back when addressing it.
func (s SaleRecord) MarshalJSON() ([]byte, error) {
	type alias SaleRecord
	return json.Marshal(struct {
		alias
		Timestamp SaleTimestamp `json:"timestamp"`
	}{alias(s), s.WireTimestamp()})
}

// WireTimestamp returns the timestamp in its wire form.
func (s SaleRecord) WireTimestamp() SaleTimestamp {
	return SaleTimestamp{
		Seconds:     s.Timestamp.Unix(),
		Nanoseconds: int64(s.Timestamp.Nanosecond()),
	}
}

// SaleTimestamp is the wire form of a Firestore timestamp, as the dashboard
// front-end sends it back when addressing a record.
type SaleTimestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// Matches reports whether t identifies the given record time exactly.
func (t SaleTimestamp) Matches(ts time.Time) bool {
	return ts.Unix() == t.Seconds && int64(ts.Nanosecond()) == t.Nanoseconds
}

// IsZero reports whether the wire timestamp is unset.
func (t SaleTimestamp) IsZero() bool {
	return t.Seconds == 0 && t.Nanoseconds == 0
}
