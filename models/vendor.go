package models

// VendorInfo is one entry of the vendor mapping document, keyed by vendor id
// (Slack member id). The mapping is maintained by the ingestion side; this
// service only reads it.
type VendorInfo struct {
	Name      string `json:"name" firestore:"name"`
	AvatarURL string `json:"avatar_url" firestore:"avatar_url"`
	Email     string `json:"email,omitempty" firestore:"email"`
	IsAdmin   bool   `json:"is_admin,omitempty" firestore:"is_admin"`
}

// VendorMapping is the decoded vendor mapping document: vendor id -> VendorInfo.
type VendorMapping map[string]VendorInfo

// VendorProfile is the public profile payload for a vendor page.
type VendorProfile struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	AvatarURL  string       `json:"avatar_url,omitempty"`
	SlackURL   string       `json:"slack_url,omitempty"`
	Challenges []string     `json:"challenges"`
	Sales      []SaleRecord `json:"sales"`
	Totals     VendorTotals `json:"totals"`
}

// VendorTotals aggregates a vendor's sales for the selected challenge scope.
type VendorTotals struct {
	NbSales       int     `json:"nbSales"`
	CashCollected float64 `json:"cashCollected"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
