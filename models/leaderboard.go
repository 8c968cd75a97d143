package models

// LeaderboardEntry is one document of the aggregate leaderboard collection,
// maintained by the external ingestion process and read-only here.
type LeaderboardEntry struct {
	ID            string  `json:"id" firestore:"-"`
	Name          string  `json:"name" firestore:"name"`
	NbSales       int     `json:"nbSales" firestore:"nbSales"`
	CashCollected float64 `json:"cashCollected" firestore:"cashCollected"`
	TotalRevenue  float64 `json:"totalRevenue" firestore:"totalRevenue"`
	LastComment   string  `json:"lastComment,omitempty" firestore:"lastComment"`
	AvatarImage   string  `json:"avatar_image,omitempty" firestore:"avatar_image"`
}

// RankedEntry decorates a leaderboard entry with ranking state for display.
type RankedEntry struct {
	LeaderboardEntry
	CurrentRank  int    `json:"currentRank"`
	PreviousRank int    `json:"previousRank,omitempty"`
	RankChange   int    `json:"rankChange"`
	BestRank     int    `json:"bestRank,omitempty"`
	SlackURL     string `json:"slack_url,omitempty"`
}

// LeaderboardSnapshot is the ranked view served to the dashboard.
type LeaderboardSnapshot struct {
	Entries       []RankedEntry `json:"entries"`
	TotalSales    int           `json:"totalSales"`
	TotalCash     float64       `json:"totalCash"`
	TotalRevenue  float64       `json:"totalRevenue"`
	UpdatedAtUnix int64         `json:"updatedAt"`
}
