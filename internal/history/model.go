package history

// Item is one persisted past assessment. Items are immutable after creation;
// they leave the collection only through deletion, clearing, or eviction.
type Item struct {
	ID             string   `json:"id"`
	Timestamp      int64    `json:"timestamp"` // creation instant, Unix milliseconds
	Score          int      `json:"score"`
	RiskCategory   string   `json:"risk_category"`
	Concerns       []string `json:"concerns"`
	ImagesAnalyzed int      `json:"images_analyzed"`
	Thumbnail      string   `json:"thumbnail,omitempty"`
}
