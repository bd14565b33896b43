package models

// Review is customer feedback shown on service detail pages.
type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"` // relative display label, e.g. "2 days ago"
}
