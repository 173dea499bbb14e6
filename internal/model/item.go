package model

import "time"

// Item represents a tracked food item belonging to one user.
type Item struct {
	ID         int64     `json:"id"`
	OwnerID    int64     `json:"owner_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	ExpiryDate time.Time `json:"expiry_date"`
	AddedDate  time.Time `json:"added_date"`
	PhotoMime  string    `json:"photo_mime,omitempty"`
}

// ItemUpdate describes a partial item edit. Nil fields are left unchanged.
type ItemUpdate struct {
	Name       *string    `json:"name"`
	Category   *string    `json:"category"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// SearchQuery describes an owner-scoped item search. Text is an approximate
// match against the item name; Category is an exact match; From/To bound the
// expiry date inclusively. Zero values mean "no constraint".
type SearchQuery struct {
	OwnerID  int64
	Text     string
	Category string
	From     *time.Time
	To       *time.Time
}

// Stats summarizes one user's inventory by expiry state.
type Stats struct {
	TotalItems   int `json:"total_items"`
	Expired      int `json:"expired"`
	ExpiringSoon int `json:"expiring_soon"`
	Fresh        int `json:"fresh"`
}

// ExpiringSoonDays is the window, in days, counted as "expiring soon" in stats.
const ExpiringSoonDays = 5

// Categories is the fixed list of food categories.
var Categories = []string{
	"Dairy", "Vegetables", "Fruits", "Meat", "Seafood",
	"Grains", "Bakery", "Beverages", "Condiments", "Other",
}

// CategoryOther is the default category for uncategorized items.
const CategoryOther = "Other"

// Expiry statuses, in priority order from most to least urgent.
const (
	StatusExpired      = "expired"
	StatusExpiresToday = "expires_today"
	StatusCritical     = "critical"
	StatusWarning      = "warning"
	StatusFresh        = "fresh"
)

// StatusPriority lists expiry statuses from most to least urgent.
var StatusPriority = []string{
	StatusExpired, StatusExpiresToday, StatusCritical, StatusWarning, StatusFresh,
}

// DaysUntilExpiry returns whole days between now's calendar date and the
// item's expiry date. Negative for already-expired items.
func (i Item) DaysUntilExpiry(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expiry := time.Date(i.ExpiryDate.Year(), i.ExpiryDate.Month(), i.ExpiryDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(today).Hours() / 24)
}

// ExpiryStatus buckets a days-until-expiry value.
func ExpiryStatus(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return StatusExpired
	case daysLeft == 0:
		return StatusExpiresToday
	case daysLeft <= 3:
		return StatusCritical
	case daysLeft <= 7:
		return StatusWarning
	default:
		return StatusFresh
	}
}

// Alert pairs an item with its computed expiry state.
type Alert struct {
	Item     Item   `json:"item"`
	DaysLeft int    `json:"days_left"`
	Status   string `json:"status"`
}
