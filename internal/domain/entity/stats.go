package entity

// MonthlyCount compares the current and previous calendar month
type MonthlyCount struct {
	CurrentMonth int `json:"currentMonth"`
	LastMonth    int `json:"lastMonth"`
}

// RoleCount counts users holding a role
type RoleCount struct {
	Total        int `json:"total"`
	CurrentMonth int `json:"currentMonth"`
	LastMonth    int `json:"lastMonth"`
}

// DashboardStats summarizes users and trips
type DashboardStats struct {
	TotalUsers   int          `json:"totalUsers"`
	UsersJoined  MonthlyCount `json:"usersJoined"`
	UserRole     RoleCount    `json:"userRole"`
	TotalTrips   int          `json:"totalTrips"`
	TripsCreated MonthlyCount `json:"tripsCreated"`
}

// GrowthPoint is a per-day bucket
type GrowthPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// TravelStyleCount is the number of trips sharing a travel style
type TravelStyleCount struct {
	TravelStyle string `json:"travelStyle"`
	Count       int    `json:"count"`
}

// TrendDirection describes month over month movement
type TrendDirection string

const (
	TrendIncrement TrendDirection = "increment"
	TrendDecrement TrendDirection = "decrement"
	TrendNoChange  TrendDirection = "no change"
)

// Trend is the change between two monthly counts
type Trend struct {
	Trend      TrendDirection `json:"trend"`
	Percentage float64        `json:"percentage"`
}
