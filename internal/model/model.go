package model

import "time"

// DailyRecord is one synthesized day of ward or household waste activity.
type DailyRecord struct {
	Date                    time.Time `json:"date"`
	WasteGeneratedKg        float64   `json:"waste_generated_kg"`
	SegregationRatePct      float64   `json:"segregation_rate_pct"`
	CollectionEfficiencyPct float64   `json:"collection_efficiency_pct"`
	ProcessingRatePct       float64   `json:"processing_rate_pct"`
	RecyclingRatePct        float64   `json:"recycling_rate_pct"`
}

// WasteTypeShare is one category's slice of a day's waste.
type WasteTypeShare struct {
	Type               string  `json:"type"`
	AmountKg           float64 `json:"amount_kg"`
	SegregatedFraction float64 `json:"segregated_fraction"`
}

// TypeEntry is a dated per-category sample used for stacked trend charts.
type TypeEntry struct {
	Date       time.Time `json:"date"`
	Type       string    `json:"type"`
	AmountKg   float64   `json:"amount_kg"`
	Segregated bool      `json:"segregated"`
}

// SummaryStats is the aggregate view over a daily series.
type SummaryStats struct {
	Days              int     `json:"days"`
	TotalWasteKg      float64 `json:"total_waste_kg"`
	AvgDailyWasteKg   float64 `json:"avg_daily_waste_kg"`
	AvgSegregationPct float64 `json:"avg_segregation_pct"`
	AvgCollectionPct  float64 `json:"avg_collection_pct"`
	AvgProcessingPct  float64 `json:"avg_processing_pct"`
	AvgRecyclingPct   float64 `json:"avg_recycling_pct"`
	Trend             string  `json:"trend"`
}

// TypeSummary maps one category to its share of the whole.
type TypeSummary struct {
	Category   string  `json:"category"`
	TotalKg    float64 `json:"total_kg"`
	Percentage float64 `json:"percentage"`
	Trend      string  `json:"trend,omitempty"`
}

// WardScore is a ward's comparative cleanliness standing.
type WardScore struct {
	Ward      string  `json:"ward"`
	Score     int     `json:"score"`
	Category  string  `json:"category"`
	ChangePct float64 `json:"change_pct"`
	Rank      int     `json:"rank"`
}

// WardMapPoint places a ward's performance on the city map.
type WardMapPoint struct {
	Ward            string  `json:"ward"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Score           int     `json:"score"`
	Category        string  `json:"category"`
	CollectedTonnes float64 `json:"collected_tonnes"`
	SegregationPct  float64 `json:"segregation_pct"`
	CollectionPct   float64 `json:"collection_pct"`
}

// MonthPoints is one month's reward points total.
type MonthPoints struct {
	Month  string `json:"month"`
	Points int    `json:"points"`
}

// Achievement is a badge a household can earn through the rewards program.
type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	EarnedOn    string `json:"earned_on,omitempty"`
}

// RewardProfile is the full gamified rewards state for one household.
type RewardProfile struct {
	Points               int           `json:"points"`
	CurrentStreak        int           `json:"current_streak"`
	LongestStreak        int           `json:"longest_streak"`
	PropertyTaxRebatePct float64       `json:"property_tax_rebate_pct"`
	SWMDiscountPct       float64       `json:"swm_discount_pct"`
	WaterBillDiscountPct float64       `json:"water_bill_discount_pct"`
	CertificateEligible  bool          `json:"certificate_eligible"`
	NextMilestone        int           `json:"next_milestone"`
	History              []MonthPoints `json:"history"`
	Achievements         []Achievement `json:"achievements"`
}

// DisposalStatus records whether a household put its waste out on a given day.
type DisposalStatus string

const (
	Disposed DisposalStatus = "disposed"
	Missed   DisposalStatus = "missed"
	NoData   DisposalStatus = "no_data"
)

// DisposalDay is one calendar cell of a household's disposal history.
type DisposalDay struct {
	Date   time.Time      `json:"date"`
	Status DisposalStatus `json:"status"`
}

// CalendarStats summarizes a month of disposal history.
type CalendarStats struct {
	TotalDays       int     `json:"total_days"`
	Disposed        int     `json:"disposed"`
	Missed          int     `json:"missed"`
	DisposalRatePct float64 `json:"disposal_rate_pct"`
	MissedRatePct   float64 `json:"missed_rate_pct"`
}

// CleanlinessComponents are the weighted inputs to a cleanliness score.
type CleanlinessComponents struct {
	SegregationScore int `json:"segregation_score"`
	CollectionScore  int `json:"collection_score"`
	BlackSpotsScore  int `json:"black_spots_score"`
	CitizenRating    int `json:"citizen_rating"`
}

// CleanlinessReport is the blended cleanliness score for an identity.
type CleanlinessReport struct {
	OverallScore float64               `json:"overall_score"`
	Components   CleanlinessComponents `json:"components"`
	Trend        string                `json:"trend"`
}

// Complaint is an active waste-management issue in a ward.
type Complaint struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	DateReported string `json:"date_reported"`
	AgeDays      int    `json:"age_days"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Votes        int    `json:"votes"`
}

// WeekdayStat is the Mon-Sun waste generation profile.
type WeekdayStat struct {
	Day                string  `json:"day"`
	WasteGeneratedKg   float64 `json:"waste_generated_kg"`
	SegregationRatePct float64 `json:"segregation_rate_pct"`
}

// User is a registered citizen account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Status   string `json:"status"`
}

// WasteMetricRow is a persisted city-level metric sample.
type WasteMetricRow struct {
	ID               int    `json:"id"`
	Date             string `json:"date"`
	Volume           int    `json:"volume"`
	CleanlinessScore int    `json:"cleanliness_score"`
}
