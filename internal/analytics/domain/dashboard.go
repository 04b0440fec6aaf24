package domain

// TrendDirection sens d'une évolution affichée sur une carte
type TrendDirection string

const (
	TrendPositive TrendDirection = "positive"
	TrendNegative TrendDirection = "negative"
	TrendNeutral  TrendDirection = "neutral"
)

// Trend évolution formatée par rapport à la période précédente
type Trend struct {
	Text      string         `json:"text"`
	Direction TrendDirection `json:"direction"`
}

// KPICard carte d'indicateur du tableau de bord
type KPICard struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
	Trend Trend   `json:"trend"`
}

// MonthlySeries chiffre d'affaires mensuel d'une année
type MonthlySeries struct {
	Year   int             `json:"year"`
	Points []PeriodRevenue `json:"points"`
}

// DeliveryCard carte du délai moyen de livraison
type DeliveryCard struct {
	AverageDays float64 `json:"average_days"`
	Trend       Trend   `json:"trend"`
}

// ReviewCard carte de la note moyenne
type ReviewCard struct {
	AverageScore float64 `json:"average_score"`
	FullStars    int     `json:"full_stars"`
	HalfStar     bool    `json:"half_star"`
	Display      string  `json:"display"`
}

// Dashboard données complètes du tableau de bord, sans rendu
type Dashboard struct {
	CurrentYear     int               `json:"current_year"`
	PreviousYear    int               `json:"previous_year"`
	KPIs            []KPICard         `json:"kpis"`
	RevenueCurrent  MonthlySeries     `json:"revenue_current"`
	RevenuePrevious *MonthlySeries    `json:"revenue_previous,omitempty"`
	TopCategories   []CategoryRevenue `json:"top_categories"`
	RevenueByState  []StateRevenue    `json:"revenue_by_state"`
	DeliveryRatings []BucketRating    `json:"delivery_ratings"`
	Delivery        DeliveryCard      `json:"delivery"`
	Review          ReviewCard        `json:"review"`
}
