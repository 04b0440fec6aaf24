package domain

// PeriodRevenue chiffre d'affaires d'une période
type PeriodRevenue struct {
	Period  int     `json:"period"`
	Revenue float64 `json:"revenue"`
}

// PeriodOrders nombre de commandes distinctes d'une période
type PeriodOrders struct {
	Period int `json:"period"`
	Orders int `json:"orders"`
}

// PeriodAOV panier moyen d'une période
type PeriodAOV struct {
	Period            int     `json:"period"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// GrowthPoint variation mensuelle du chiffre d'affaires; Change nil pour le premier mois
type GrowthPoint struct {
	Month   int      `json:"month"`
	Revenue float64  `json:"revenue"`
	Change  *float64 `json:"change"`
}

// CategoryRevenue chiffre d'affaires d'une catégorie de produits
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// StateRevenue chiffre d'affaires d'un état client
type StateRevenue struct {
	State   string  `json:"customer_state"`
	Revenue float64 `json:"price"`
}

// DeliverySpeedRating note moyenne par délai de livraison en jours
type DeliverySpeedRating struct {
	DeliverySpeed  int     `json:"delivery_speed"`
	AvgReviewScore float64 `json:"avg_review_score"`
}

// DeliveryBucket tranche de délai de livraison
type DeliveryBucket string

const (
	DeliveryFast   DeliveryBucket = "1-3 days"
	DeliveryMedium DeliveryBucket = "4-7 days"
	DeliverySlow   DeliveryBucket = "8+ days"
)

// DeliveryBuckets liste les tranches dans l'ordre
var DeliveryBuckets = []DeliveryBucket{DeliveryFast, DeliveryMedium, DeliverySlow}

// BucketRating note moyenne par tranche de délai
type BucketRating struct {
	DeliveryTime   DeliveryBucket `json:"delivery_time"`
	AvgReviewScore float64        `json:"review_score"`
}

// ScoreShare proportion d'une note dans les avis
type ScoreShare struct {
	Score      int     `json:"review_score"`
	Proportion float64 `json:"proportion"`
}

// StatusShare proportion d'un statut de commande
type StatusShare struct {
	Status     string  `json:"order_status"`
	Proportion float64 `json:"proportion"`
}

// KeyMetrics synthèse pour le tableau de bord
type KeyMetrics struct {
	TotalRevenue             float64 `json:"total_revenue"`
	TotalOrders              int     `json:"total_orders"`
	AverageOrderValue        float64 `json:"average_order_value"`
	AverageReviewScore       float64 `json:"average_review_score"`
	AverageDeliverySpeedDays float64 `json:"average_delivery_speed_days"`
	UniqueCustomers          int     `json:"unique_customers"`
}
