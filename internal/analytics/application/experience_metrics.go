package application

import (
	"ecomdash/internal/analytics/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	reviewsdomain "ecomdash/internal/reviews/domain"
)

// reviewIndex notes non nulles par commande
type reviewIndex map[ordersdomain.OrderID][]int

func indexReviews(reviews []*reviewsdomain.Review) reviewIndex {
	idx := make(reviewIndex, len(reviews))
	for _, r := range reviews {
		if score, ok := r.Score(); ok {
			idx[r.OrderID()] = append(idx[r.OrderID()], score)
		}
	}
	return idx
}

// matchedScores notes des commandes distinctes de la table
func (idx reviewIndex) matchedScores(sales domain.SalesFactTable) []int {
	var scores []int
	for _, id := range sales.OrderIDs() {
		scores = append(scores, idx[id]...)
	}
	return scores
}

type meanAcc struct {
	sum   float64
	count int
}

func (m *meanAcc) add(v float64) {
	m.sum += v
	m.count++
}

func (m meanAcc) mean() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

// DeliverySpeedRatingCorrelation note moyenne par délai de livraison (jours), ordre croissant.
// Chaque item est joint à chaque avis de sa commande; les délais nuls sont ignorés.
func DeliverySpeedRatingCorrelation(sales domain.SalesFactTable, reviews []*reviewsdomain.Review) []domain.DeliverySpeedRating {
	idx := indexReviews(reviews)

	groups := make(map[int]*meanAcc)
	for i := range sales {
		if sales[i].DeliverySpeed == nil {
			continue
		}
		speed := *sales[i].DeliverySpeed
		for _, score := range idx[sales[i].OrderID] {
			if groups[speed] == nil {
				groups[speed] = &meanAcc{}
			}
			groups[speed].add(float64(score))
		}
	}

	result := make([]domain.DeliverySpeedRating, 0, len(groups))
	for _, speed := range sortedKeys(groups) {
		result = append(result, domain.DeliverySpeedRating{DeliverySpeed: speed, AvgReviewScore: groups[speed].mean()})
	}
	return result
}

// CategorizeDeliveryTime classe un délai en jours: <=3, 4 à 7, au-delà de 7
func CategorizeDeliveryTime(days int) domain.DeliveryBucket {
	switch {
	case days <= 3:
		return domain.DeliveryFast
	case days <= 7:
		return domain.DeliveryMedium
	default:
		return domain.DeliverySlow
	}
}

// DeliveryTimeRatingCorrelation note moyenne par tranche de délai.
// Une ligne par commande avant la jointure, pour ne pas pondérer par le nombre d'items.
func DeliveryTimeRatingCorrelation(sales domain.SalesFactTable, reviews []*reviewsdomain.Review) []domain.BucketRating {
	idx := indexReviews(reviews)

	seen := make(map[ordersdomain.OrderID]struct{}, len(sales))
	groups := make(map[domain.DeliveryBucket]*meanAcc, len(domain.DeliveryBuckets))
	for i := range sales {
		if _, ok := seen[sales[i].OrderID]; ok {
			continue
		}
		seen[sales[i].OrderID] = struct{}{}

		if sales[i].DeliverySpeed == nil {
			continue
		}
		bucket := CategorizeDeliveryTime(*sales[i].DeliverySpeed)
		for _, score := range idx[sales[i].OrderID] {
			if groups[bucket] == nil {
				groups[bucket] = &meanAcc{}
			}
			groups[bucket].add(float64(score))
		}
	}

	result := make([]domain.BucketRating, 0, len(groups))
	for _, bucket := range domain.DeliveryBuckets {
		if acc, ok := groups[bucket]; ok {
			result = append(result, domain.BucketRating{DeliveryTime: bucket, AvgReviewScore: acc.mean()})
		}
	}
	return result
}

// AverageReviewScore moyenne des notes des commandes distinctes de la table
func AverageReviewScore(sales domain.SalesFactTable, reviews []*reviewsdomain.Review) float64 {
	var acc meanAcc
	for _, score := range indexReviews(reviews).matchedScores(sales) {
		acc.add(float64(score))
	}
	return acc.mean()
}

// AverageDeliverySpeed délai moyen en jours, délais nuls exclus
func AverageDeliverySpeed(sales domain.SalesFactTable) float64 {
	var acc meanAcc
	for i := range sales {
		if sales[i].DeliverySpeed != nil {
			acc.add(float64(*sales[i].DeliverySpeed))
		}
	}
	return acc.mean()
}

// ReviewScoreDistribution proportion de chaque note, ordre croissant des notes
func ReviewScoreDistribution(sales domain.SalesFactTable, reviews []*reviewsdomain.Review) []domain.ScoreShare {
	scores := indexReviews(reviews).matchedScores(sales)

	counts := make(map[int]int)
	for _, s := range scores {
		counts[s]++
	}

	result := make([]domain.ScoreShare, 0, len(counts))
	for _, s := range sortedKeys(counts) {
		result = append(result, domain.ScoreShare{Score: s, Proportion: float64(counts[s]) / float64(len(scores))})
	}
	return result
}
