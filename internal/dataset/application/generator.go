package application

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogdomain "ecomdash/internal/catalog/domain"
	customersdomain "ecomdash/internal/customers/domain"
	"ecomdash/internal/dataset/domain"
	ordersdomain "ecomdash/internal/orders/domain"
	reviewsdomain "ecomdash/internal/reviews/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var (
	seedCategories = []string{
		"health_beauty", "watches_gifts", "bed_bath_table", "sports_leisure",
		"computers_accessories", "furniture_decor", "housewares", "cool_stuff",
		"auto", "toys", "garden_tools", "perfumery", "baby", "electronics",
	}
	seedStates = []string{"SP", "RJ", "MG", "RS", "PR", "SC", "BA", "DF", "GO", "ES", "PE", "CE"}
	// statuts pondérés: la majorité des commandes est livrée
	seedStatuses = []ordersdomain.OrderStatus{
		ordersdomain.OrderStatusDelivered, ordersdomain.OrderStatusDelivered, ordersdomain.OrderStatusDelivered,
		ordersdomain.OrderStatusDelivered, ordersdomain.OrderStatusDelivered, ordersdomain.OrderStatusDelivered,
		ordersdomain.OrderStatusDelivered, ordersdomain.OrderStatusDelivered, ordersdomain.OrderStatusDelivered,
		ordersdomain.OrderStatusShipped, ordersdomain.OrderStatusCanceled, ordersdomain.OrderStatusInvoiced,
		ordersdomain.OrderStatusProcessing, ordersdomain.OrderStatusUnavailable,
	}
)

// GeneratorOptions paramètre la génération d'un jeu de données synthétique
type GeneratorOptions struct {
	Orders    int
	Products  int
	Customers int
	StartYear int
	Years     int
	Seed      int64
}

// DefaultGeneratorOptions retourne des options raisonnables pour une démo
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Orders:    5000,
		Products:  300,
		Customers: 3000,
		StartYear: 2022,
		Years:     2,
		Seed:      42,
	}
}

// Generator produit un Dataset déterministe pour une graine donnée
type Generator struct {
	opts GeneratorOptions
	rng  *rand.Rand
}

// NewGenerator crée un générateur validé
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
	if opts.Orders <= 0 {
		return nil, errors.New("orders must be positive")
	}
	if opts.Products <= 0 || opts.Customers <= 0 {
		return nil, errors.New("products and customers must be positive")
	}
	if opts.StartYear <= 0 || opts.Years <= 0 {
		return nil, fmt.Errorf("invalid year range %d+%d", opts.StartYear, opts.Years)
	}
	return &Generator{opts: opts, rng: rand.New(rand.NewSource(opts.Seed))}, nil
}

// Generate construit les cinq tables
func (g *Generator) Generate() (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	products := g.products()
	customers := g.customers()
	ds.Products, ds.Customers = products, customers

	start := time.Date(g.opts.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	span := time.Date(g.opts.StartYear+g.opts.Years, time.January, 1, 0, 0, 0, 0, time.UTC).Sub(start)

	for i := 0; i < g.opts.Orders; i++ {
		orderID := ordersdomain.OrderID(g.newID())
		customer := customers[g.rng.Intn(len(customers))]
		status := seedStatuses[g.rng.Intn(len(seedStatuses))]

		purchase := start.Add(time.Duration(g.rng.Int63n(int64(span)))).Truncate(time.Second)
		delivered := ""
		if status.IsDelivered() {
			transit := time.Duration(1+g.rng.Intn(20))*24*time.Hour + time.Duration(g.rng.Intn(24))*time.Hour
			delivered = purchase.Add(transit).Format(timestampLayout)
		}

		ds.Orders = append(ds.Orders, ordersdomain.NewOrder(orderID, customer.ID(), status, purchase.Format(timestampLayout), delivered))

		nItems := 1 + g.rng.Intn(3)
		for n := 1; n <= nItems; n++ {
			product := products[g.rng.Intn(len(products))]
			price := float64(int((10+g.rng.Float64()*490)*100)) / 100
			freight := float64(int((5+g.rng.Float64()*40)*100)) / 100

			ds.OrderItems = append(ds.OrderItems, ordersdomain.NewOrderItem(orderID, n, product.ID(), price, freight))
		}

		// environ 5% des commandes sans avis, 2% avec une note nulle
		roll := g.rng.Intn(100)
		if roll < 5 {
			continue
		}
		var score *int
		if roll >= 7 {
			s := g.score(delivered, purchase)
			score = &s
		}
		ds.Reviews = append(ds.Reviews, reviewsdomain.NewReview(orderID, score))
	}

	return ds, nil
}

func (g *Generator) products() []*catalogdomain.Product {
	products := make([]*catalogdomain.Product, 0, g.opts.Products)
	for i := 0; i < g.opts.Products; i++ {
		category := ""
		if g.rng.Intn(50) != 0 {
			category = seedCategories[g.rng.Intn(len(seedCategories))]
		}
		products = append(products, catalogdomain.NewProduct(catalogdomain.ProductID(g.newID()), category))
	}
	return products
}

func (g *Generator) customers() []*customersdomain.Customer {
	customers := make([]*customersdomain.Customer, 0, g.opts.Customers)
	for i := 0; i < g.opts.Customers; i++ {
		customers = append(customers, customersdomain.NewCustomer(
			ordersdomain.CustomerID(g.newID()),
			seedStates[g.rng.Intn(len(seedStates))],
		))
	}
	return customers
}

// score favorise les bonnes notes pour les livraisons rapides
func (g *Generator) score(delivered string, purchase time.Time) int {
	base := 3 + g.rng.Intn(3)
	if delivered == "" {
		return 1 + g.rng.Intn(5)
	}
	d, err := time.Parse(timestampLayout, delivered)
	if err == nil && d.Sub(purchase) > 10*24*time.Hour {
		base -= 1 + g.rng.Intn(2)
	}
	return base
}

// newID génère un identifiant hexadécimal de 32 caractères à partir de la graine
func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read n'échoue jamais
		panic(err)
	}
	return strings.ReplaceAll(id.String(), "-", "")
}
