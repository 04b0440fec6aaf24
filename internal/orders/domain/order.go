package domain

// OrderID représente l'identifiant unique d'une commande
type OrderID string

// CustomerID représente l'identifiant d'un client
type CustomerID string

// OrderStatus représente le statut d'une commande
type OrderStatus string

const (
	OrderStatusDelivered   OrderStatus = "delivered"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusCanceled    OrderStatus = "canceled"
	OrderStatusProcessing  OrderStatus = "processing"
	OrderStatusInvoiced    OrderStatus = "invoiced"
	OrderStatusUnavailable OrderStatus = "unavailable"
)

// IsDelivered vérifie le statut "delivered" (comparaison exacte, sensible à la casse)
func (s OrderStatus) IsDelivered() bool {
	return s == OrderStatusDelivered
}

// Order représente une commande telle que lue depuis la source.
// Les horodatages restent au format texte: ils sont analysés par le pipeline d'analyse.
type Order struct {
	id                    OrderID
	customerID            CustomerID
	status                OrderStatus
	purchaseTimestamp     string
	deliveredCustomerDate string
}

// NewOrder crée une commande; les valeurs sont prises telles que lues dans la source
func NewOrder(
	id OrderID,
	customerID CustomerID,
	status OrderStatus,
	purchaseTimestamp string,
	deliveredCustomerDate string,
) *Order {
	return &Order{
		id:                    id,
		customerID:            customerID,
		status:                status,
		purchaseTimestamp:     purchaseTimestamp,
		deliveredCustomerDate: deliveredCustomerDate,
	}
}

// ID retourne l'identifiant de la commande
func (o *Order) ID() OrderID {
	return o.id
}

// CustomerID retourne l'identifiant du client
func (o *Order) CustomerID() CustomerID {
	return o.customerID
}

// Status retourne le statut de la commande (vide si inconnu)
func (o *Order) Status() OrderStatus {
	return o.status
}

// PurchaseTimestamp retourne l'horodatage d'achat brut
func (o *Order) PurchaseTimestamp() string {
	return o.purchaseTimestamp
}

// DeliveredCustomerDate retourne la date de livraison brute (vide si non livrée)
func (o *Order) DeliveredCustomerDate() string {
	return o.deliveredCustomerDate
}
