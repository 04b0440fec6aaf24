package domain

// ProductID représente l'identifiant unique d'un produit
type ProductID string

// Product représente un produit du catalogue
type Product struct {
	id       ProductID
	category string
}

// NewProduct crée un produit. Une catégorie vide signifie "sans catégorie".
func NewProduct(id ProductID, category string) *Product {
	return &Product{
		id:       id,
		category: category,
	}
}

// ID retourne l'identifiant du produit
func (p *Product) ID() ProductID {
	return p.id
}

// Category retourne la catégorie du produit et false si elle est absente
func (p *Product) Category() (string, bool) {
	return p.category, p.category != ""
}
