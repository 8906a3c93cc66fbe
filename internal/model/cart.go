package model

const LineItemTypeProduct = "product"

type LineItem struct {
	ID           string
	ReferencedID string
	Type         string
	Quantity     int
}

type Cart struct {
	Token     string
	LineItems []LineItem
}
