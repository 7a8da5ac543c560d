package dto

// PurchaseRequest carries a new purchase record. PurchaseDate accepts
// "2006-01-02" or RFC 3339.
type PurchaseRequest struct {
	InvoiceNumber       string `json:"invoice_number"`
	ProductName         string `json:"product_name"`
	ProductSerialNumber string `json:"product_serial_number"`
	ShopName            string `json:"shop_name"`
	PurchaseDate        string `json:"purchase_date"`
	CustomerName        string `json:"customer_name"`
}
