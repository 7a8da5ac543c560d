package dto

// ReportRequest carries the submitted fields of a report. DateGiven accepts
// "2006-01-02" or RFC 3339; an empty string leaves the date unset. An empty
// Status defaults to the first lifecycle stage.
type ReportRequest struct {
	SerialNumber       string `json:"serial_number"`
	CustomerName       string `json:"customer_name"`
	CustomerEmail      string `json:"customer_email"`
	PhoneNumber        string `json:"phone_number"`
	ProblemDescription string `json:"problem_description"`
	DateGiven          string `json:"date_given"`
	Status             string `json:"status"`
	InvoiceNumber      string `json:"invoice_number"`
	PartName           string `json:"part_name"`
	PartNumber         string `json:"part_number"`
	ShopName           string `json:"shop_name"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
