package entities

// CustomerType classifies the party a bid is addressed to.
type CustomerType string

const (
	CustomerTypeOwner     CustomerType = "Owner"
	CustomerTypeGC        CustomerType = "GC"
	CustomerTypeDeveloper CustomerType = "Developer"
)

// Customer is read-only reference data. Estimates may point to unknown customers.
type Customer struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CustomerType `json:"type"`
	Email string       `json:"email,omitempty"`
	Phone string       `json:"phone,omitempty"`
}
