package dto

type CreateClientRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	PostCode string `json:"postCode"`
	Email    string `json:"email"`
	TaxID    string `json:"nif"`
}
