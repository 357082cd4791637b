package model

type Client struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Address  string `json:"address"`
	PostCode string `json:"postCode"`
	Email    string `json:"email"`
	TaxID    string `gorm:"column:nif" json:"nif"`
}
