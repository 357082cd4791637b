package model

// Code is a row in the lookup table mapping a (kind, code) pair to a
// human-readable description. Listings join against it so responses never
// carry raw codes alone.
type Code struct {
	Kind        string `gorm:"primaryKey;size:32" json:"kind"`
	Code        int    `gorm:"primaryKey" json:"code"`
	Description string `gorm:"not null" json:"description"`
}
