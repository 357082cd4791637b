package model

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserName     string `gorm:"uniqueIndex;not null" json:"userName"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	RoleCode     int    `gorm:"not null" json:"roleCode"`
}
