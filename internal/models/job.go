package model

import "time"

// Job is a service/repair ticket. Jobs are never hard-deleted; a job whose
// status reaches the terminal code simply drops out of the active listing.
type Job struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index" json:"userId"`
	ClientID           uint      `gorm:"not null;index" json:"clientId"`
	EquipmentType      int       `gorm:"not null" json:"equipmentType"`
	EquipmentBrand     int       `gorm:"not null" json:"equipmentBrand"`
	EquipmentProcedure int       `gorm:"not null" json:"equipmentProcedure"`
	Notes              string    `json:"notes"`
	StatusCode         int       `gorm:"not null;index" json:"statusCode"`
	PriorityCode       int       `gorm:"not null" json:"priorityCode"`
	CreatedAt          time.Time `json:"createdAt"`
}
