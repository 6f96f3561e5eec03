package models

import "time"

// Guest is an append-only identity record captured at check-in time. One is
// created per check-in event; there is no dedup across stays and records are
// never updated or deleted.
type Guest struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Phone     string    `gorm:"size:50" json:"phone"`
	IDProof   string    `gorm:"column:id_proof;size:255" json:"idProof"`
	CreatedAt time.Time `json:"createdAt"`
}
