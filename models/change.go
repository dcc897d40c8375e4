package models

import (
	"time"
)

type ChangeAction string

const (
	ActionInsert ChangeAction = "INSERT"
	ActionUpdate ChangeAction = "UPDATE"
	ActionDelete ChangeAction = "DELETE"
)

// Change is one journal row written in the same transaction as the write it records.
type Change struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Entity    string       `gorm:"type:varchar(50);not null;index:idx_change_entity_action" json:"entity"`
	RecordID  uint         `gorm:"not null" json:"record_id"`
	Action    ChangeAction `gorm:"type:varchar(10);not null;index:idx_change_entity_action" json:"action"`
	ChangedAt time.Time    `gorm:"autoCreateTime;not null" json:"changed_at"`
	Processed bool         `gorm:"not null;default:false;index:idx_change_processed" json:"processed"`
}
