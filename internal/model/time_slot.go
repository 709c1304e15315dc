package model

// TimeSlot maps time_slots. Conflicts are matched on slot id, not on the wall-clock window.
type TimeSlot struct {
	ID              uint   `gorm:"primaryKey"                json:"id"`
	StartTime       string `gorm:"type:time;not null"        json:"start_time"` // HH:MM[:SS]
	EndTime         string `gorm:"type:time;not null"        json:"end_time"`
	DurationMinutes int    `gorm:"not null"                  json:"duration_minutes"`
	SlotName        string `gorm:"type:varchar(20)"          json:"slot_name,omitempty"`
	IsBreak         bool   `gorm:"not null;default:false"    json:"is_break"`
	IsActive        bool   `gorm:"not null"                  json:"is_active"`
	BaseModel
}

func (TimeSlot) TableName() string { return "time_slots" }
