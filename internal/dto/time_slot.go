package dto

// ── time slot ──

// TimeSlotRequest create and full-replace update. Duration is derived from the
// window when omitted.
type TimeSlotRequest struct {
	StartTime       string `json:"start_time"       binding:"required,clock"`
	EndTime         string `json:"end_time"         binding:"required,clock"`
	DurationMinutes int    `json:"duration_minutes" binding:"omitempty,min=1"`
	SlotName        string `json:"slot_name"        binding:"omitempty,max=20"`
	IsBreak         bool   `json:"is_break"`
	IsActive        *bool  `json:"is_active"`
}

// TimeSlotListQuery ?active_only=, defaults to true.
type TimeSlotListQuery struct {
	ActiveOnly *bool `form:"active_only"`
}
