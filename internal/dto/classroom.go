package dto

// ── classroom ──

// ClassRoomRequest create and full-replace update.
type ClassRoomRequest struct {
	Name         string `json:"name"          binding:"required,max=50"`
	RoomNumber   string `json:"room_number"   binding:"required,max=20"`
	BuildingWing string `json:"building_wing" binding:"omitempty,max=50"`
	Capacity     int    `json:"capacity"      binding:"required,min=1"`
	RoomType     string `json:"room_type"     binding:"omitempty,oneof=CLASSROOM LAB AUDITORIUM"`
	HasProjector bool   `json:"has_projector"`
	HasAC        bool   `json:"has_ac"`
	Equipment    string `json:"equipment"`
	IsActive     *bool  `json:"is_active"`
	DepartmentID *uint  `json:"department_id"`
}
