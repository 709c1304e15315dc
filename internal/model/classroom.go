package model

// ClassRoom maps classrooms
type ClassRoom struct {
	ID           uint     `gorm:"primaryKey"                                json:"id"`
	Name         string   `gorm:"type:varchar(50);not null"                 json:"name"`
	RoomNumber   string   `gorm:"type:varchar(20);not null"                 json:"room_number"`
	BuildingWing string   `gorm:"type:varchar(50)"                          json:"building_wing,omitempty"`
	Capacity     int      `gorm:"not null"                                  json:"capacity"`
	RoomType     RoomType `gorm:"type:varchar(20);not null;default:CLASSROOM" json:"room_type"`
	HasProjector bool     `gorm:"not null;default:false"                    json:"has_projector"`
	HasAC        bool     `gorm:"column:has_ac;not null;default:false"      json:"has_ac"`
	Equipment    string   `gorm:"type:text"                                 json:"equipment,omitempty"`
	IsActive     bool     `gorm:"not null"                                  json:"is_active"`
	DepartmentID *uint    `json:"department_id,omitempty"`
	BaseModel

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (ClassRoom) TableName() string { return "classrooms" }
