package model

// Department maps departments
type Department struct {
	ID               uint   `gorm:"primaryKey"                 json:"id"`
	Name             string `gorm:"type:varchar(100);not null" json:"name"`
	Code             string `gorm:"type:varchar(20);not null"  json:"code"`
	HeadOfDepartment string `gorm:"type:varchar(100)"          json:"head_of_department,omitempty"`
	BaseModel
}

func (Department) TableName() string { return "departments" }
