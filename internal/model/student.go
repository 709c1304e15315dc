package model

// Student maps students
type Student struct {
	ID            uint   `gorm:"primaryKey"                 json:"id"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	RollNumber    string `gorm:"type:varchar(20);not null"  json:"roll_number"`
	Email         string `gorm:"type:varchar(100);not null" json:"email"`
	Phone         string `gorm:"type:varchar(15)"           json:"phone,omitempty"`
	AdmissionYear int    `json:"admission_year,omitempty"`
	IsActive      bool   `gorm:"not null"                   json:"is_active"`
	DivisionID    *uint  `json:"division_id,omitempty"`
	BaseModel

	Division *Division `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
}

func (Student) TableName() string { return "students" }
