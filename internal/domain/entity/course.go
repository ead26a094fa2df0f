package entity

type Course struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Par  *int   `json:"par"`
	// HoleCount is the number of holes on the course.
	HoleCount *int `gorm:"column:holes" json:"holes"`
}
