package models

// Skill is a named capability shared by tasks and volunteers. Names are
// stored lowercase and deduplicated; linking a skill implies no ownership.
type Skill struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
