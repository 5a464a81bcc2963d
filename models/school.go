package models

import "time"

// School is found-or-created by unique name during roster import.
type School struct {
	SchoolID int        `gorm:"primaryKey;column:school_id" json:"school_id"`
	Name     string     `gorm:"column:name;unique" json:"name"`
	Province string     `gorm:"column:province" json:"province"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (School) TableName() string {
	return "schools"
}
