package models

import "time"

// Application is one admitted candidate within an admissions cycle, keyed
// by the national ID loaded from the roster spreadsheet. The linked user
// account is attached at registration and stays nil before that.
type Application struct {
	ApplicationID     int        `gorm:"primaryKey;column:application_id" json:"application_id"`
	NationalID        string     `gorm:"column:national_id;unique" json:"national_id"`
	Title             string     `gorm:"column:title" json:"title"`
	FirstName         string     `gorm:"column:first_name" json:"first_name"`
	LastName          string     `gorm:"column:last_name" json:"last_name"`
	DateOfBirth       *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Email             string     `gorm:"column:email" json:"email"`
	LaserCode         *string    `gorm:"column:laser_code" json:"laser_code,omitempty"`
	PDPAConsent       bool       `gorm:"column:pdpa_consent" json:"pdpa_consent"`
	GpaTotal          *float64   `gorm:"column:gpa_total" json:"gpa_total,omitempty"`
	GpaMath           *float64   `gorm:"column:gpa_math" json:"gpa_math,omitempty"`
	GpaScience        *float64   `gorm:"column:gpa_science" json:"gpa_science,omitempty"`
	ExamVenue         *string    `gorm:"column:exam_venue" json:"exam_venue,omitempty"`
	ExamRoom          *string    `gorm:"column:exam_room" json:"exam_room,omitempty"`
	SeatNumber        *string    `gorm:"column:seat_number" json:"seat_number,omitempty"`
	PriorityRank      *int       `gorm:"column:priority_rank" json:"priority_rank,omitempty"`
	ApplicationStatus string     `gorm:"column:application_status" json:"application_status"`
	SchoolID          int        `gorm:"column:school_id" json:"school_id"`
	AcademicYearID    int        `gorm:"column:academic_year_id" json:"academic_year_id"`
	UserID            *int       `gorm:"column:user_id;unique" json:"user_id,omitempty"`
	CreateAt          *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt          *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	School       School       `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	AcademicYear AcademicYear `gorm:"foreignKey:AcademicYearID" json:"academic_year,omitempty"`
	User         *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Documents    []Document   `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
