package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Submission mirrors the submissions table. One row per lead attempt;
// rows are never deleted, so there is no soft-delete column.
type Submission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"type:text;not null"`
	Email    string    `gorm:"type:text;not null"`
	Phone    string    `gorm:"type:text;not null;index"`
	City     string    `gorm:"type:text;not null"`

	Education           null.String `gorm:"type:text"`
	EducationGrade      null.String `gorm:"type:text"`
	GradeType           null.String `gorm:"type:text"`
	HasLanguageTest     null.String `gorm:"type:text"`
	LanguageTest        null.String `gorm:"type:text"`
	IeltsScore          null.String `gorm:"type:text"`
	HasWorkExperience   null.String `gorm:"type:text"`
	WorkExperienceYears null.String `gorm:"type:text"`
	FinancialCapacity   null.String `gorm:"type:text"`
	PreferredIntake     null.String `gorm:"type:text"`
	PreferredProvince   null.String `gorm:"type:text"`

	OTPCode          null.String `gorm:"column:otp_code;type:text"`
	OTPVerified      int         `gorm:"column:otp_verified;not null;default:0"`
	EligibilityScore null.Int    `gorm:"type:integer"`
	Status           string      `gorm:"type:text;not null;default:'pending'"`
	SubmittedAt      time.Time   `gorm:"not null;index"`
}

// TableName overrides the GORM default
func (Submission) TableName() string {
	return "submissions"
}
