package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SubmissionStatus values used by the admin panel
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// Submission represents one lead's record: contact info, the optional
// profile answers collected by later form steps, OTP verification state
// and the computed eligibility score.
type Submission struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	City     string    `json:"city"`

	Education           null.String `json:"education"`
	EducationGrade      null.String `json:"educationGrade"`
	GradeType           null.String `json:"gradeType"`
	HasLanguageTest     null.String `json:"hasLanguageTest"`
	LanguageTest        null.String `json:"languageTest"`
	IeltsScore          null.String `json:"ieltsScore"`
	HasWorkExperience   null.String `json:"hasWorkExperience"`
	WorkExperienceYears null.String `json:"workExperienceYears"`
	FinancialCapacity   null.String `json:"financialCapacity"`
	PreferredIntake     null.String `json:"preferredIntake"`
	PreferredProvince   null.String `json:"preferredProvince"`

	OTPCode          null.String `json:"otpCode"`
	OTPVerified      int         `json:"otpVerified"`
	EligibilityScore null.Int    `json:"eligibilityScore"`
	Status           string      `json:"status"`
	SubmittedAt      time.Time   `json:"submittedAt"`
}

// IsVerified reports whether the OTP step has been completed
func (s *Submission) IsVerified() bool {
	return s.OTPVerified != 0
}

// CreateSubmissionInput is the full insert shape used by the admin panel.
// Only the contact fields are required; everything else is stored as NULL
// when omitted.
type CreateSubmissionInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10"`
	City     string `json:"city" binding:"required"`

	Education           string `json:"education"`
	EducationGrade      string `json:"educationGrade"`
	GradeType           string `json:"gradeType"`
	HasLanguageTest     string `json:"hasLanguageTest"`
	LanguageTest        string `json:"languageTest"`
	IeltsScore          string `json:"ieltsScore"`
	HasWorkExperience   string `json:"hasWorkExperience"`
	WorkExperienceYears string `json:"workExperienceYears"`
	FinancialCapacity   string `json:"financialCapacity"`
	PreferredIntake     string `json:"preferredIntake"`
	PreferredProvince   string `json:"preferredProvince"`

	OTPCode string `json:"otpCode"`
	Status  string `json:"status"`
}

// ToSubmission builds a Submission entity from the input, leaving the
// server-assigned fields (id, timestamp) for the repository to fill.
func (in *CreateSubmissionInput) ToSubmission() *Submission {
	s := &Submission{
		FullName:            in.FullName,
		Email:               in.Email,
		Phone:               in.Phone,
		City:                in.City,
		Education:           optionalString(in.Education),
		EducationGrade:      optionalString(in.EducationGrade),
		GradeType:           optionalString(in.GradeType),
		HasLanguageTest:     optionalString(in.HasLanguageTest),
		LanguageTest:        optionalString(in.LanguageTest),
		IeltsScore:          optionalString(in.IeltsScore),
		HasWorkExperience:   optionalString(in.HasWorkExperience),
		WorkExperienceYears: optionalString(in.WorkExperienceYears),
		FinancialCapacity:   optionalString(in.FinancialCapacity),
		PreferredIntake:     optionalString(in.PreferredIntake),
		PreferredProvince:   optionalString(in.PreferredProvince),
		OTPCode:             optionalString(in.OTPCode),
		Status:              in.Status,
	}
	if s.Status == "" {
		s.Status = SubmissionStatusPending
	}
	return s
}

func optionalString(v string) null.String {
	if v == "" {
		return null.String{}
	}
	return null.StringFrom(v)
}

// SubmitContactInput is step one of the funnel
type SubmitContactInput struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,min=10"`
	City     string `json:"city" binding:"required"`
}

// SubmitContactResponse acknowledges the contact step. OTPCode is only
// populated outside production so testers can read the code back.
type SubmitContactResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
	OTPCode string    `json:"otpCode,omitempty"`
}

// VerifyOTPInput is step two of the funnel
type VerifyOTPInput struct {
	SubmissionID uuid.UUID `json:"submissionId" binding:"required"`
	OTP          string    `json:"otp" binding:"required,len=6"`
}

// EligibilityResult is the scored outcome returned after OTP verification
type EligibilityResult struct {
	Score      int    `json:"score"`
	Message    string `json:"message"`
	IsEligible bool   `json:"isEligible"`
}

// UpdateStatusInput changes a submission's status label from the admin panel
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// SendReportEmailInput requests emailing of the eligibility report summary
type SendReportEmailInput struct {
	Email      string `json:"email" binding:"required,email"`
	Score      int    `json:"score"`
	IsEligible bool   `json:"isEligible"`
}
