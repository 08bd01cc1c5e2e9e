package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	"pratham.backend/internal/infrastructure/models"
)

// SubmissionRepository implements submission data operations
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create persists a new submission, assigning id and timestamp
func (r *SubmissionRepository) Create(ctx context.Context, submission *entities.Submission) error {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now()
	}
	if submission.Status == "" {
		submission.Status = entities.SubmissionStatusPending
	}

	m := toModel(submission)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// List returns all submissions ordered by submission time descending
func (r *SubmissionRepository) List(ctx context.Context) ([]*entities.Submission, error) {
	var rows []models.Submission
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	submissions := make([]*entities.Submission, 0, len(rows))
	for i := range rows {
		submissions = append(submissions, toEntity(&rows[i]))
	}
	return submissions, nil
}

// GetByID gets a submission by id
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Submission, error) {
	var m models.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// GetByPhone gets the most recent submission for a phone number
func (r *SubmissionRepository) GetByPhone(ctx context.Context, phone string) (*entities.Submission, error) {
	var m models.Submission
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("submitted_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// SetOTP stores a new code and resets the verified flag
func (r *SubmissionRepository) SetOTP(ctx context.Context, id uuid.UUID, code string) error {
	result := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"otp_code":     code,
			"otp_verified": 0,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// VerifyOTP flips the verified flag only when the submitted code exactly
// matches the stored one. An unknown id or a mismatch reports false and
// leaves the row untouched. There is no attempt counter and no expiry.
func (r *SubmissionRepository) VerifyOTP(ctx context.Context, id uuid.UUID, code string) (bool, error) {
	var m models.Submission
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if !m.OTPCode.Valid || m.OTPCode.String != code {
		return false, nil
	}

	err := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("id = ?", id).
		Update("otp_verified", 1).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetScore stores the eligibility score unconditionally
func (r *SubmissionRepository) SetScore(ctx context.Context, id uuid.UUID, score int) error {
	result := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("id = ?", id).
		Update("eligibility_score", score)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetStatus stores the status label unconditionally
func (r *SubmissionRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Submission{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toModel(s *entities.Submission) *models.Submission {
	return &models.Submission{
		ID:                  s.ID,
		FullName:            s.FullName,
		Email:               s.Email,
		Phone:               s.Phone,
		City:                s.City,
		Education:           s.Education,
		EducationGrade:      s.EducationGrade,
		GradeType:           s.GradeType,
		HasLanguageTest:     s.HasLanguageTest,
		LanguageTest:        s.LanguageTest,
		IeltsScore:          s.IeltsScore,
		HasWorkExperience:   s.HasWorkExperience,
		WorkExperienceYears: s.WorkExperienceYears,
		FinancialCapacity:   s.FinancialCapacity,
		PreferredIntake:     s.PreferredIntake,
		PreferredProvince:   s.PreferredProvince,
		OTPCode:             s.OTPCode,
		OTPVerified:         s.OTPVerified,
		EligibilityScore:    s.EligibilityScore,
		Status:              s.Status,
		SubmittedAt:         s.SubmittedAt,
	}
}

func toEntity(m *models.Submission) *entities.Submission {
	return &entities.Submission{
		ID:                  m.ID,
		FullName:            m.FullName,
		Email:               m.Email,
		Phone:               m.Phone,
		City:                m.City,
		Education:           m.Education,
		EducationGrade:      m.EducationGrade,
		GradeType:           m.GradeType,
		HasLanguageTest:     m.HasLanguageTest,
		LanguageTest:        m.LanguageTest,
		IeltsScore:          m.IeltsScore,
		HasWorkExperience:   m.HasWorkExperience,
		WorkExperienceYears: m.WorkExperienceYears,
		FinancialCapacity:   m.FinancialCapacity,
		PreferredIntake:     m.PreferredIntake,
		PreferredProvince:   m.PreferredProvince,
		OTPCode:             m.OTPCode,
		OTPVerified:         m.OTPVerified,
		EligibilityScore:    m.EligibilityScore,
		Status:              m.Status,
		SubmittedAt:         m.SubmittedAt,
	}
}
