package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"pratham.backend/internal/domain/entities"
	"pratham.backend/internal/usecases"
)

const (
	reportTitle    = "Canada Study Visa Eligibility Report"
	reportSubtitle = "Pratham International"

	eligibleLabel    = "You are eligible for Canada study visa!"
	notEligibleLabel = "Additional preparation needed"
)

var keyStrengths = []string{
	"Strong academic performance and educational background",
	"Demonstrated English language proficiency",
	"Relevant work experience in your field",
	"Financial capacity to support your studies",
}

var nextSteps = []string{
	"Review the list of recommended universities that match your profile",
	"Prepare all required documentation for your visa application",
	"Schedule a free consultation with our certified immigration experts",
	"Begin your university application process with our guided assistance",
	"Attend our pre-departure orientation for Canada-bound students",
}

var importantNotes = []string{
	"This assessment is based on the information provided and serves as a preliminary evaluation",
	"Final eligibility is determined by Canadian immigration authorities and universities",
	"We recommend consulting with our experts for a comprehensive profile assessment",
}

// ReportRenderer renders the fixed-layout eligibility report
type ReportRenderer struct{}

// NewReportRenderer creates a new report renderer
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

// Render produces the PDF document for a verified submission
func (r *ReportRenderer) Render(submission *entities.Submission, generatedAt time.Time) ([]byte, error) {
	score := submission.EligibilityScore.Int
	eligible := usecases.IsEligibleScore(score)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(reportTitle, true)
	doc.AddPage()

	// Header
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(33, 37, 41)
	doc.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(108, 117, 125)
	doc.CellFormat(0, 6, reportSubtitle, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 6, "Generated on "+generatedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	doc.Ln(6)

	// Applicant details
	r.sectionTitle(doc, "Applicant Details")
	r.detailRow(doc, "Full Name", submission.FullName)
	r.detailRow(doc, "Email", submission.Email)
	r.detailRow(doc, "Phone", submission.Phone)
	r.detailRow(doc, "City", submission.City)
	doc.Ln(4)

	// Score
	r.sectionTitle(doc, "Your Eligibility Score")
	r.setScoreColor(doc, score)
	doc.SetFont("Helvetica", "B", 32)
	doc.CellFormat(0, 16, fmt.Sprintf("%d%%", score), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "B", 12)
	label := notEligibleLabel
	if eligible {
		label = eligibleLabel
	}
	doc.CellFormat(0, 8, label, "", 1, "C", false, 0, "")
	doc.SetTextColor(33, 37, 41)
	doc.Ln(4)

	// Advisory message picked by the score threshold
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, usecases.MessageForScore(score), "", "L", false)
	doc.Ln(4)

	r.bulletSection(doc, "Your Key Strengths", keyStrengths, "-")
	r.numberedSection(doc, "Recommended Next Steps", nextSteps)
	r.bulletSection(doc, "Important Information", importantNotes, "-")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ReportRenderer) sectionTitle(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(33, 37, 41)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (r *ReportRenderer) detailRow(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (r *ReportRenderer) bulletSection(doc *gofpdf.Fpdf, title string, items []string, bullet string) {
	r.sectionTitle(doc, title)
	doc.SetFont("Helvetica", "", 11)
	for _, item := range items {
		doc.CellFormat(6, 6, bullet, "", 0, "L", false, 0, "")
		doc.MultiCell(0, 6, item, "", "L", false)
	}
	doc.Ln(3)
}

func (r *ReportRenderer) numberedSection(doc *gofpdf.Fpdf, title string, items []string) {
	r.sectionTitle(doc, title)
	doc.SetFont("Helvetica", "", 11)
	for i, item := range items {
		doc.CellFormat(6, 6, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		doc.MultiCell(0, 6, item, "", "L", false)
	}
	doc.Ln(3)
}

// setScoreColor mirrors the original traffic-light coloring
func (r *ReportRenderer) setScoreColor(doc *gofpdf.Fpdf, score int) {
	switch {
	case score >= 70:
		doc.SetTextColor(40, 167, 69)
	case score >= 50:
		doc.SetTextColor(255, 193, 7)
	default:
		doc.SetTextColor(220, 53, 69)
	}
}
