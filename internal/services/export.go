package services

import (
	"fmt"
	"strings"

	"hirestack/recruitdesk/internal/models"
)

// ExportColumns is the documented CSV column order.
var ExportColumns = []string{
	"Name",
	"Email",
	"Phone",
	"Job Title",
	"Applied Date",
	"Status",
	"Score",
	"Assigned To",
}

// ExportCSV renders the filtered result set as CSV: a header line then one
// line per applicant. Every field is double-quoted, embedded quotes doubled,
// which keeps commas and newlines inside values intact.
func ExportCSV(applicants []models.Applicant) string {
	var b strings.Builder
	writeRow(&b, ExportColumns)

	for i := range applicants {
		a := &applicants[i]
		score := ""
		if a.ATSScore != nil {
			score = fmt.Sprintf("%g", *a.ATSScore)
		}
		assigned := ""
		if a.AssignedTo != nil {
			assigned = a.AssignedTo.String()
		}
		writeRow(&b, []string{
			a.Name,
			a.Email,
			a.MobileNumber,
			a.JobTitle,
			a.AppliedAt.Format("2006-01-02"),
			string(a.Status),
			score,
			assigned,
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
