package services

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeFields is the best-effort contact extraction from a résumé. Empty
// fields mean the heuristics found nothing; the UI prompts for missing ones.
type ResumeFields struct {
	Text  string
	Name  string
	Email string
	Phone string
}

type ResumeParserService interface {
	ParseResume(filePath string) (*ResumeFields, error)
	ExtractFields(text string) *ResumeFields
}

type resumeParserService struct{}

func NewResumeParserService() ResumeParserService {
	return &resumeParserService{}
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\d{10}|\d{3}[-.\s]\d{3}[-.\s]\d{4}|\(\d{3}\)\s?\d{3}-\d{4})`)
	namePattern  = regexp.MustCompile(`[A-Z][a-z]`)
)

func (p *resumeParserService) ParseResume(filePath string) (*ResumeFields, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return p.ExtractFields(text), nil
}

// ExtractFields pulls name/email/phone out of raw résumé text. Email and phone
// use simple patterns; the name heuristic picks the first short capitalized
// line near the top.
func (p *resumeParserService) ExtractFields(text string) *ResumeFields {
	fields := &ResumeFields{Text: text}

	fields.Email = emailPattern.FindString(text)
	fields.Phone = strings.TrimSpace(phonePattern.FindString(text))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	limit := len(lines)
	if limit > 8 {
		limit = 8
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if len(strings.Fields(line)) <= 4 && namePattern.MatchString(line) {
			fields.Name = line
			break
		}
	}

	return fields
}
