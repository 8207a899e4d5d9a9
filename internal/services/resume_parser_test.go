package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResumeText = `Jane Doe
Senior Full Stack Developer
jane.doe@example.com | (555) 123-4567
San Francisco, CA

EXPERIENCE
Built React dashboards and Node services for five years.
`

func TestExtractFields_Contact(t *testing.T) {
	parser := NewResumeParserService()

	fields := parser.ExtractFields(sampleResumeText)

	assert.Equal(t, "jane.doe@example.com", fields.Email)
	assert.Equal(t, "(555) 123-4567", fields.Phone)
	assert.Equal(t, "Jane Doe", fields.Name)
	assert.Equal(t, sampleResumeText, fields.Text)
}

func TestExtractFields_NameSkipsLongLines(t *testing.T) {
	parser := NewResumeParserService()

	text := "An experienced developer with many years of shipping software\nJohn Smith\njohn@smith.dev\n"
	fields := parser.ExtractFields(text)

	assert.Equal(t, "John Smith", fields.Name)
	assert.Equal(t, "john@smith.dev", fields.Email)
}

func TestExtractFields_NameOnlyNearTop(t *testing.T) {
	parser := NewResumeParserService()

	lines := "one two three four five six\n"
	text := lines + lines + lines + lines + lines + lines + lines + lines + "Jane Doe\n"
	fields := parser.ExtractFields(text)

	assert.Empty(t, fields.Name)
}

func TestExtractFields_MissingContact(t *testing.T) {
	parser := NewResumeParserService()

	fields := parser.ExtractFields("SUMMARY\nbuilt things with react and node over the years\n")

	assert.Empty(t, fields.Email)
	assert.Empty(t, fields.Phone)
	assert.Empty(t, fields.Name)
}

func TestExtractFields_InternationalPhone(t *testing.T) {
	parser := NewResumeParserService()

	fields := parser.ExtractFields("Contact: +62 812-3456-7890 or 555-867-5309\n")

	assert.Equal(t, "555-867-5309", fields.Phone)
}

func TestParseResume_MissingFile(t *testing.T) {
	parser := NewResumeParserService()

	_, err := parser.ParseResume("/tmp/does-not-exist.pdf")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
