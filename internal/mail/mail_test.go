package mail

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionBody(t *testing.T) {
	date := time.Date(2025, 6, 15, 10, 30, 45, 0, time.UTC)
	text, html := SubmissionBody("Jane Doe", "Ward5", date,
		[]string{"/out/15_Jun_2025/Ward5_Jane_Doe_20250615_103045.csv"})

	assert.Contains(t, text, "Dear Jane Doe,")
	assert.Contains(t, text, "ward Ward5")
	assert.Contains(t, text, "2025-06-15")
	assert.Contains(t, text, "Ward5_Jane_Doe_20250615_103045.csv")
	assert.NotContains(t, text, "/out/", "bodies list base names, not paths")

	assert.Contains(t, html, "<strong>Ward5</strong>")
	assert.Contains(t, html, "<li>Ward5_Jane_Doe_20250615_103045.csv</li>")
}

func TestSubmissionBody_EscapesHTML(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	_, html := SubmissionBody("<script>x</script>", "Ward5", date, nil)

	assert.NotContains(t, html, "<script>")
}

func TestSMTPDispatcher_NoRecipients(t *testing.T) {
	d := NewSMTPDispatcher("smtp.example.com", 587, "survey@example.com", "secret")

	err := d.Dispatch(context.Background(), Message{Subject: "x"})
	assert.ErrorContains(t, err, "no recipients")
}
