// Package survey turns collected answers into normalized response records.
package survey

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrisk/internal/domain"
)

// HazardList builds the ordered hazard list for a submission: the selected
// hazards in selection order, then the custom hazard last if it is non-blank
// and not already selected.
func HazardList(selected []string, custom string) []string {
	out := make([]string, 0, len(selected)+1)
	seen := make(map[string]bool, len(selected)+1)
	for _, h := range selected {
		h = strings.TrimSpace(h)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	if c := strings.TrimSpace(custom); c != "" && !seen[c] {
		out = append(out, c)
	}
	return out
}

// Aggregate emits one ResponseRecord per (hazard, question) pair, hazards in
// selection order with the custom hazard last, questions in catalog order
// (evaluation then capacity). Every pair must have an answer; any gap fails
// the whole call with a ValidationError naming the missing pairs, and no
// partial records are returned. Pure transform, no side effects.
func Aggregate(selected []string, custom string, answers domain.AnswerSet) ([]domain.ResponseRecord, error) {
	hazards := HazardList(selected, custom)
	if len(hazards) == 0 {
		return nil, &domain.ValidationError{Missing: []string{"at least one hazard"}}
	}

	questions := domain.AllQuestions()
	records := make([]domain.ResponseRecord, 0, len(hazards)*len(questions))
	var missing []string

	for _, hazard := range hazards {
		for _, q := range questions {
			answer, ok := answers[domain.AnswerKey{Hazard: hazard, QuestionID: q.ID}]
			if !ok || strings.TrimSpace(answer) == "" {
				missing = append(missing, fmt.Sprintf("%s / %s", hazard, q.Prompt))
				continue
			}
			records = append(records, domain.ResponseRecord{
				Hazard:   hazard,
				Question: q.Prompt,
				Response: answer,
			})
		}
	}

	if len(missing) > 0 {
		return nil, &domain.ValidationError{Missing: missing}
	}
	return records, nil
}
