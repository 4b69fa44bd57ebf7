package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/wardrisk/internal/domain"
	"github.com/alexanderramin/wardrisk/internal/testutil"
)

func TestAggregate_RecordCountIsHazardsTimesQuestions(t *testing.T) {
	hazards := []string{"Flood", "Drought", "Wildfire", "Storm surge", "Epidemic"}
	answers := testutil.FullAnswerSet(hazards...)

	records, err := Aggregate(hazards, "", answers)
	require.NoError(t, err)
	assert.Len(t, records, 5*17)
}

func TestAggregate_SingleHazardYields17Records(t *testing.T) {
	answers := testutil.FullAnswerSet("Flood")

	records, err := Aggregate([]string{"Flood"}, "", answers)
	require.NoError(t, err)
	assert.Len(t, records, 17)
}

func TestAggregate_QuestionOrderIsEvaluationThenCapacity(t *testing.T) {
	records, err := Aggregate([]string{"Flood"}, "", testutil.FullAnswerSet("Flood"))
	require.NoError(t, err)

	questions := domain.AllQuestions()
	for i, r := range records {
		assert.Equal(t, questions[i].Prompt, r.Question)
	}
}

func TestAggregate_CustomHazardComesLast(t *testing.T) {
	hazards := []string{"Flood", "Drought"}
	answers := testutil.FullAnswerSet("Flood", "Drought", "Sinkholes")

	records, err := Aggregate(hazards, "Sinkholes", answers)
	require.NoError(t, err)
	require.Len(t, records, 3*17)
	assert.Equal(t, "Flood", records[0].Hazard)
	assert.Equal(t, "Sinkholes", records[2*17].Hazard)
}

func TestAggregate_MissingAnswerFailsWithFieldNames(t *testing.T) {
	answers := testutil.FullAnswerSet("Flood")
	delete(answers, domain.AnswerKey{Hazard: "Flood", QuestionID: "frequency"})

	records, err := Aggregate([]string{"Flood"}, "", answers)
	assert.Nil(t, records, "no partial records on validation failure")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Missing, 1)
	assert.Contains(t, verr.Missing[0], "Flood")
	assert.Contains(t, verr.Missing[0], "Frequency of occurrence")
}

func TestAggregate_BlankAnswerCountsAsMissing(t *testing.T) {
	answers := testutil.FullAnswerSet("Flood")
	answers[domain.AnswerKey{Hazard: "Flood", QuestionID: "urgency"}] = "  "

	_, err := Aggregate([]string{"Flood"}, "", answers)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestAggregate_AllMissingPairsReported(t *testing.T) {
	// Answers only for Flood; Drought entirely unanswered.
	answers := testutil.FullAnswerSet("Flood")

	_, err := Aggregate([]string{"Flood", "Drought"}, "", answers)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Missing, 17)
}

func TestAggregate_NoHazardsFails(t *testing.T) {
	_, err := Aggregate(nil, "", domain.AnswerSet{})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestHazardList_DedupesCustomAgainstSelection(t *testing.T) {
	assert.Equal(t, []string{"Flood", "Drought"}, HazardList([]string{"Flood", "Drought"}, "Flood"))
	assert.Equal(t, []string{"Flood"}, HazardList([]string{"Flood"}, "  "))
	assert.Equal(t, []string{"Flood", "Hail"}, HazardList([]string{"Flood"}, "Hail"))
}
