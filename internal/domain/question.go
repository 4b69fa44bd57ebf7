package domain

type QuestionKind string

const (
	KindEvaluation QuestionKind = "evaluation"
	KindCapacity   QuestionKind = "capacity"
)

// Question is one prompt from the fixed survey catalog, together with its
// ordered set of labeled answer options.
type Question struct {
	ID      string
	Kind    QuestionKind
	Prompt  string
	Options []string
}

// agreementScale is the fixed 5-point scale used by every capacity statement.
var agreementScale = []string{
	"1 - Strongly disagree",
	"2 - Disagree",
	"3 - Neutral",
	"4 - Agree",
	"5 - Strongly agree",
}

// EvaluationQuestions is the fixed, ordered hazard evaluation catalog.
// Option levels run 0-5 but are not contiguous for every question
// (area of impact and predictability skip levels).
var EvaluationQuestions = []Question{
	{
		ID: "occurrence", Kind: KindEvaluation,
		Prompt: "Occurrence history",
		Options: []string{
			"0 - Never occurred",
			"1 - Once in living memory",
			"2 - Once in the last decade",
			"3 - Every few years",
			"4 - Annually",
			"5 - Several times a year",
		},
	},
	{
		ID: "frequency", Kind: KindEvaluation,
		Prompt: "Frequency of occurrence",
		Options: []string{
			"0 - Not applicable",
			"1 - Rare",
			"2 - Occasional",
			"3 - Regular",
			"4 - Frequent",
			"5 - Near-continuous",
		},
	},
	{
		ID: "duration", Kind: KindEvaluation,
		Prompt: "Typical duration of an event",
		Options: []string{
			"0 - Not applicable",
			"1 - Hours",
			"2 - Days",
			"3 - Weeks",
			"4 - Months",
			"5 - A year or longer",
		},
	},
	{
		ID: "area", Kind: KindEvaluation,
		Prompt: "Area of impact",
		Options: []string{
			"0 - Not applicable",
			"1 - Single site",
			"3 - Several wards",
			"5 - Entire district or wider",
		},
	},
	{
		ID: "people", Kind: KindEvaluation,
		Prompt: "Impact on people",
		Options: []string{
			"0 - Not applicable",
			"1 - Low",
			"2 - Moderate",
			"3 - High",
			"4 - Severe",
			"5 - Catastrophic",
		},
	},
	{
		ID: "infrastructure", Kind: KindEvaluation,
		Prompt: "Impact on infrastructure",
		Options: []string{
			"0 - Not applicable",
			"1 - Low",
			"2 - Moderate",
			"3 - High",
			"4 - Severe",
			"5 - Catastrophic",
		},
	},
	{
		ID: "environment", Kind: KindEvaluation,
		Prompt: "Impact on the environment",
		Options: []string{
			"0 - Not applicable",
			"1 - Low",
			"2 - Moderate",
			"3 - High",
			"4 - Severe",
			"5 - Catastrophic",
		},
	},
	{
		ID: "economic", Kind: KindEvaluation,
		Prompt: "Economic disruption",
		Options: []string{
			"0 - Not applicable",
			"1 - Low",
			"2 - Moderate",
			"3 - High",
			"4 - Severe",
			"5 - Catastrophic",
		},
	},
	{
		ID: "predictability", Kind: KindEvaluation,
		Prompt: "Predictability",
		Options: []string{
			"0 - Not applicable",
			"2 - Seasonal pattern only",
			"4 - Forecast days ahead",
			"5 - Forecast weeks ahead",
		},
	},
	{
		ID: "urgency", Kind: KindEvaluation,
		Prompt: "Urgency of intervention",
		Options: []string{
			"0 - Not applicable",
			"1 - Low",
			"2 - Moderate",
			"3 - High",
			"4 - Severe",
			"5 - Immediate",
		},
	},
}

// CapacityQuestions is the fixed, ordered set of preparedness statements,
// each rated on the agreement scale.
var CapacityQuestions = []Question{
	{ID: "cap_plan", Kind: KindCapacity, Prompt: "Our ward has an up-to-date disaster response plan", Options: agreementScale},
	{ID: "cap_resources", Kind: KindCapacity, Prompt: "Sufficient funds and equipment are available for emergency response", Options: agreementScale},
	{ID: "cap_training", Kind: KindCapacity, Prompt: "Responders in our ward are trained for this hazard", Options: agreementScale},
	{ID: "cap_warning", Kind: KindCapacity, Prompt: "Early-warning information reaches residents in time", Options: agreementScale},
	{ID: "cap_coordination", Kind: KindCapacity, Prompt: "Local structures coordinate effectively during an emergency", Options: agreementScale},
	{ID: "cap_community", Kind: KindCapacity, Prompt: "The community knows what to do when this hazard strikes", Options: agreementScale},
	{ID: "cap_recovery", Kind: KindCapacity, Prompt: "Our ward can restore basic services quickly after an event", Options: agreementScale},
}

// AllQuestions returns the full per-hazard question sequence: evaluation
// questions first, capacity statements after, both in catalog order.
func AllQuestions() []Question {
	out := make([]Question, 0, len(EvaluationQuestions)+len(CapacityQuestions))
	out = append(out, EvaluationQuestions...)
	out = append(out, CapacityQuestions...)
	return out
}

// QuestionCount is the number of answers required per hazard.
func QuestionCount() int {
	return len(EvaluationQuestions) + len(CapacityQuestions)
}
