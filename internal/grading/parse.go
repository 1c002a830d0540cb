package grading

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

var digitRun = regexp.MustCompile(`\d+`)

// rawQuestion accepts the authoring payload for any variant. Which fields
// are meaningful depends on the group type; the rest are ignored.
type rawQuestion struct {
	Number  int    `json:"number"`
	GapID   string `json:"gapId"`
	CellID  string `json:"cellId"`
	StepID  string `json:"stepId"`
	LabelID string `json:"labelId"`
	Text    string `json:"text"`

	CorrectAnswer  string   `json:"correctAnswer"`
	Answers        []string `json:"answers"`
	CorrectFeature string   `json:"correctFeature"`
	CorrectHeading string   `json:"correctHeading"`
	CorrectEnding  string   `json:"correctEnding"`
}

// ExtractNumber pulls the first run of digits out of a display id such as
// "gap-3" or "cell_12b". Ids without digits resolve to 0, which downstream
// code treats as a valid (if odd) question number rather than an error.
func ExtractNumber(id string) int {
	m := digitRun.FindString(id)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// ParseGroup validates a question-group payload and resolves every question
// to an explicit number and correct-answer set. This is the only place that
// can reject input; once a group parses, grading is fail-soft.
func ParseGroup(questionType string, instruction string, wordLimit int, payload json.RawMessage) (QuestionGroup, error) {
	t := QuestionType(questionType)
	if !knownType(t) {
		return QuestionGroup{}, fmt.Errorf("unknown question type %q", questionType)
	}

	var raw []rawQuestion
	if err := json.Unmarshal(payload, &raw); err != nil {
		return QuestionGroup{}, fmt.Errorf("invalid questions payload: %w", err)
	}

	group := QuestionGroup{
		Type:        t,
		Instruction: instruction,
		WordLimit:   wordLimit,
		Questions:   make([]Question, 0, len(raw)),
	}

	for i, rq := range raw {
		q := Question{Text: rq.Text}

		// Heading questions are numbered by position. This ignores any
		// caller-supplied numbering offset when the group is not the first
		// in its section; kept as-is pending product clarification (see
		// TestMatchingHeadingsNumberedByPosition).
		if t == MatchingHeadings {
			q.Number = i + 1
		} else {
			q.Number = rq.Number
			if q.Number == 0 {
				q.Number = ExtractNumber(legacyID(t, rq))
			}
		}
		q.Label = legacyID(t, rq)

		switch t {
		case MultipleChoiceMultipleAnswers:
			q.Answers = rq.Answers
		case MatchingFeatures:
			q.CorrectAnswer = firstNonEmpty(rq.CorrectFeature, rq.CorrectAnswer)
		case MatchingHeadings:
			q.CorrectAnswer = firstNonEmpty(rq.CorrectHeading, rq.CorrectAnswer)
		case MatchingSentenceEndings:
			q.CorrectAnswer = firstNonEmpty(rq.CorrectEnding, rq.CorrectAnswer)
		default:
			q.CorrectAnswer = rq.CorrectAnswer
		}

		group.Questions = append(group.Questions, q)
	}

	return group, nil
}

// legacyID returns the type-specific display id carried over from the old
// authoring format, empty when the variant has none.
func legacyID(t QuestionType, rq rawQuestion) string {
	switch t {
	case SummaryCompletion, SentenceCompletion, NoteCompletion:
		return rq.GapID
	case TableCompletion:
		return rq.CellID
	case FlowChartCompletion:
		return rq.StepID
	case DiagramLabelCompletion:
		return rq.LabelID
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func knownType(t QuestionType) bool {
	switch t {
	case MultipleChoice, MultipleChoiceMultipleAnswers,
		TrueFalseNotGiven, YesNoNotGiven,
		MatchingInformation, MatchingHeadings, MatchingFeatures, MatchingSentenceEndings,
		SentenceCompletion, SummaryCompletion, NoteCompletion, TableCompletion,
		FlowChartCompletion, DiagramLabelCompletion, ShortAnswer:
		return true
	}
	return false
}
