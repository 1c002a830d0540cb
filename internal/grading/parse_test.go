package grading

import (
	"encoding/json"
	"testing"
)

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{id: "gap-3", want: 3},
		{id: "cell_12b", want: 12},
		{id: "step7", want: 7},
		{id: "label-04", want: 4},
		{id: "q28-second-try", want: 28},
		{id: "no-digits", want: 0},
		{id: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ExtractNumber(tt.id); got != tt.want {
				t.Errorf("ExtractNumber(%q) = %d, want %d", tt.id, got, tt.want)
			}
		})
	}
}

func TestParseGroupCompletion(t *testing.T) {
	payload := json.RawMessage(`[
		{"gapId": "gap-14", "correctAnswer": "harbour"},
		{"number": 15, "gapId": "gap-x", "correctAnswer": "ferry"},
		{"gapId": "broken", "correctAnswer": "dock"}
	]`)

	group, err := ParseGroup("summary_completion", "Complete the summary.", 2, payload)
	if err != nil {
		t.Fatalf("ParseGroup: %v", err)
	}
	if group.Type != SummaryCompletion {
		t.Errorf("type = %v, want summary_completion", group.Type)
	}
	if group.WordLimit != 2 {
		t.Errorf("wordLimit = %d, want 2", group.WordLimit)
	}

	wantNumbers := []int{14, 15, 0} // explicit number wins, digitless id degrades to 0
	for i, want := range wantNumbers {
		if group.Questions[i].Number != want {
			t.Errorf("question %d number = %d, want %d", i, group.Questions[i].Number, want)
		}
	}
	if group.Questions[0].CorrectAnswer != "harbour" {
		t.Errorf("q0 answer = %q", group.Questions[0].CorrectAnswer)
	}
}

// Heading groups number their questions by array position. That ignores any
// numbering offset when headings are not the first group in a section; this
// test pins the current behavior so a deliberate fix shows up as a diff here.
func TestMatchingHeadingsNumberedByPosition(t *testing.T) {
	payload := json.RawMessage(`[
		{"number": 27, "correctHeading": "iv"},
		{"number": 28, "correctHeading": "i"},
		{"correctHeading": "vii"}
	]`)

	group, err := ParseGroup("matching_headings", "", 0, payload)
	if err != nil {
		t.Fatalf("ParseGroup: %v", err)
	}
	for i, q := range group.Questions {
		if q.Number != i+1 {
			t.Errorf("heading question %d numbered %d, want %d", i, q.Number, i+1)
		}
	}
	if group.Questions[0].CorrectAnswer != "iv" {
		t.Errorf("q0 heading = %q, want iv", group.Questions[0].CorrectAnswer)
	}
}

func TestParseGroupVariantAnswerFields(t *testing.T) {
	tests := []struct {
		name    string
		qtype   string
		payload string
		want    string
	}{
		{name: "feature", qtype: "matching_features", payload: `[{"number": 1, "correctFeature": "B"}]`, want: "B"},
		{name: "ending", qtype: "matching_sentence_endings", payload: `[{"number": 1, "correctEnding": "D"}]`, want: "D"},
		{name: "ending fallback", qtype: "matching_sentence_endings", payload: `[{"number": 1, "correctAnswer": "F"}]`, want: "F"},
		{name: "table cell", qtype: "table_completion", payload: `[{"cellId": "cell-9", "correctAnswer": "steam"}]`, want: "steam"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := ParseGroup(tt.qtype, "", 0, json.RawMessage(tt.payload))
			if err != nil {
				t.Fatalf("ParseGroup: %v", err)
			}
			if group.Questions[0].CorrectAnswer != tt.want {
				t.Errorf("answer = %q, want %q", group.Questions[0].CorrectAnswer, tt.want)
			}
		})
	}
}

func TestParseGroupMultipleAnswers(t *testing.T) {
	payload := json.RawMessage(`[{"number": 21, "answers": ["A", "C"]}]`)
	group, err := ParseGroup("multiple_choice_multiple_answers", "", 0, payload)
	if err != nil {
		t.Fatalf("ParseGroup: %v", err)
	}
	if len(group.Questions[0].Answers) != 2 {
		t.Fatalf("answers = %v, want 2 entries", group.Questions[0].Answers)
	}
}

func TestParseGroupRejectsBadInput(t *testing.T) {
	if _, err := ParseGroup("essay", "", 0, json.RawMessage(`[]`)); err == nil {
		t.Error("expected error for unknown question type")
	}
	if _, err := ParseGroup("short_answer", "", 0, json.RawMessage(`{"not": "a list"}`)); err == nil {
		t.Error("expected error for non-array payload")
	}
}
