package grading

import "testing"

func TestAutoGradeFreeText(t *testing.T) {
	q := Question{Number: 1, CorrectAnswer: "Paris"}

	tests := []struct {
		name   string
		answer string
		want   GradeStatus
	}{
		{name: "exact", answer: "Paris", want: GradeCorrect},
		{name: "lowercase", answer: "paris", want: GradeCorrect},
		{name: "uppercase", answer: "PARIS", want: GradeCorrect},
		{name: "padded", answer: "  Paris  ", want: GradeCorrect},
		{name: "wrong", answer: "London", want: GradeIncorrect},
		{name: "empty", answer: "", want: GradeUnanswered},
		{name: "whitespace only", answer: "   \t ", want: GradeUnanswered},
		{name: "partial", answer: "Par", want: GradeIncorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoGrade(ShortAnswer, q, tt.answer); got != tt.want {
				t.Errorf("AutoGrade(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestAutoGradeClosedChoice(t *testing.T) {
	tests := []struct {
		name   string
		qtype  QuestionType
		q      Question
		answer string
		want   GradeStatus
	}{
		{name: "mc correct", qtype: MultipleChoice, q: Question{CorrectAnswer: "B"}, answer: "b", want: GradeCorrect},
		{name: "mc wrong", qtype: MultipleChoice, q: Question{CorrectAnswer: "B"}, answer: "C", want: GradeIncorrect},
		{name: "tfng fold", qtype: TrueFalseNotGiven, q: Question{CorrectAnswer: "NOT GIVEN"}, answer: "not given", want: GradeCorrect},
		{name: "ynng", qtype: YesNoNotGiven, q: Question{CorrectAnswer: "Yes"}, answer: "NO", want: GradeIncorrect},
		{name: "feature label", qtype: MatchingFeatures, q: Question{CorrectAnswer: "iv"}, answer: " IV ", want: GradeCorrect},
		{name: "sentence ending", qtype: MatchingSentenceEndings, q: Question{CorrectAnswer: "E"}, answer: "e", want: GradeCorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoGrade(tt.qtype, tt.q, tt.answer); got != tt.want {
				t.Errorf("AutoGrade(%v, %q) = %v, want %v", tt.qtype, tt.answer, got, tt.want)
			}
		})
	}
}

func TestAutoGradeMultipleAnswers(t *testing.T) {
	q := Question{Number: 5, Answers: []string{"A", "C"}}

	tests := []struct {
		name   string
		answer string
		want   GradeStatus
	}{
		{name: "comma separated", answer: "A, C", want: GradeCorrect},
		{name: "space separated", answer: "A C", want: GradeCorrect},
		{name: "reversed order", answer: "C, A", want: GradeCorrect},
		{name: "lowercase", answer: "c a", want: GradeCorrect},
		{name: "comma no space", answer: "A,C", want: GradeCorrect},
		{name: "wrong cardinality low", answer: "A", want: GradeIncorrect},
		{name: "wrong cardinality high", answer: "A, B, C", want: GradeIncorrect},
		{name: "duplicate token", answer: "A, A", want: GradeIncorrect},
		{name: "wrong member", answer: "A, D", want: GradeIncorrect},
		{name: "empty", answer: "", want: GradeUnanswered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AutoGrade(MultipleChoiceMultipleAnswers, q, tt.answer); got != tt.want {
				t.Errorf("AutoGrade(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestFinalStatusOverrideDominance(t *testing.T) {
	autos := []GradeStatus{GradeCorrect, GradeIncorrect, GradeUnanswered}

	for _, auto := range autos {
		if got := FinalStatus(auto, ManualCorrect); got != GradeCorrect {
			t.Errorf("FinalStatus(%v, correct) = %v, want correct", auto, got)
		}
		if got := FinalStatus(auto, ManualIncorrect); got != GradeIncorrect {
			t.Errorf("FinalStatus(%v, incorrect) = %v, want incorrect", auto, got)
		}
		// ManualAuto and an absent override both restore the auto result.
		if got := FinalStatus(auto, ManualAuto); got != auto {
			t.Errorf("FinalStatus(%v, auto) = %v, want %v", auto, got, auto)
		}
		if got := FinalStatus(auto, ""); got != auto {
			t.Errorf("FinalStatus(%v, absent) = %v, want %v", auto, got, auto)
		}
	}
}

func TestManualGradesSet(t *testing.T) {
	m := ManualGrades{}

	m.Set(3, ManualCorrect)
	if m[3] != ManualCorrect {
		t.Errorf("m[3] = %v, want correct", m[3])
	}

	// Last write wins.
	m.Set(3, ManualIncorrect)
	if m[3] != ManualIncorrect {
		t.Errorf("m[3] = %v, want incorrect", m[3])
	}

	// Junk degrades to auto.
	m.Set(3, ManualStatus("maybe"))
	if m[3] != ManualAuto {
		t.Errorf("m[3] = %v, want auto", m[3])
	}
}

func TestWordLimit(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		limit  int
		count  int
		over   bool
	}{
		{name: "under limit", answer: "a quiet village", limit: 3, count: 3, over: false},
		{name: "over limit", answer: "a very quiet little village", limit: 3, count: 5, over: true},
		{name: "no limit", answer: "a very quiet little village", limit: 0, count: 5, over: false},
		{name: "empty", answer: "", limit: 2, count: 0, over: false},
		{name: "extra whitespace", answer: "  two   words  ", limit: 2, count: 2, over: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.answer); got != tt.count {
				t.Errorf("WordCount(%q) = %d, want %d", tt.answer, got, tt.count)
			}
			if got := OverWordLimit(tt.answer, tt.limit); got != tt.over {
				t.Errorf("OverWordLimit(%q, %d) = %v, want %v", tt.answer, tt.limit, got, tt.over)
			}
		})
	}
}

func TestGradeGroup(t *testing.T) {
	group := QuestionGroup{
		Type:      ShortAnswer,
		WordLimit: 2,
		Questions: []Question{
			{Number: 1, CorrectAnswer: "blue whale"},
			{Number: 2, CorrectAnswer: "plankton"},
			{Number: 3, CorrectAnswer: "1987"},
		},
	}
	answers := map[int]string{
		1: "Blue Whale",
		2: "tiny floating plankton", // correct words buried in extra ones
	}
	overrides := ManualGrades{2: ManualCorrect}

	results := GradeGroup(group, answers, overrides)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Auto != GradeCorrect || results[0].Final != GradeCorrect {
		t.Errorf("q1 = %+v, want auto+final correct", results[0])
	}
	if results[1].Auto != GradeIncorrect {
		t.Errorf("q2 auto = %v, want incorrect", results[1].Auto)
	}
	if results[1].Final != GradeCorrect {
		t.Errorf("q2 final = %v, want correct via override", results[1].Final)
	}
	if !results[1].OverWordLimit {
		t.Errorf("q2 expected over-word-limit flag")
	}
	if results[2].Auto != GradeUnanswered || results[2].Final != GradeUnanswered {
		t.Errorf("q3 = %+v, want unanswered", results[2])
	}
}
