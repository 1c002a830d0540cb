package grading

import "strings"

// AutoGrade compares a student's raw answer against the question's expected
// answer using the comparator for the group's type. It never fails: an empty
// or whitespace-only answer is GradeUnanswered, anything unparseable is
// simply wrong.
func AutoGrade(t QuestionType, q Question, studentAnswer string) GradeStatus {
	answer := strings.TrimSpace(studentAnswer)
	if answer == "" {
		return GradeUnanswered
	}

	switch t {
	case MultipleChoiceMultipleAnswers:
		if answerSetsEqual(splitAnswers(answer), q.Answers) {
			return GradeCorrect
		}
		return GradeIncorrect

	case MultipleChoice, TrueFalseNotGiven, YesNoNotGiven,
		MatchingInformation, MatchingHeadings, MatchingFeatures, MatchingSentenceEndings,
		SentenceCompletion, SummaryCompletion, NoteCompletion, TableCompletion,
		FlowChartCompletion, DiagramLabelCompletion, ShortAnswer:
		if strings.EqualFold(answer, strings.TrimSpace(q.CorrectAnswer)) {
			return GradeCorrect
		}
		return GradeIncorrect
	}

	// Unknown types are rejected by ParseGroup; degrade rather than panic.
	return GradeIncorrect
}

// FinalStatus applies the manual-override invariant: an explicit
// correct/incorrect override wins unconditionally, ManualAuto passes the
// auto result through unchanged.
func FinalStatus(auto GradeStatus, override ManualStatus) GradeStatus {
	switch override {
	case ManualCorrect:
		return GradeCorrect
	case ManualIncorrect:
		return GradeIncorrect
	}
	return auto
}

// WordCount counts whitespace-separated words in a student answer.
func WordCount(answer string) int {
	return len(strings.Fields(answer))
}

// OverWordLimit reports whether an answer exceeds the group's word limit.
// Advisory only: it never changes the verdict.
func OverWordLimit(answer string, limit int) bool {
	return limit > 0 && WordCount(answer) > limit
}

// GradeGroup grades every question in a group against the student answer map
// and override map, returning one result per question in group order.
func GradeGroup(group QuestionGroup, answers map[int]string, overrides ManualGrades) []QuestionResult {
	results := make([]QuestionResult, 0, len(group.Questions))
	for _, q := range group.Questions {
		answer := answers[q.Number]
		auto := AutoGrade(group.Type, q, answer)
		results = append(results, QuestionResult{
			Number:        q.Number,
			StudentAnswer: answer,
			Auto:          auto,
			Final:         FinalStatus(auto, overrides[q.Number]),
			WordCount:     WordCount(answer),
			OverWordLimit: OverWordLimit(answer, group.WordLimit),
		})
	}
	return results
}

// splitAnswers tokenizes a multi-answer submission. Students type answers
// separated by commas, whitespace, or both ("A, C" and "A C" are the same).
func splitAnswers(answer string) []string {
	return strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// answerSetsEqual compares two answer lists as sets: same size, same
// case-folded membership, order ignored. Duplicate tokens collapse, so a
// student cannot satisfy a two-answer question by repeating one answer.
func answerSetsEqual(got, want []string) bool {
	gotSet := make(map[string]struct{}, len(got))
	for _, a := range got {
		gotSet[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	wantSet := make(map[string]struct{}, len(want))
	for _, a := range want {
		wantSet[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	if len(gotSet) != len(wantSet) {
		return false
	}
	for a := range wantSet {
		if _, ok := gotSet[a]; !ok {
			return false
		}
	}
	return true
}
