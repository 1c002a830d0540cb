package grading

// QuestionType enumerates every question variant the platform supports.
// The grading comparators switch exhaustively over this set; adding a new
// variant means touching both the parser and AutoGrade.
type QuestionType string

const (
	MultipleChoice                QuestionType = "multiple_choice"
	MultipleChoiceMultipleAnswers QuestionType = "multiple_choice_multiple_answers"
	TrueFalseNotGiven             QuestionType = "true_false_not_given"
	YesNoNotGiven                 QuestionType = "yes_no_not_given"
	MatchingInformation           QuestionType = "matching_information"
	MatchingHeadings              QuestionType = "matching_headings"
	MatchingFeatures              QuestionType = "matching_features"
	MatchingSentenceEndings       QuestionType = "matching_sentence_endings"
	SentenceCompletion            QuestionType = "sentence_completion"
	SummaryCompletion             QuestionType = "summary_completion"
	NoteCompletion                QuestionType = "note_completion"
	TableCompletion               QuestionType = "table_completion"
	FlowChartCompletion           QuestionType = "flow_chart_completion"
	DiagramLabelCompletion        QuestionType = "diagram_label_completion"
	ShortAnswer                   QuestionType = "short_answer"
)

// GradeStatus is the tri-state verdict for a single question.
type GradeStatus string

const (
	GradeCorrect    GradeStatus = "correct"
	GradeIncorrect  GradeStatus = "incorrect"
	GradeUnanswered GradeStatus = "unanswered"
)

// ManualStatus is an instructor's override for a question. ManualAuto means
// "defer to the auto-grader".
type ManualStatus string

const (
	ManualCorrect   ManualStatus = "correct"
	ManualIncorrect ManualStatus = "incorrect"
	ManualAuto      ManualStatus = "auto"
)

// Question is one gradable item after parsing. Number is resolved at parse
// time; the original string ids (gapId, cellId, ...) are kept only as display
// labels.
type Question struct {
	Number        int      `json:"number"`
	Label         string   `json:"label,omitempty"`
	Text          string   `json:"text,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Answers       []string `json:"answers,omitempty"`
}

// QuestionGroup is a set of questions sharing one instruction and one type.
type QuestionGroup struct {
	Type        QuestionType `json:"type"`
	Instruction string       `json:"instruction,omitempty"`
	WordLimit   int          `json:"wordLimit,omitempty"`
	Questions   []Question   `json:"questions"`
}

// QuestionResult is the engine's output for one question.
type QuestionResult struct {
	Number        int         `json:"number"`
	StudentAnswer string      `json:"studentAnswer"`
	Auto          GradeStatus `json:"auto"`
	Final         GradeStatus `json:"final"`
	WordCount     int         `json:"wordCount"`
	OverWordLimit bool        `json:"overWordLimit"`
}

// ManualGrades maps question numbers to instructor overrides. Absent entries
// behave as ManualAuto. Writes are plain key overwrites, last write wins.
type ManualGrades map[int]ManualStatus

// Set replaces the stored status for a question number. Anything outside the
// three enumerated values is stored as ManualAuto.
func (m ManualGrades) Set(number int, status ManualStatus) {
	switch status {
	case ManualCorrect, ManualIncorrect, ManualAuto:
		m[number] = status
	default:
		m[number] = ManualAuto
	}
}
