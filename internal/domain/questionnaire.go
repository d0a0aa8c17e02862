package domain

type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionSelect   QuestionType = "select"
	QuestionNumber   QuestionType = "number"
	QuestionDate     QuestionType = "date"
	QuestionEmail    QuestionType = "email"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionTextarea, QuestionRadio, QuestionCheckbox,
		QuestionSelect, QuestionNumber, QuestionDate, QuestionEmail:
		return true
	default:
		return false
	}
}

// HasOptions reports whether answers are drawn from the question's option keys.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionRadio, QuestionCheckbox, QuestionSelect:
		return true
	case QuestionText, QuestionTextarea, QuestionNumber, QuestionDate, QuestionEmail:
		return false
	default:
		return false
	}
}

type QuestionnaireStatus string

const (
	QuestionnairePublished QuestionnaireStatus = "published"
	QuestionnaireArchived  QuestionnaireStatus = "archived"
)

func (s QuestionnaireStatus) Valid() bool {
	switch s {
	case QuestionnairePublished, QuestionnaireArchived:
		return true
	default:
		return false
	}
}

type TargetType string

const (
	TargetEmployees   TargetType = "employees"
	TargetSupervisors TargetType = "supervisors"
)

func (t TargetType) Valid() bool {
	switch t {
	case TargetEmployees, TargetSupervisors:
		return true
	default:
		return false
	}
}

type ResponseStatus string

const (
	ResponseSubmitted             ResponseStatus = "submitted"
	ResponseReturnedForCorrection ResponseStatus = "returned_for_correction"
)

func (s ResponseStatus) Valid() bool {
	switch s {
	case ResponseSubmitted, ResponseReturnedForCorrection:
		return true
	default:
		return false
	}
}
