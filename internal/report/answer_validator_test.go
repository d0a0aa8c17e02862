package report_test

import (
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
	"github.com/KATBlackCoder/rapportflow/internal/report"

	"github.com/stretchr/testify/assert"
)

var zones = questionnaire.OptionSet{
	{Key: "nord", Label: "Zone Nord"},
	{Key: "sud", Label: "Zone Sud"},
	{Key: "3", Label: "Zone 3"},
}

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name    string
		qType   domain.QuestionType
		answer  string
		wantErr bool
	}{
		{"text", domain.QuestionText, `"RAS"`, false},
		{"blank text", domain.QuestionTextarea, `"   "`, true},
		{"text given a number", domain.QuestionText, `12`, true},
		{"null", domain.QuestionText, `null`, true},
		{"email", domain.QuestionEmail, `"awa@rapport.ml"`, false},
		{"bad email", domain.QuestionEmail, `"awa.rapport.ml"`, true},
		{"number", domain.QuestionNumber, `12.5`, false},
		{"numeric string", domain.QuestionNumber, `"1500"`, false},
		{"not a number", domain.QuestionNumber, `"douze"`, true},
		{"date", domain.QuestionDate, `"2026-03-14"`, false},
		{"timestamp", domain.QuestionDate, `"2026-03-14T08:30:00Z"`, false},
		{"bad date", domain.QuestionDate, `"14/03/2026"`, true},
		{"select", domain.QuestionSelect, `"nord"`, false},
		{"select numeric key", domain.QuestionRadio, `3`, false},
		{"select unknown", domain.QuestionSelect, `"est"`, true},
		{"select given list", domain.QuestionRadio, `["nord"]`, true},
		{"checkbox", domain.QuestionCheckbox, `["nord","sud"]`, false},
		{"checkbox empty", domain.QuestionCheckbox, `[]`, true},
		{"checkbox unknown key", domain.QuestionCheckbox, `["nord","est"]`, true},
		{"checkbox scalar", domain.QuestionCheckbox, `"nord"`, true},
		{"unknown type", domain.QuestionType("file"), `"x"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := questionnaire.Question{Type: tt.qType, Options: zones}
			err := report.ValidateAnswer(q, report.Answer(tt.answer))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAnswer_CheckboxMessage(t *testing.T) {
	q := questionnaire.Question{Type: domain.QuestionCheckbox, Options: zones}

	err := report.ValidateAnswer(q, report.Answer(`["nord","ouest"]`))

	assert.EqualError(t, err, "The answer must be one of the options")
}
