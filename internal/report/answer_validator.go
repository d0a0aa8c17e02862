package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var answerValidate = validator.New()

// answerError carries the message shown next to the failing answer.
type answerError string

func (e answerError) Error() string { return string(e) }

const (
	errEmptyAnswer     answerError = "An answer is required"
	errNotText         answerError = "The answer must be text"
	errNotEmail        answerError = "The answer must be a valid email address"
	errNotNumber       answerError = "The answer must be a number"
	errNotDate         answerError = "The answer must be a date"
	errNotOption       answerError = "The answer must be one of the options"
	errNotOptionList   answerError = "Select at least one of the options"
	errUnknownQuestion answerError = "Unsupported question type"
)

// ValidateAnswer checks a raw answer against the rules of its question type.
func ValidateAnswer(q questionnaire.Question, a Answer) error {
	if len(bytes.TrimSpace(a)) == 0 {
		return errEmptyAnswer
	}

	dec := json.NewDecoder(bytes.NewReader(a))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return errEmptyAnswer
	}
	if v == nil {
		return errEmptyAnswer
	}

	switch q.Type {
	case domain.QuestionText, domain.QuestionTextarea:
		s, ok := v.(string)
		if !ok {
			return errNotText
		}
		if strings.TrimSpace(s) == "" {
			return errEmptyAnswer
		}
		return nil

	case domain.QuestionEmail:
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return errNotEmail
		}
		if answerValidate.Var(s, "email") != nil {
			return errNotEmail
		}
		return nil

	case domain.QuestionNumber:
		switch n := v.(type) {
		case json.Number:
			return nil
		case string:
			if _, err := decimal.NewFromString(strings.TrimSpace(n)); err != nil {
				return errNotNumber
			}
			return nil
		default:
			return errNotNumber
		}

	case domain.QuestionDate:
		s, ok := v.(string)
		if !ok || !isDate(s) {
			return errNotDate
		}
		return nil

	case domain.QuestionSelect, domain.QuestionRadio:
		key, ok := optionKey(v)
		if !ok || !q.Options.Has(key) {
			return errNotOption
		}
		return nil

	case domain.QuestionCheckbox:
		list, ok := v.([]any)
		if !ok || len(list) == 0 {
			return errNotOptionList
		}
		for _, item := range list {
			key, ok := optionKey(item)
			if !ok || !q.Options.Has(key) {
				return errNotOption
			}
		}
		return nil

	default:
		return errUnknownQuestion
	}
}

func optionKey(v any) (string, bool) {
	switch k := v.(type) {
	case string:
		return k, true
	case json.Number:
		return k.String(), true
	default:
		return "", false
	}
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
