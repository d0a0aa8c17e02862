package infra

import (
	_ "embed"
	"fmt"

	"github.com/KATBlackCoder/rapportflow/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"gopkg.in/yaml.v3"
)

//go:embed model.conf
var modelText string

//go:embed policy.yaml
var DefaultPolicy []byte

type policyFile struct {
	Policies []struct {
		Position domain.Position `yaml:"position"`
		Resource string          `yaml:"resource"`
		Actions  []string        `yaml:"actions"`
	} `yaml:"policies"`
}

// ParsePolicy expands the yaml grants into one rule per action.
func ParsePolicy(raw []byte) ([]domain.PolicyRule, error) {
	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	var rules []domain.PolicyRule
	for i, p := range f.Policies {
		if !p.Position.Valid() {
			return nil, fmt.Errorf("policy %d: unknown position %q", i, p.Position)
		}
		if p.Resource == "" || len(p.Actions) == 0 {
			return nil, fmt.Errorf("policy %d: resource and actions are required", i)
		}
		for _, act := range p.Actions {
			rules = append(rules, domain.PolicyRule{Position: p.Position, Resource: p.Resource, Action: act})
		}
	}
	return rules, nil
}

// NewEnforcer builds an enforcer from the embedded model and the given rules.
func NewEnforcer(rules []domain.PolicyRule) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if len(rules) == 0 {
		return e, nil
	}

	policies := make([][]string, 0, len(rules))
	for _, r := range rules {
		policies = append(policies, []string{string(r.Position), r.Resource, r.Action})
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}

	return e, nil
}

// NewDefaultEnforcer loads the embedded policy file.
func NewDefaultEnforcer() (*casbin.Enforcer, []domain.PolicyRule, error) {
	rules, err := ParsePolicy(DefaultPolicy)
	if err != nil {
		return nil, nil, err
	}
	e, err := NewEnforcer(rules)
	if err != nil {
		return nil, nil, err
	}
	return e, rules, nil
}
