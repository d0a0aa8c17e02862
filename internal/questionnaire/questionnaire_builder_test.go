package questionnaire_test

import (
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestResolveConditionals(t *testing.T) {
	ids := []uint{11, 12, 13, 14}
	indexes := []*int{
		nil,
		intPtr(0), // earlier: kept
		intPtr(2), // self: dropped
		intPtr(9), // out of range: dropped
	}

	links := questionnaire.ResolveConditionals(indexes, ids)

	assert.Nil(t, links[0])
	assert.Equal(t, uint(11), *links[1])
	assert.Nil(t, links[2])
	assert.Nil(t, links[3])
}

func TestResolveConditionals_ForwardReference(t *testing.T) {
	links := questionnaire.ResolveConditionals([]*int{intPtr(1), nil}, []uint{5, 6})

	assert.Nil(t, links[0])
	assert.Nil(t, links[1])
}
