package questionnaire_test

import (
	"encoding/json"
	"testing"

	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestOptionSet_KeepsKeyOrder(t *testing.T) {
	var set questionnaire.OptionSet
	err := json.Unmarshal([]byte(`{"z":"Zèbre","a":"Âne","m":"Mouton"}`), &set)

	assert.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, set.Keys())

	out, err := json.Marshal(set)
	assert.NoError(t, err)
	assert.Equal(t, `{"z":"Zèbre","a":"Âne","m":"Mouton"}`, string(out))
}

func TestOptionSet_ArrayAndScalars(t *testing.T) {
	var set questionnaire.OptionSet
	assert.NoError(t, json.Unmarshal([]byte(`["Oui","Non",3]`), &set))

	want := questionnaire.OptionSet{{Key: "0", Label: "Oui"}, {Key: "1", Label: "Non"}, {Key: "2", Label: "3"}}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, set.Has("1"))
	assert.False(t, set.Has("Oui"))

	assert.Error(t, json.Unmarshal([]byte(`"oui"`), &set))
	assert.Error(t, json.Unmarshal([]byte(`{"a":{"nested":true}}`), &set))
}

func TestOptionSet_ScanValue(t *testing.T) {
	set := questionnaire.OptionSet{{Key: "b", Label: "B"}, {Key: "a", Label: "A"}}

	v, err := set.Value()
	assert.NoError(t, err)
	assert.Equal(t, `{"b":"B","a":"A"}`, v)

	var back questionnaire.OptionSet
	assert.NoError(t, back.Scan([]byte(v.(string))))
	assert.Equal(t, set, back)

	empty, err := questionnaire.OptionSet(nil).Value()
	assert.NoError(t, err)
	assert.Nil(t, empty)

	assert.NoError(t, back.Scan(nil))
	assert.Nil(t, back)
}
