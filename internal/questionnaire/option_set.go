package questionnaire

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

type Option struct {
	Key   string
	Label string
}

// OptionSet is an ordered key to label mapping. It encodes as a JSON object
// and keeps the key order of its input, which a Go map would lose. A JSON
// array decodes with positional keys "0", "1", ...
type OptionSet []Option

func (o OptionSet) Has(key string) bool {
	for _, opt := range o {
		if opt.Key == key {
			return true
		}
	}
	return false
}

func (o OptionSet) Keys() []string {
	keys := make([]string, len(o))
	for i, opt := range o {
		keys[i] = opt.Key
	}
	return keys
}

func (o OptionSet) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *OptionSet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*o = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	set := OptionSet{}
	switch tok {
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			label, err := decodeLabel(dec)
			if err != nil {
				return err
			}
			set = append(set, Option{Key: key, Label: label})
		}
	case json.Delim('['):
		for i := 0; dec.More(); i++ {
			label, err := decodeLabel(dec)
			if err != nil {
				return err
			}
			set = append(set, Option{Key: strconv.Itoa(i), Label: label})
		}
	default:
		return fmt.Errorf("options must be an object or an array")
	}

	*o = set
	return nil
}

func decodeLabel(dec *json.Decoder) (string, error) {
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return "", err
	}
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("option labels must be scalars")
	}
}

func (o OptionSet) Value() (driver.Value, error) {
	if len(o) == 0 {
		return nil, nil
	}
	b, err := o.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *OptionSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return o.UnmarshalJSON(v)
	case string:
		return o.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported options value %T", src)
	}
}
