package intents

import (
	"encoding/json"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Envelope is the wire form of an Intent: {"type": "Attack", "data": {...}}
type Envelope struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Marshal encodes i inside an envelope
func Marshal(i Intent) ([]byte, error) {
	if i == nil {
		return nil, apperrors.MissingParam("intent")
	}
	data, err := json.Marshal(i)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to encode intent %s", i.Kind())
	}
	return json.Marshal(Envelope{Type: i.Kind(), Data: data})
}

// Unmarshal decodes an envelope back into its variant
func Unmarshal(data []byte) (Intent, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to decode intent envelope")
	}
	return env.Decode()
}

// Decode turns the envelope payload into its variant
func (e Envelope) Decode() (Intent, error) {
	v, ok := registry[e.Type]
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown intent type %q", e.Type)
	}
	data := e.Data
	if len(data) == 0 {
		data = []byte("{}")
	}
	i, err := v.decode(data)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to decode "+string(e.Type))
	}
	return i, nil
}
