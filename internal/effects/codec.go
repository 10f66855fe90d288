package effects

import (
	"encoding/json"

	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Envelope is the wire form of an Effect: {"type": "HPChanged", "data": {...}}
type Envelope struct {
	Type Kind            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Wrap puts e in an envelope
func Wrap(e Effect) (Envelope, error) {
	if e == nil {
		return Envelope{}, apperrors.MissingParam("effect")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return Envelope{}, apperrors.Wrapf(err, "failed to encode effect %s", e.Kind())
	}
	return Envelope{Type: e.Kind(), Data: data}, nil
}

// Decode turns the envelope payload into its variant
func (env Envelope) Decode() (Effect, error) {
	v, ok := registry[env.Type]
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown effect type %q", env.Type)
	}
	data := env.Data
	if len(data) == 0 {
		data = []byte("{}")
	}
	e, err := v.decode(data)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to decode "+string(env.Type))
	}
	return e, nil
}

func Marshal(e Effect) ([]byte, error) {
	env, err := Wrap(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func Unmarshal(data []byte) (Effect, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to decode effect envelope")
	}
	return env.Decode()
}

// MarshalList encodes an ordered effect log as a JSON array of envelopes
func MarshalList(list []Effect) ([]byte, error) {
	envs, err := wrapAll(list)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envs)
}

// UnmarshalList decodes a JSON array of envelopes, keeping order
func UnmarshalList(data []byte) ([]Effect, error) {
	var envs []Envelope
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to decode effect list")
	}
	return decodeAll(envs)
}

func wrapAll(list []Effect) ([]Envelope, error) {
	envs := make([]Envelope, 0, len(list))
	for _, e := range list {
		env, err := Wrap(e)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

func decodeAll(envs []Envelope) ([]Effect, error) {
	out := make([]Effect, 0, len(envs))
	for i, env := range envs {
		e, err := env.Decode()
		if err != nil {
			return nil, apperrors.Wrapf(err, "effect %d", i)
		}
		out = append(out, e)
	}
	return out, nil
}

type resolutionJSON struct {
	Effects   []Envelope `json:"effects"`
	Narrative string     `json:"narrative"`
}

func (r Resolution) MarshalJSON() ([]byte, error) {
	envs, err := wrapAll(r.Effects)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resolutionJSON{Effects: envs, Narrative: r.Narrative})
}

func (r *Resolution) UnmarshalJSON(data []byte) error {
	var raw resolutionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	list, err := decodeAll(raw.Effects)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		list = nil
	}
	r.Effects = list
	r.Narrative = raw.Narrative
	return nil
}
