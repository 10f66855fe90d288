package effectlog

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/chronicler/internal/effects"
	apperrors "github.com/KirkDiggler/chronicler/internal/errors"
)

// Entry is one logged effect. Seq starts at 1 for every world.
type Entry struct {
	ID         string
	WorldID    string
	Seq        int64
	Effect     effects.Effect
	RecordedAt time.Time
}

// entryData is the stored form; the effect travels in its type envelope
type entryData struct {
	ID         string           `json:"id"`
	WorldID    string           `json:"world_id"`
	Effect     effects.Envelope `json:"effect"`
	RecordedAt int64            `json:"recorded_at"`
}

func encodeEntry(e Entry) ([]byte, error) {
	env, err := effects.Wrap(e.Effect)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(entryData{
		ID:         e.ID,
		WorldID:    e.WorldID,
		Effect:     env,
		RecordedAt: toMillis(e.RecordedAt),
	})
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to encode log entry %s", e.ID)
	}
	return data, nil
}

func decodeEntry(data []byte, seq int64) (Entry, error) {
	var raw entryData
	if err := json.Unmarshal(data, &raw); err != nil {
		return Entry{}, apperrors.WrapWithCode(err, apperrors.CodeParse, "failed to decode log entry")
	}
	effect, err := raw.Effect.Decode()
	if err != nil {
		return Entry{}, apperrors.Wrapf(err, "log entry %s", raw.ID)
	}
	return Entry{
		ID:         raw.ID,
		WorldID:    raw.WorldID,
		Seq:        seq,
		Effect:     effect,
		RecordedAt: fromMillis(raw.RecordedAt),
	}, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func validateAppend(worldID string, list []effects.Effect) error {
	if worldID == "" {
		return apperrors.MissingParam("world ID")
	}
	for i, e := range list {
		if e == nil {
			return apperrors.InvalidArgumentf("effect %d is nil", i).WithMeta("world_id", worldID)
		}
	}
	return nil
}
