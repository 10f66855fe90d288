package effectlog

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockeffectlog github.com/KirkDiggler/chronicler/internal/repositories/effectlog TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
