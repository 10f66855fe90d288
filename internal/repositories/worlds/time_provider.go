package worlds

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockworlds github.com/KirkDiggler/chronicler/internal/repositories/worlds TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NewRealTimeProvider returns a TimeProvider backed by the wall clock
func NewRealTimeProvider() TimeProvider {
	return realTimeProvider{}
}
