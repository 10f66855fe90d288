package uuid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator produces lexically sortable ULIDs, so ids issued later sort
// after ids issued earlier
type ULIDGenerator struct {
	now func() time.Time
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{now: time.Now}
}

func (g *ULIDGenerator) New() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), ulid.DefaultEntropy()).String()
}

// IsULID reports whether id parses as a ULID
func IsULID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
