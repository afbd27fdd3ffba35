package submission

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewLocalID generates an offline submission ID: mrs_<unix-ms>_<7 base36
// chars>. Used when a complete submission never had a server-assigned
// partial UUID.
func NewLocalID() string {
	buf := make([]byte, 7)
	for i := range buf {
		buf[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("mrs_%d_%s", time.Now().UnixMilli(), buf)
}

var (
	uuidPattern  = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	localPattern = regexp.MustCompile(`^mrs_\d+_[0-9a-z]{7}$`)
)

// ValidID reports whether id is a well-formed submission ID, either a
// UUID or a local mrs_* ID. Lookups reject malformed IDs before touching
// storage.
func ValidID(id string) bool {
	return uuidPattern.MatchString(id) || localPattern.MatchString(id)
}
