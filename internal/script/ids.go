package script

import (
	"crypto/rand"
	"encoding/base32"
	"strconv"
	"strings"
	"time"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space, which keeps
// collision odds negligible for the few thousand questions a session sees.
func newRandomID(prefix string) string {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		// Editing must stay total; fall back to a timestamp id.
		return prefix + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b[:]))
}

func NewQuestionID() string { return newRandomID("q") }

func NewFollowUpID() string { return newRandomID("fu") }
