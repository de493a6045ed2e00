// Package imagestore writes campground images to object storage.
package imagestore

import (
	"strconv"
	"strings"
	"time"

	"campground/internal/util"

	"github.com/google/uuid"
)

const keyPrefix = "campgrounds/"

// newObjectKey returns a collision-free key that keeps the sanitized client filename as a suffix.
func newObjectKey(filename string, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	return keyPrefix + strconv.FormatInt(now.UnixNano(), 10) + "-" + random + "-" + util.SanitizeFilename(filename)
}

// urlMapper converts between object keys and public URLs.
type urlMapper struct {
	base string
}

func newURLMapper(publicBaseURL string) urlMapper {
	return urlMapper{base: strings.TrimRight(publicBaseURL, "/")}
}

func (m urlMapper) toURL(key string) string {
	return m.base + "/" + key
}

// toKey returns the object key behind url, or false when the store did not produce url.
func (m urlMapper) toKey(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, m.base+"/")
	if !ok || !strings.HasPrefix(key, keyPrefix) {
		return "", false
	}

	return key, true
}
