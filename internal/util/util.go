package util

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

const maxSafeNameBytes = 100

var (
	imageExtPattern = regexp.MustCompile(`(?i)\.(jpe?g|png|gif)$`)
	unsafeNameChars = regexp.MustCompile(`[^a-z0-9._-]+`)
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// IsImageFilename reports whether name ends in .jpg, .jpeg, .png or .gif, ignoring case.
func IsImageFilename(name string) bool {
	return imageExtPattern.MatchString(strings.TrimSpace(name))
}

// SanitizeFilename reduces an uploaded filename to a lowercase, path-free, URL-safe form.
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "." || base == "/" {
		return "upload"
	}

	safe := unsafeNameChars.ReplaceAllString(strings.ToLower(base), "-")
	safe = repeatedHyphens.ReplaceAllString(safe, "-")
	safe = strings.Trim(safe, "-.")
	if len(safe) > maxSafeNameBytes {
		safe = safe[len(safe)-maxSafeNameBytes:]
	}
	if safe == "" {
		return "upload"
	}

	return safe
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	}

	return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
}
