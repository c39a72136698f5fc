package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Token literals replaced by the substitutor.
const (
	tokenCurrentDateTime = "{{currentDateTime}}"
	tokenCurrentDate     = "{{currentDate}}"
	tokenCurrentYear     = "{{currentYear}}"
	tokenLastUpdateOpen  = "{{lastUpdate:"
	tokenClose           = "}}"

	// isoLayout is the fixed layout for last-modified dates.
	isoLayout = "2006-01-02"
)

// TokenSubstitutor defines the contract for dynamic token replacement.
type TokenSubstitutor interface {
	SubstituteTokens(ctx context.Context, markdown, basePath string) string
}

// ClockTokenSubstitutor replaces date/time tokens using the process clock
// and {{lastUpdate:path}} tokens using file modification times.
// Unrecognized {{...}} tokens are left untouched for visibility.
type ClockTokenSubstitutor struct {
	// Now returns the current time; nil means time.Now.
	// Injectable for deterministic tests.
	Now func() time.Time

	// DateFormat is a dateutil token format for {{currentDate}}
	// (e.g. "DD/MM/YYYY" or a preset name). Empty or invalid formats
	// fall back to ISO.
	DateFormat string
}

// SubstituteTokens replaces every occurrence of the supported tokens.
// Paths in {{lastUpdate:...}} tokens are resolved relative to basePath;
// missing files substitute the literal "unknown", never an error.
func (s *ClockTokenSubstitutor) SubstituteTokens(ctx context.Context, markdown, basePath string) string {
	if ctx.Err() != nil {
		return markdown
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	dateLayout := isoLayout
	if s.DateFormat != "" {
		if parsed, err := dateutil.ParseDateFormat(s.DateFormat); err == nil {
			dateLayout = parsed
		}
	}
	monthYearLayout, err := dateutil.ParseDateFormat(dateutil.MonthYearFormat)
	if err != nil {
		monthYearLayout = "January 2006"
	}

	result := strings.NewReplacer(
		tokenCurrentDateTime, now.Format(monthYearLayout),
		tokenCurrentDate, now.Format(dateLayout),
		tokenCurrentYear, now.Format("2006"),
	).Replace(markdown)

	return substituteLastUpdate(result, basePath)
}

// substituteLastUpdate replaces each {{lastUpdate:path}} token with the ISO
// date of the referenced file's last modification, or "unknown" when the
// file or its timestamp is unavailable.
func substituteLastUpdate(markdown, basePath string) string {
	result := markdown

	for {
		start := strings.Index(result, tokenLastUpdateOpen)
		if start == -1 {
			break
		}
		afterOpen := start + len(tokenLastUpdateOpen)
		closeOffset := strings.Index(result[afterOpen:], tokenClose)
		if closeOffset == -1 {
			break
		}
		end := afterOpen + closeOffset

		path := result[afterOpen:end]
		fullPath := path
		if !filepath.IsAbs(fullPath) {
			fullPath = filepath.Join(basePath, path)
		}

		dateStr := "unknown"
		if modTime, err := fileutil.ModTime(fullPath); err == nil {
			dateStr = modTime.Format(isoLayout)
		}

		result = result[:start] + dateStr + result[end+len(tokenClose):]
	}

	return result
}
