package pipeline

import (
	"context"
	"strings"
	"unicode"
)

// achievementMarker is the two-character inline annotation token.
const achievementMarker = "<!"

// MarkerTransformer defines the contract for inline marker transformation.
type MarkerTransformer interface {
	TransformMarkers(ctx context.Context, content string) string
}

// AchievementMarkerTransformer converts "<! text" annotations into styled
// spans, line by line. Only the first marker per line is honored; a marker
// with an empty body leaves the line unchanged.
type AchievementMarkerTransformer struct{}

// TransformMarkers rewrites every line containing an achievement marker.
func (t *AchievementMarkerTransformer) TransformMarkers(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	for _, line := range splitLines(content) {
		pos := strings.Index(line, achievementMarker)
		if pos == -1 {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		text := strings.TrimLeftFunc(line[pos+len(achievementMarker):], unicode.IsSpace)
		if text == "" {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}

		b.WriteString(line[:pos])
		b.WriteString(`<span class="achievement-marker">`)
		b.WriteString(text)
		b.WriteString("</span>\n")
	}

	return b.String()
}
