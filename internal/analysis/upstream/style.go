package upstream

import (
	"strings"

	"emotiai/internal/model"
)

// styleMarkers is checked in order; the first group with a marker in the reply wins.
// Matching is case-sensitive.
var styleMarkers = []struct {
	style   model.ResponseStyle
	markers []string
}{
	{model.StyleEnthusiastic, []string{"!", "wonderful", "great"}},
	{model.StyleEmpathetic, []string{"sorry", "understand", "support"}},
	{model.StyleHelpful, []string{"suggest", "recommend", "try"}},
}

// AnalyzeResponseStyle tags a reply by the marker substrings it contains.
func AnalyzeResponseStyle(reply string) model.ResponseStyle {
	for _, group := range styleMarkers {
		for _, m := range group.markers {
			if strings.Contains(reply, m) {
				return group.style
			}
		}
	}
	return model.StyleNeutral
}
