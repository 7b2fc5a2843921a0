package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// quoteRestorer decodes only the entities the policy itself emits for plain
// punctuation. Any other entity, user supplied or not, stays encoded.
var quoteRestorer = strings.NewReplacer("&#39;", "'", "&#34;", `"`, "&amp;", "&")

// SanitizeText strips all markup from user supplied free text and trims it.
func SanitizeText(s string) string {
	return strings.TrimSpace(quoteRestorer.Replace(strictPolicy.Sanitize(s)))
}
