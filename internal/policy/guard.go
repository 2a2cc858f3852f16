package policy

import (
	"fmt"
	"strings"
	"unicode"
)

// maxProbeLen is the longest probe text, in runes, allowed through the guard.
const maxProbeLen = 200

// maxStimulusOverlap is the largest number of distinct words a probe may
// share with the stimulus before it counts as cueing the item.
const maxStimulusOverlap = 12

// forbiddenTerms are technical terms that must never reach the user: the
// probe would leak the concept under test. Matched case-insensitively.
var forbiddenTerms = []string{
	"confounder",
	"mediator",
	"collider",
	"post-treatment",
	"reverse causation",
	"selection bias",
	"instrumental variable",
	"simpson",
	"berkson",
}

// GuardText checks a candidate probe text against the stimulus it would
// follow. Returns a reason string on rejection, empty on pass.
func GuardText(text, stimulus string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "empty text"
	}
	runes := []rune(trimmed)
	if len(runes) > maxProbeLen {
		return fmt.Sprintf("too long (%d > %d chars)", len(runes), maxProbeLen)
	}
	if last := runes[len(runes)-1]; last != '.' && last != '?' && last != '!' {
		return "missing terminal punctuation"
	}

	lower := strings.ToLower(trimmed)
	for _, term := range forbiddenTerms {
		if strings.Contains(lower, term) {
			return fmt.Sprintf("contains forbidden term %q", term)
		}
	}

	if n := sharedWords(trimmed, stimulus); n > maxStimulusOverlap {
		return fmt.Sprintf("echoes stimulus (%d shared words > %d)", n, maxStimulusOverlap)
	}
	return ""
}

// sharedWords counts distinct lowercase words appearing in both texts.
func sharedWords(a, b string) int {
	wa := wordSet(a)
	n := 0
	for w := range wordSet(b) {
		if wa[w] {
			n++
		}
	}
	return n
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		set[w] = true
	}
	return set
}
