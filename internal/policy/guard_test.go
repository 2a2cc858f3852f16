package policy

import (
	"strings"
	"testing"

	"github.com/abhisek/caliper/internal/bank"
)

func TestGuardTextPass(t *testing.T) {
	stim := "A city sees more ice cream sales and more drownings in the same months."
	if reason := GuardText("Can you give one more different reason?", stim); reason != "" {
		t.Errorf("clean probe rejected: %s", reason)
	}
}

func TestGuardTextRejections(t *testing.T) {
	stim := "A city sees more ice cream sales and more drownings in the same months."
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "   ", "empty"},
		{"too long", strings.Repeat("a", 201) + "?", "too long"},
		{"no punctuation", "Can you say more", "punctuation"},
		{"forbidden term", "Could a confounder explain this?", "forbidden"},
		{"forbidden term cased", "Think about Selection Bias here.", "forbidden"},
		{
			"stimulus echo",
			"A city sees more ice cream sales and more drownings in the same months, so why is that true overall now?",
			"echoes",
		},
	}
	for _, tt := range tests {
		reason := GuardText(tt.text, stim)
		if reason == "" {
			t.Errorf("%s: expected rejection, got pass", tt.name)
			continue
		}
		if !strings.Contains(reason, tt.want) {
			t.Errorf("%s: reason %q missing %q", tt.name, reason, tt.want)
		}
	}
}

func TestGuardTextLengthCountsRunes(t *testing.T) {
	// 200 runes exactly, multi-byte, should pass the length check.
	text := strings.Repeat("ä", 199) + "?"
	if reason := GuardText(text, ""); strings.Contains(reason, "too long") {
		t.Errorf("200-rune probe rejected for length: %s", reason)
	}
}

// Every library phrase must pass the guard against every catalog item.
// Authoring a phrase that trips the guard would silently kill probes.
func TestPhraseLibraryPassesGuard(t *testing.T) {
	for intent, phrases := range phraseLibrary {
		for _, phrase := range phrases {
			for _, it := range bank.Items() {
				if reason := GuardText(phrase, it.Text); reason != "" {
					t.Errorf("%s phrase %q fails guard against %s: %s", intent, phrase, it.ID, reason)
				}
			}
		}
	}
}

func TestParseIntent(t *testing.T) {
	if got, ok := ParseIntent("Boundary"); !ok || got != IntentBoundary {
		t.Errorf("ParseIntent(Boundary) = %q, %v", got, ok)
	}
	if _, ok := ParseIntent("boundary"); ok {
		t.Error("intent matching must be case-sensitive")
	}
	if _, ok := ParseIntent(""); ok {
		t.Error("empty intent must not parse")
	}
}
