package policy

// phraseLibrary holds the fallback probe text per intent. Phrases are
// vetted against the guard at authoring time; a test keeps that honest.
// Plain language only: no term here may cue the concept under test.
var phraseLibrary = map[Intent][]string{
	IntentCompletion: {
		"Can you give one more different reason?",
		"Add one more reason, different from the ones you gave. A few words.",
		"What is one more distinct reason you haven't mentioned yet?",
	},
	IntentMechanism: {
		"One sentence: briefly explain how that could come about.",
		"What is the step-by-step story behind your answer? One sentence.",
		"Briefly, what could make this result misleading?",
	},
	IntentAlternative: {
		"In a few words: give one different explanation for the link, not the one you already mentioned.",
		"What is another possible explanation for this pattern?",
		"Name one other way this result could arise.",
	},
	IntentClarify: {
		"Could you restate your answer in one short sentence?",
		"What exactly do you mean? One sentence.",
		"Say a bit more about what you meant, in one sentence.",
	},
	IntentBoundary: {
		"One sentence: name a condition where your conclusion would fail.",
		"When would this stop being true? One sentence.",
		"Give one specific situation where your answer would not hold.",
	},
}

// phraseFor draws a phrase for the intent uniformly from the library
// using the engine's random source. Intents with no library entries
// (None) yield empty text.
func (e *Engine) phraseFor(intent Intent) string {
	phrases := phraseLibrary[intent]
	if len(phrases) == 0 {
		return ""
	}
	return phrases[e.rng.IntN(len(phrases))]
}
