package bank

// seedItems defines the pilot item bank: short-answer causal reasoning
// prompts in plain language. Ordering matters: the selector breaks score
// ties by catalog position, and sessions open on the first item.
var seedItems = []Item{
	{
		ID:          "C2-01",
		Family:      "C2.reasons",
		SchemaID:    "reasons-two",
		Text:        "Students who take music lessons tend to have higher math grades. Give two different reasons, other than music helping math, that could explain this link. A few words each.",
		CoverageTag: TagConfounding,
		Disc:        1.2,
		Diff:        0.0,
	},
	{
		ID:          "C4-01",
		Family:      "C4.timing",
		SchemaID:    "timing-before",
		Text:        "A city opens a free tutoring program. To judge whether it works, you want to compare kids who joined with kids who didn't. Name one thing about the kids you would want to know from before the program started.",
		CoverageTag: TagTemporality,
		Disc:        1.0,
		Diff:        -0.3,
	},
	{
		ID:          "C6-01",
		Family:      "C6.direction",
		SchemaID:    "direction-word",
		Text:        "Hospitals that treat the sickest patients tend to have higher death rates. If you compared hospitals without accounting for how sick their patients are, would the best hospitals look More or Less effective than they really are? One word, then briefly say why.",
		CoverageTag: TagComplexity,
		Disc:        1.4,
		Diff:        0.6,
	},
	{
		ID:          "C2-02",
		Family:      "C2.reasons",
		SchemaID:    "reasons-two",
		Text:        "Neighborhoods with more trees have lower crime rates. Give two different reasons, other than trees preventing crime, that could explain this pattern. A few words each.",
		CoverageTag: TagConfounding,
		Disc:        1.1,
		Diff:        0.4,
	},
	{
		ID:          "C5-01",
		Family:      "C5.posttreatment",
		SchemaID:    "avoid-posttreatment",
		Text:        "A company rolls out a wellness program and wants to know if it reduced sick days. Someone suggests comparing employees with similar gym attendance during the program. Is that a good idea? Answer in one sentence.",
		CoverageTag: TagTemporality,
		Disc:        1.3,
		Diff:        0.9,
	},
	{
		ID:          "C7-01",
		Family:      "C7.mechanism",
		SchemaID:    "mechanism-brief",
		Text:        "Children who eat breakfast score better on morning tests. Suppose the link is real and causal. In one sentence, how could eating breakfast lead to better scores?",
		CoverageTag: TagComplexity,
		Disc:        0.9,
		Diff:        -0.5,
	},
	{
		ID:          "C4-02",
		Family:      "C4.timing",
		SchemaID:    "timing-before",
		Text:        "People who start a new diet app lose weight over three months. What would you want to know about their weight trend from before they installed the app, and why? One sentence.",
		CoverageTag: TagTemporality,
		Disc:        1.1,
		Diff:        0.7,
	},
	{
		ID:          "C8-01",
		Family:      "C8.boundary",
		SchemaID:    "boundary-probe",
		Text:        "\"Smaller class sizes improve learning.\" Name one specific situation where making classes smaller would probably not help. One sentence.",
		CoverageTag: TagComplexity,
		Disc:        1.5,
		Diff:        1.1,
	},
	{
		ID:          "C6-02",
		Family:      "C6.direction",
		SchemaID:    "direction-word",
		Text:        "Drivers who take an advanced safety course have more recorded near-misses, because the course teaches them to report every incident. Does the raw comparison make the course look More or Less effective than it really is? One word, then briefly say why.",
		CoverageTag: TagComplexity,
		Disc:        1.2,
		Diff:        1.3,
	},
	{
		ID:          "C8-02",
		Family:      "C8.boundary",
		SchemaID:    "boundary-probe",
		Text:        "\"Exercise improves mood.\" Name one specific condition under which more exercise would likely fail to improve someone's mood. One sentence.",
		CoverageTag: TagConfounding,
		Disc:        1.0,
		Diff:        0.2,
	},
}

// seedFeatures declares the grading template per schema. Schemas absent
// from this map grade on labels alone.
var seedFeatures = map[string]Features{
	"reasons-two": {
		ExpectedListCount: 2,
	},
	"timing-before": {
		RequiredMoves: []string{"checks_timing"},
	},
	"direction-word": {
		ExpectDirectionWord: true,
	},
	"avoid-posttreatment": {
		RequiredMoves: []string{"flags_during_program_control"},
	},
	"mechanism-brief": {
		RequiredMoves: []string{"states_mechanism"},
	},
}

func init() {
	if err := validateItems(seedItems, seedFeatures); err != nil {
		panic(err)
	}
	c = buildCatalog(seedItems, seedFeatures)
}
