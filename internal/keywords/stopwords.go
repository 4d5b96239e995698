// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

// Function words.
var genericStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by", "from", "as", "is", "was", "are", "were", "been", "be",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
	"used", "it", "its", "this", "that", "these", "those", "i", "we", "you",
	"he", "she", "they", "them", "their", "our", "your", "my", "his", "her",
	"which", "who", "whom", "what", "where", "when", "why", "how", "all",
	"each", "every", "both", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "s",
	"t", "just", "don", "now", "also", "into", "over", "after", "before",
	"between", "under", "again", "further", "then", "once", "here", "there",
	"about", "above", "below", "up", "down", "out", "off", "through", "during",
	"while", "if", "because", "until", "although", "though", "whether",
	"however",
}

// Academic boilerplate that dominates abstract word counts without saying
// anything about the subject.
var academicStopWords = []string{
	"baseline", "baselines", "proposed", "propose", "proposes", "method", "methods", "approach",
	"approaches", "paper", "papers", "work", "works", "study", "studies",
	"research", "novel", "new", "based", "using", "use", "show", "shows",
	"shown", "achieve", "achieves", "achieved", "result", "results",
	"experimental", "experiments", "demonstrate", "demonstrates",
	"demonstrated", "present", "presents", "presented", "introduce",
	"introduces", "introduced", "existing", "previous", "state", "art", "sota",
	"performance", "perform", "performs", "performed", "improve", "improves",
	"improved", "improvement", "improvements", "effective", "effectively",
	"efficient", "efficiently", "significant", "significantly", "compared",
	"comparison", "et", "al", "etc", "eg", "ie", "vs", "via", "thus", "hence",
	"therefore", "moreover", "furthermore", "additionally", "finally", "first",
	"second", "third", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "several", "many", "various", "different",
	"similar", "well", "better", "best", "high", "higher", "highest", "low",
	"lower", "lowest", "large", "larger", "largest", "small", "smaller",
	"smallest", "good", "bad", "able", "particular", "particularly", "given",
	"without", "within", "across", "among", "along", "around", "since", "even",
	"still", "yet", "already", "often", "usually", "always", "never",
	"sometimes", "together", "possible", "especially", "recently", "commonly",
	"widely", "easily", "directly", "simply", "mainly", "primarily", "example",
	"examples", "case", "cases", "way", "ways", "order", "general", "specific",
	"specifically", "following", "follows", "key", "important", "main", "major",
	"due", "according", "respectively", "corresponding", "overall", "total",
	"average", "standard", "common", "typical", "known", "called", "considered",
	"applied", "obtained", "required", "needed", "make", "makes", "made",
	"take", "takes", "took", "taken", "get", "gets", "got", "set", "sets",
	"put", "give", "gives", "gave", "find", "finds", "found", "see", "problem",
	"problems", "solution", "solutions", "task", "tasks", "challenge",
	"challenges", "issue", "issues", "limitation", "limitations", "advantage",
	"advantages", "feature", "features", "property", "properties", "framework",
	"frameworks", "system", "systems", "component", "components", "module",
	"modules", "layer", "layers", "input", "inputs", "output", "outputs",
	"process", "processes", "step", "steps", "stage", "stages", "level",
	"levels", "type", "types", "form", "forms", "part", "parts", "number",
	"numbers", "amount", "amounts", "size", "sizes", "time", "times", "value",
	"values", "function", "functions", "parameter", "parameters",
}

var stopWords = buildStopWords(genericStopWords, academicStopWords)

func buildStopWords(lists ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			set[w] = struct{}{}
		}
	}
	return set
}

// IsStopWord reports whether w (lower case) is filtered from keyword counts.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
