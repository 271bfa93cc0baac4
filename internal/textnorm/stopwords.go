package textnorm

import (
	"strings"
	"sync"
)

// English stopword list in the spirit of the usual NLP toolkits. Built once
// and read-only afterwards, so it is safe to share across concurrent calls.
var stopwordSet = sync.OnceValue(func() map[string]struct{} {
	words := strings.Fields(`
		i me my myself we our ours ourselves you your yours yourself yourselves
		he him his himself she her hers herself it its itself they them their
		theirs themselves what which who whom this that these those am is are
		was were be been being have has had having do does did doing a an the
		and but if or because as until while of at by for with about against
		between into through during before after above below to from up down
		in out on off over under again further then once here there when where
		why how all any both each few more most other some such no nor not
		only own same so than too very can will just don should now
	`)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
})

// IsStopword reports whether the lowercased word is in the stopword list.
func IsStopword(word string) bool {
	_, ok := stopwordSet()[strings.ToLower(word)]
	return ok
}
