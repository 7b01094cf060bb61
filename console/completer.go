package console

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/viant/termsh/service/advisor"
)

// completer adapts the advisor's completion surface to readline tab
// completion: command names for the first word, directory entries after.
type completer struct {
	advisor *advisor.Service
}

func newCompleter(service *advisor.Service) *completer {
	return &completer{advisor: service}
}

var _ readline.AutoCompleter = (*completer)(nil)

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	start := strings.LastIndex(prefix, " ") + 1
	word := prefix[start:]

	var candidates [][]rune
	for _, candidate := range c.advisor.Complete(prefix) {
		if strings.HasPrefix(candidate, word) {
			candidates = append(candidates, []rune(candidate[len(word):]))
		}
	}
	return candidates, len(word)
}
