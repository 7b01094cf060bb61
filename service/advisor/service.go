// Package advisor implements the natural-language assist layer: phrase
// matching, typo correction and completion. It is purely advisory: it only
// ever proposes a built-in command name and never executes anything itself.
package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/termsh/engine"
)

// Advice types.
const (
	TypeExactMatch   = "exact_match"
	TypePatternMatch = "pattern_match"
	TypeNoMatch      = "no_match"
)

// Thresholds governing when a match is worth reporting. The exact values
// are conventions carried over from the original tuning; override them via
// options when they prove too eager or too shy.
const (
	DefaultConfidenceThreshold = 0.3
	DefaultSimilarityThreshold = 0.6
)

// Advice is the outcome of analysing a natural-language query.
type Advice struct {
	Type        string   `json:"type"`
	Command     string   `json:"command,omitempty"`
	Category    string   `json:"category,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Description string   `json:"description,omitempty"`
	Confidence  float64  `json:"confidence"`
}

// Service analyses free-form input against the known command set.
type Service struct {
	session             *engine.Session
	fs                  afs.Service
	descriptions        map[string]string
	patterns            []pattern
	confidenceThreshold float64
	similarityThreshold float64
}

// Option customizes the advisor.
type Option func(s *Service)

// WithConfidenceThreshold overrides the minimum pattern-match confidence.
func WithConfidenceThreshold(threshold float64) Option {
	return func(s *Service) { s.confidenceThreshold = threshold }
}

// WithSimilarityThreshold overrides the minimum typo-correction similarity.
func WithSimilarityThreshold(threshold float64) Option {
	return func(s *Service) { s.similarityThreshold = threshold }
}

// New creates an advisor over the supplied session and command description
// table (normally engine.Registry.Descriptions()).
func New(session *engine.Session, descriptions map[string]string, options ...Option) *Service {
	s := &Service{
		session:             session,
		fs:                  afs.New(),
		descriptions:        descriptions,
		patterns:            defaultPatterns(),
		confidenceThreshold: DefaultConfidenceThreshold,
		similarityThreshold: DefaultSimilarityThreshold,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Suggest analyses a natural-language query and proposes commands. An exact
// command name wins outright; otherwise the phrase table is scanned and the
// longest-covering match above the confidence threshold is reported.
func (s *Service) Suggest(text string) *Advice {
	text = strings.ToLower(strings.TrimSpace(text))

	if description, ok := s.descriptions[text]; ok {
		return &Advice{
			Type:        TypeExactMatch,
			Command:     text,
			Description: description,
			Confidence:  1.0,
		}
	}

	var best *Advice
	for _, candidate := range s.patterns {
		for _, expression := range candidate.expressions {
			match := expression.FindString(text)
			if match == "" {
				continue
			}
			confidence := float64(len(match)) / float64(len(text))
			if best == nil || confidence > best.Confidence {
				best = &Advice{
					Type:        TypePatternMatch,
					Category:    candidate.category,
					Suggestions: candidate.suggestions,
					Description: candidate.description,
					Confidence:  confidence,
				}
			}
		}
	}
	if best != nil && best.Confidence > s.confidenceThreshold {
		return best
	}

	return &Advice{
		Type:        TypeNoMatch,
		Suggestions: []string{"help"},
		Description: "No matching command found",
	}
}

// Corrections proposes likely intended commands for a mistyped one, using
// sequence similarity against the known command set plus a fixed table of
// frequent typos.
func (s *Service) Corrections(command string) []string {
	command = strings.ToLower(strings.TrimSpace(command))
	seen := make(map[string]bool)
	var ret []string
	for name := range s.descriptions {
		if similarity(command, name) > s.similarityThreshold && !seen[name] {
			seen[name] = true
			ret = append(ret, name)
		}
	}
	if fixed, ok := corrections[command]; ok && !seen[fixed] {
		ret = append(ret, fixed)
	}
	sort.Strings(ret)
	return ret
}

// Explain returns the description of a command, if known.
func (s *Service) Explain(command string) (string, bool) {
	fields := strings.Fields(strings.ToLower(command))
	if len(fields) == 0 {
		return "", false
	}
	description, ok := s.descriptions[fields[0]]
	return description, ok
}

// Examples returns usage samples for a command.
func (s *Service) Examples(command string) []string {
	if samples, ok := examples[strings.ToLower(command)]; ok {
		return samples
	}
	return []string{command}
}

// Validate checks a command line and produces user-facing feedback.
func (s *Service) Validate(command string) (bool, string) {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return false, "Empty command"
	}
	name := strings.ToLower(strings.Fields(trimmed)[0])
	if description, ok := s.descriptions[name]; ok {
		return true, fmt.Sprintf("Valid command: %v", description)
	}
	if suggestions := s.Corrections(name); len(suggestions) > 0 {
		if len(suggestions) > 3 {
			suggestions = suggestions[:3]
		}
		return false, fmt.Sprintf("Command not found. Did you mean: %v?", strings.Join(suggestions, ", "))
	}
	return false, "Unknown command. Type 'help' for available commands."
}

// Complete proposes completions for a partial command line: command names
// for the first token, entry names from the working directory afterwards.
func (s *Service) Complete(partial string) []string {
	var ret []string
	lower := strings.ToLower(partial)
	fields := strings.Fields(partial)

	if len(fields) <= 1 && !strings.HasSuffix(partial, " ") {
		for name := range s.descriptions {
			if strings.HasPrefix(name, lower) {
				ret = append(ret, name)
			}
		}
		sort.Strings(ret)
		return ret
	}

	prefix := ""
	if !strings.HasSuffix(partial, " ") && len(fields) > 0 {
		prefix = fields[len(fields)-1]
	}
	objects, err := s.fs.List(context.Background(), s.session.Directory())
	if err != nil {
		return ret
	}
	dir := s.session.Directory()
	for _, object := range objects {
		if url.Path(object.URL()) == dir || object.Name() == "" {
			continue
		}
		if strings.HasPrefix(object.Name(), prefix) {
			ret = append(ret, object.Name())
		}
	}
	sort.Strings(ret)
	return ret
}

// similarity computes a 0..1 sequence similarity ratio between two strings.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	matcher := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return matcher.Ratio()
}
