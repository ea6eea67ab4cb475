package frontmatter

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/OleBialas/quarto-docker-render/internal/errors"
)

// ErrInvalidYAML is returned when the front matter block is not valid YAML.
var ErrInvalidYAML = errors.New("invalid YAML")

// blockPattern matches a document that starts with a "---" line and captures
// everything up to the first following "---" line. Trailing spaces or tabs on
// the delimiter lines are tolerated. The body group is optional and lazy, so
// a "---" directly after the opening line closes an empty block.
var blockPattern = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(?:(.*?)\r?\n)??---[ \t]*(?:\r?\n|\z)`)

// Extract returns the raw front matter block of content and whether the
// document has one. The delimiter lines are not included.
func Extract(content string) (string, bool) {
	m := blockPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FrontMatter is a decoded front matter mapping. A nil FrontMatter is valid
// and behaves as an empty mapping.
type FrontMatter map[string]any

// Decode parses block as YAML. An empty document, or one whose top level is
// not a mapping, yields a nil FrontMatter without error.
func Decode(block string) (FrontMatter, error) {
	var v any
	if err := yaml.Unmarshal([]byte(block), &v); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid YAML"), ErrInvalidYAML)
	}
	m, _ := AsMapping(v)
	return m, nil
}

// Parse extracts and decodes the front matter of content in one step.
// The boolean reports whether a front matter block was present.
func Parse(content string) (FrontMatter, bool, error) {
	block, ok := Extract(content)
	if !ok {
		return nil, false, nil
	}
	fm, err := Decode(block)
	if err != nil {
		return nil, true, err
	}
	return fm, true, nil
}

// Mapping returns the value at key if it is a mapping.
// A null value is not a mapping.
func (fm FrontMatter) Mapping(key string) (FrontMatter, bool) {
	v, ok := fm[key]
	if !ok {
		return nil, false
	}
	return AsMapping(v)
}

// String returns the value at key if it is a string.
func (fm FrontMatter) String(key string) (string, bool) {
	s, ok := fm[key].(string)
	return s, ok
}

// Sequence returns the value at key if it is a sequence.
func (fm FrontMatter) Sequence(key string) ([]any, bool) {
	seq, ok := fm[key].([]any)
	return seq, ok
}

// AsMapping converts a decoded YAML value to a FrontMatter if it is a
// mapping. Mappings with non-string keys are converted by formatting each
// key, which matches how YAML keys compare when rendered as text.
func AsMapping(v any) (FrontMatter, bool) {
	switch m := v.(type) {
	case map[string]any:
		return FrontMatter(m), true
	case map[any]any:
		out := make(FrontMatter, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
