package docker

import (
	"fmt"
	"io"

	"github.com/OleBialas/quarto-docker-render/pkg/frontmatter"
)

// Front matter keys.
const (
	BlockKey   = "docker"
	ImageKey   = "image"
	OptionsKey = "options"
)

// Output line prefixes.
const (
	ImagePrefix  = "IMAGE="
	OptionPrefix = "OPTION="
)

// Config is the docker block of a document.
type Config struct {
	// Image is the container image, empty when absent or not a non-empty string.
	Image string
	// Options are extra arguments for the container runtime, in document order.
	Options []string
}

// FromFrontMatter returns the docker block of fm and whether one exists.
// A block exists when the docker key holds a mapping; its fields may still
// be empty.
func FromFrontMatter(fm frontmatter.FrontMatter) (*Config, bool) {
	block, ok := fm.Mapping(BlockKey)
	if !ok {
		return nil, false
	}

	cfg := &Config{}
	if image, ok := block.String(ImageKey); ok && image != "" {
		cfg.Image = image
	}
	if seq, ok := block.Sequence(OptionsKey); ok {
		for _, item := range seq {
			if opt, ok := item.(string); ok {
				cfg.Options = append(cfg.Options, opt)
			}
		}
	}
	return cfg, true
}

// HasImage reports whether an image was configured.
func (c *Config) HasImage() bool {
	return c != nil && c.Image != ""
}

// Lines renders c as output lines: the image line first, then one line per
// option. A nil Config renders no lines.
func (c *Config) Lines() Lines {
	if c == nil {
		return nil
	}
	lines := make(Lines, 0, len(c.Options)+1)
	if c.HasImage() {
		lines = append(lines, ImagePrefix+c.Image)
	}
	for _, opt := range c.Options {
		lines = append(lines, OptionPrefix+opt)
	}
	return lines
}

// Lines is an ordered set of output lines.
type Lines []string

// WriteTo writes each line followed by a newline.
func (l Lines) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range l {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
