package eda

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Sink receives the figures produced by the chart functions.
type Sink interface {
	Render(fig *Figure) error
}

// FileSink writes every figure as a PNG file "NNN-name.png" into Dir,
// numbering figures in the order they are rendered.
type FileSink struct {
	Dir string

	seq int
}

func (s *FileSink) Render(fig *Figure) error {
	s.seq++
	name := filepath.Join(s.Dir, fmt.Sprintf("%03d-%s.png", s.seq, slug(fig.Name)))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := fig.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("eda: writing %s: %w", name, err)
	}
	return f.Close()
}

// Recorder keeps rendered figures in memory.
type Recorder struct {
	Figures []*Figure
}

func (r *Recorder) Render(fig *Figure) error {
	r.Figures = append(r.Figures, fig)
	return nil
}

// Names returns the names of the recorded figures.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Figures))
	for i, f := range r.Figures {
		names[i] = f.Name
	}
	return names
}

type discard struct{}

func (discard) Render(*Figure) error { return nil }

// Discard is a Sink which drops all figures.
var Discard Sink = discard{}

// slug turns s into a lower case file name fragment.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
