package folio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"
)

// LoadTalks decodes a YAML list of talks. Any record missing its date, title
// or event fails the whole load. An empty document yields no talks.
func LoadTalks(r io.Reader) ([]Talk, error) {
	var talks []Talk
	if err := yaml.NewDecoder(r).Decode(&talks); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode talks: %w", err)
	}
	for i, t := range talks {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("talk %d: %w", i, err)
		}
	}
	return talks, nil
}

// TalksProvider reads the talks file. Failures never propagate: the site is
// built without talks and a warning is logged.
type TalksProvider struct {
	Path   string
	Logger *log.Logger
}

// Talks returns the talks in file order, or nil if the file cannot be read
// or decoded.
func (p *TalksProvider) Talks() []Talk {
	if p == nil || p.Path == "" {
		return nil
	}
	f, err := os.Open(p.Path)
	if err != nil {
		p.warnf("talks: can't read %s: %v", p.Path, err)
		return nil
	}
	defer f.Close()

	talks, err := LoadTalks(f)
	if err != nil {
		p.warnf("talks: can't decode %s: %v", p.Path, err)
		return nil
	}
	return talks
}

func (p *TalksProvider) warnf(format string, args ...interface{}) {
	if p.Logger != nil {
		p.Logger.Warnf(format, args...)
	}
}
