package interact

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/galaxypad/galaxy/internal/galerrors"
	"github.com/galaxypad/galaxy/internal/modulate"
	"github.com/galaxypad/galaxy/internal/value"
)

// savedSession is the on-disk shape of a --save-state file: the
// session's modulated state plus enough context for a human reading
// the file to know what it is. A handful of tagged fields, loaded with
// yaml.Unmarshal, no nested schema versioning.
type savedSession struct {
	Modulated string `yaml:"modulated"`
	Comment   string `yaml:"comment,omitempty"`
}

// SaveState modulates state and writes it to path as a small YAML
// envelope, so a session can be resumed across separate `galaxy run`
// invocations: the normal-form state' value survives between sessions
// by being modulated to a bit string and back.
func SaveState(path string, state value.Value, comment string) error {
	doc := savedSession{
		Modulated: modulate.Encode(state),
		Comment:   comment,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return galerrors.Newf(galerrors.STA002, "interact", "encoding session state: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return galerrors.Newf(galerrors.STA002, "interact", "writing %q: %v", path, err)
	}
	return nil
}

// LoadState reads a --save-state file written by SaveState and
// demodulates its state back into a value.Value.
func LoadState(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, galerrors.Newf(galerrors.STA001, "interact", "reading %q: %v", path, err)
	}
	var doc savedSession
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, galerrors.Newf(galerrors.STA001, "interact", "parsing %q: %v", path, err)
	}
	state, err := modulate.Decode(doc.Modulated)
	if err != nil {
		return nil, galerrors.Newf(galerrors.STA001, "interact", "decoding saved state in %q: %v", path, err)
	}
	return state, nil
}
