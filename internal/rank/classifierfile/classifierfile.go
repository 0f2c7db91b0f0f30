// Package classifierfile loads and saves rank.Table from the on-disk
// classifier formats: a JSON document mapping rule name to {ok, ko}
// class data, with "Infinity"/"-Infinity" string sentinels for the
// log-probabilities a freshly-trained classifier can produce, and a YAML
// overlay format for hand-authored adjustments layered on top of a
// trained table.
package classifierfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openacta/ducktype/internal/rank"
)

// jsonFloat round-trips through the JSON string sentinels "Infinity" and
// "-Infinity" in addition to ordinary numeric literals, since
// encoding/json has no native representation for non-finite floats.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsInf(v, 1):
		return json.Marshal("Infinity")
	case math.IsInf(v, -1):
		return json.Marshal("-Infinity")
	default:
		return json.Marshal(v)
	}
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "Infinity":
			*f = jsonFloat(math.Inf(1))
			return nil
		case "-Infinity":
			*f = jsonFloat(math.Inf(-1))
			return nil
		default:
			return fmt.Errorf("classifierfile: unrecognized float sentinel %q", s)
		}
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

type classDataJSON struct {
	Prior       jsonFloat            `json:"prior"`
	Unseen      jsonFloat            `json:"unseen"`
	Likelihoods map[string]jsonFloat `json:"likelihoods"`
	N           int32                `json:"n"`
}

type classifierJSON struct {
	Ok classDataJSON  `json:"ok"`
	Ko *classDataJSON `json:"ko,omitempty"`
}

// Load reads a JSON classifier file into a rank.Table.
func Load(path string) (rank.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifierfile: reading %s: %w", path, err)
	}
	table, err := LoadReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("classifierfile: parsing %s: %w", path, err)
	}
	return table, nil
}

// LoadReader reads a JSON classifier document (spec §6's versioned
// rule-name -> {ok_data, ko_data?} contract) from r into a rank.Table.
// Embedders with their own source — an embed.FS, an in-memory buffer —
// use this directly instead of Load's path-based convenience wrapper.
func LoadReader(r io.Reader) (rank.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("classifierfile: reading: %w", err)
	}

	var raw map[string]classifierJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("classifierfile: parsing: %w", err)
	}

	table := make(rank.Table, len(raw))
	for name, c := range raw {
		table[name] = toClassifier(c)
	}
	return table, nil
}

// Save writes table to path as a JSON classifier file.
func Save(path string, table rank.Table) error {
	raw := make(map[string]classifierJSON, len(table))
	for name, c := range table {
		raw[name] = fromClassifier(c)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("classifierfile: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("classifierfile: writing %s: %w", path, err)
	}
	return nil
}

// overlayYAML is the hand-authoring format: a rule name maps directly to
// its ok-class likelihood overrides, leaving prior/unseen/n untouched.
// YAML 1.1's native .inf/-.inf scalars cover the same non-finite values
// the JSON sentinel strings do, without needing a custom marshaler.
type overlayYAML struct {
	Likelihoods map[string]float64 `yaml:"likelihoods"`
}

// LoadOverlay reads a YAML overlay file and merges its per-rule
// likelihood overrides into table, leaving rules absent from the
// overlay untouched and adding no new rules.
func LoadOverlay(path string, table rank.Table) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("classifierfile: reading overlay %s: %w", path, err)
	}

	var raw map[string]overlayYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("classifierfile: parsing overlay %s: %w", path, err)
	}

	for name, overlay := range raw {
		c, ok := table[name]
		if !ok {
			continue
		}
		for feature, lp := range overlay.Likelihoods {
			c.Ok.Likelihoods[feature] = lp
		}
		table[name] = c
	}
	return nil
}

func toClassifier(c classifierJSON) rank.Classifier {
	out := rank.Classifier{Ok: toClassData(c.Ok)}
	if c.Ko != nil {
		out.Ko = toClassData(*c.Ko)
	}
	return out
}

func toClassData(c classDataJSON) rank.ClassData {
	likelihoods := make(map[string]float64, len(c.Likelihoods))
	for f, lp := range c.Likelihoods {
		likelihoods[f] = float64(lp)
	}
	return rank.ClassData{
		Prior:       float64(c.Prior),
		Unseen:      float64(c.Unseen),
		Likelihoods: likelihoods,
		N:           c.N,
	}
}

func fromClassifier(c rank.Classifier) classifierJSON {
	out := classifierJSON{Ok: fromClassData(c.Ok)}
	if c.Ko.Likelihoods != nil || c.Ko.N != 0 {
		ko := fromClassData(c.Ko)
		out.Ko = &ko
	}
	return out
}

func fromClassData(c rank.ClassData) classDataJSON {
	likelihoods := make(map[string]jsonFloat, len(c.Likelihoods))
	for f, lp := range c.Likelihoods {
		likelihoods[f] = jsonFloat(lp)
	}
	return classDataJSON{
		Prior:       jsonFloat(c.Prior),
		Unseen:      jsonFloat(c.Unseen),
		Likelihoods: likelihoods,
		N:           c.N,
	}
}
