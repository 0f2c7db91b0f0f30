package en

import (
	"embed"
	"fmt"

	"github.com/openacta/ducktype/internal/rank"
	"github.com/openacta/ducktype/internal/rank/classifierfile"
)

//go:embed testdata/classifiers/*.json
var classifierFS embed.FS

// loadClassifiers reads the embedded testdata/classifiers/<locale>.json
// file into a rank.Table via classifierfile.LoadReader, the same
// sentinel-tolerant JSON decoder the on-disk authoring format uses (spec
// §6 treats the classifier file format as a single versioned contract,
// not two). A malformed embedded classifier file panics at package-init
// time (spec §7's "MalformedClassifierFile... Panic at startup
// (developer error)" row) — this is the en package's own rule data, not
// caller input, so there is nothing to recover from.
func loadClassifiers(loc string) rank.Table {
	f, err := classifierFS.Open("testdata/classifiers/" + loc + ".json")
	if err != nil {
		panic(fmt.Sprintf("en: missing embedded classifier file for %s: %v", loc, err))
	}
	defer f.Close()

	table, err := classifierfile.LoadReader(f)
	if err != nil {
		panic(fmt.Sprintf("en: malformed embedded classifier file for %s: %v", loc, err))
	}
	return table
}
