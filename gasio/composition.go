package gasio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ansel1/merry"

	"github.com/katalvlaran/gasq/gas"
)

// compositionFile mirrors the JSON input layout.
type compositionFile struct {
	Composition map[string]float64 `json:"composition"`
}

// LoadComposition reads a composition from path, dispatching on the
// extension: .json expects {"composition": {...}}, .csv expects a
// header row naming component and mole_fraction columns.
//
// Errors: ErrUnsupportedFormat, ErrMissingCompositionKey, ErrBadHeader,
// plus wrapped read/parse failures.
func LoadComposition(path string) (gas.Composition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadCompositionJSON(path)
	case ".csv":
		return loadCompositionCSV(path)
	default:
		return nil, merry.Appendf(ErrUnsupportedFormat, "%s", path)
	}
}

func loadCompositionJSON(path string) (gas.Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Prepend(err, "read composition")
	}
	var f compositionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, merry.Prependf(err, "parse composition %s", path)
	}
	if f.Composition == nil {
		return nil, merry.Appendf(ErrMissingCompositionKey, "%s", path)
	}
	c := make(gas.Composition, len(f.Composition))
	for name, v := range f.Composition {
		c[gas.Species(strings.TrimSpace(name))] = v
	}
	return c, nil
}

func loadCompositionCSV(path string) (gas.Composition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, merry.Prepend(err, "read composition")
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, merry.Prependf(err, "parse composition %s", path)
	}
	compIdx, fracIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "component":
			compIdx = i
		case "mole_fraction":
			fracIdx = i
		}
	}
	if compIdx < 0 || fracIdx < 0 {
		return nil, merry.Appendf(ErrBadHeader, "%s", path)
	}

	c := make(gas.Composition)
	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, merry.Prependf(err, "parse composition %s", path)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[fracIdx]), 64)
		if err != nil {
			return nil, merry.Prependf(err, "%s line %d", path, line)
		}
		// Duplicate component rows overwrite earlier ones.
		c[gas.Species(strings.TrimSpace(rec[compIdx]))] = v
	}
	return c, nil
}
