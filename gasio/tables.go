package gasio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gasq/energy"
	"github.com/katalvlaran/gasq/gas"
	"github.com/katalvlaran/gasq/quality"
)

// LoadLimits reads a quality.Limits table from a .json, .yaml or .yml
// file. Absent min/max sides decode as nil, leaving that side
// unbounded.
func LoadLimits(path string) (quality.Limits, error) {
	var limits quality.Limits
	if err := loadTable(path, &limits, "limits"); err != nil {
		return nil, err
	}
	return limits, nil
}

// LoadHeatingValues reads a per-species heating-value table (MJ/m3)
// that overrides energy.DefaultTable.
func LoadHeatingValues(path string) (energy.Table, error) {
	var t energy.Table
	if err := loadTable(path, &t, "heating values"); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadMolarMass reads a per-species molar-mass table (g/mol) that
// overrides gas.DefaultMolarMass.
func LoadMolarMass(path string) (map[gas.Species]float64, error) {
	var t map[gas.Species]float64
	if err := loadTable(path, &t, "molar masses"); err != nil {
		return nil, err
	}
	return t, nil
}

func loadTable(path string, out interface{}, what string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return merry.Prepend(err, "read "+what)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, out)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		return merry.Appendf(ErrUnsupportedFormat, "%s", path)
	}
	if err != nil {
		return merry.Prependf(err, "parse %s %s", what, path)
	}
	return nil
}
