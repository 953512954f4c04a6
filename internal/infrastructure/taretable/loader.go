// Package taretable carga la tabla de taras desde un archivo YAML:
//
//	pouch:
//	  - max_grams: 100
//	    tare_grams: 2
//	  - tare_grams: 25   # sin max_grams: banda abierta
//	bag:
//	  - max_grams: 1000
//	    tare_grams: 15
//
// Los tipos que no aparecen en el archivo conservan las bandas por defecto.
package taretable

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
)

type bandYAML struct {
	MaxGrams  float64 `yaml:"max_grams"`
	TareGrams float64 `yaml:"tare_grams"`
}

// Load lee path y devuelve la tabla resultante. Con path vacío devuelve la tabla por defecto.
func Load(path string) (packaging.TareTable, error) {
	if path == "" {
		return packaging.DefaultTareTable(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taretable: leer %s: %w", path, err)
	}
	table, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("taretable: %s: %w", path, err)
	}
	return table, nil
}

// Parse decodifica el YAML, lo combina con la tabla por defecto y la normaliza.
func Parse(r io.Reader) (packaging.TareTable, error) {
	var doc map[string][]bandYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
	}

	table := packaging.DefaultTareTable()
	for name, bands := range doc {
		pt, err := packaging.ParsePackageType(name)
		if err != nil {
			return nil, err
		}
		if len(bands) == 0 {
			return nil, fmt.Errorf("%w: %s sin bandas", domain.ErrInvalidInput, pt)
		}
		out := make([]packaging.TareBand, 0, len(bands))
		for _, b := range bands {
			out = append(out, packaging.TareBand{
				MaxGrams:  decimal.NewFromFloat(b.MaxGrams),
				TareGrams: decimal.NewFromFloat(b.TareGrams),
			})
		}
		table[pt] = out
	}
	if err := table.Normalize(); err != nil {
		return nil, err
	}
	return table, nil
}
