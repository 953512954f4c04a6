package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Empaque-api/internal/domain"
	"github.com/jhoicas/Empaque-api/internal/domain/entity"
	"github.com/jhoicas/Empaque-api/internal/domain/packaging"
)

// Los IDs se derivan del nombre para que volver a generar el script no cambie las claves.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("empaque-api/seed"))

type catalog struct {
	Chambers []chamberYAML `yaml:"chambers"`
	Products []productYAML `yaml:"products"`
}

type chamberYAML struct {
	Name     string `yaml:"name"`
	Tag      string `yaml:"tag"`
	Capacity string `yaml:"capacity"`
}

type productYAML struct {
	Name         string     `yaml:"name"`
	RawMaterial  string     `yaml:"raw_material"`
	PackageType  string     `yaml:"package_type"`
	PackageSizes []sizeYAML `yaml:"package_sizes"`
}

type sizeYAML struct {
	Size string `yaml:"size"`
	Unit string `yaml:"unit"`
}

func parseCatalog(r io.Reader) (*catalog, error) {
	var cat catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
	}
	for i, c := range cat.Chambers {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: cámara %d sin nombre", domain.ErrInvalidInput, i)
		}
		if !entity.ValidChamberTag(c.Tag) {
			return nil, fmt.Errorf("cámara %q: %w: %q", c.Name, domain.ErrInvalidChamberTag, c.Tag)
		}
		if d, err := decimal.NewFromString(c.Capacity); err != nil || !d.IsPositive() {
			return nil, fmt.Errorf("%w: cámara %q con capacidad inválida", domain.ErrInvalidInput, c.Name)
		}
	}
	for i, p := range cat.Products {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.RawMaterial) == "" {
			return nil, fmt.Errorf("%w: producto %d sin nombre o materia prima", domain.ErrInvalidInput, i)
		}
		if _, err := packaging.ParsePackageType(p.PackageType); err != nil {
			return nil, fmt.Errorf("producto %q: %w", p.Name, err)
		}
		for _, s := range p.PackageSizes {
			if _, err := packaging.ParseUnit(s.Unit); err != nil {
				return nil, fmt.Errorf("producto %q: %w", p.Name, err)
			}
			if d, err := decimal.NewFromString(s.Size); err != nil || !d.IsPositive() {
				return nil, fmt.Errorf("%w: producto %q con tamaño %q", domain.ErrInvalidInput, p.Name, s.Size)
			}
		}
	}
	return &cat, nil
}

func seedID(kind, name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+name)).String()
}

func writeSQL(w io.Writer, cat *catalog, source string) error {
	var b strings.Builder
	b.WriteString("-- Catálogo inicial de cámaras y productos\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)

	if len(cat.Chambers) > 0 {
		b.WriteString("-- 1. Cámaras\n")
		b.WriteString("INSERT INTO chambers (id, name, capacity, tag) VALUES\n")
		for i, c := range cat.Chambers {
			capacity, _ := decimal.NewFromString(c.Capacity)
			fmt.Fprintf(&b, "  ('%s', '%s', %s, '%s')", seedID("chamber", c.Name), escapeSQL(c.Name), capacity.String(), c.Tag)
			if i < len(cat.Chambers)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
	}

	if len(cat.Products) > 0 {
		b.WriteString("-- 2. Productos\n")
		b.WriteString("INSERT INTO products (id, name, raw_material, package_type, package_sizes) VALUES\n")
		for i, p := range cat.Products {
			sizes := make([]entity.PackageSize, 0, len(p.PackageSizes))
			for _, s := range p.PackageSizes {
				d, _ := decimal.NewFromString(s.Size)
				sizes = append(sizes, entity.PackageSize{Size: d, Unit: s.Unit})
			}
			raw, err := json.Marshal(sizes)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s'::jsonb)",
				seedID("product", p.Name), escapeSQL(p.Name), escapeSQL(p.RawMaterial), p.PackageType, escapeSQL(string(raw)))
			if i < len(cat.Products)-1 {
				b.WriteString(",\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString("ON CONFLICT (name) DO NOTHING;\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
