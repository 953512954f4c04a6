package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empaque-api/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTareCmd(t *testing.T) {
	out, err := run(t, "tare", "--type", "pouch", "--size", "500", "--unit", "gm")
	require.NoError(t, err)
	assert.Equal(t, "pouch 500 gm: tara 6 gm\n", out)
}

func TestTareCmd_UnknownUnit(t *testing.T) {
	_, err := run(t, "tare", "--type", "pouch", "--size", "500", "--unit", "lb")
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
}

func TestTareCmd_CustomTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taras.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pouch:\n  - max_grams: 1000\n    tare_grams: 8\n  - tare_grams: 20\n"), 0o600))

	out, err := run(t, "--tare-table", path, "tare", "--type", "pouch", "--size", "500")
	require.NoError(t, err)
	assert.Equal(t, "pouch 500 gm: tara 8 gm\n", out)
}

func TestMaxPacketsCmd(t *testing.T) {
	out, err := run(t, "max-packets", "--stored-kg", "120", "--type", "bag", "--size", "1", "--unit", "kg")
	require.NoError(t, err)
	assert.Contains(t, out, "8000 paquetes")
}

func TestMaxPacketsCmd_UnknownType(t *testing.T) {
	_, err := run(t, "max-packets", "--stored-kg", "120", "--type", "sack", "--size", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownPackage)
}

const draftTemplate = `{
  "chambers": [
    {"id": "c1", "name": "Seca 1", "tag": "dry", "capacity": "1000"},
    {"id": "c2", "name": "Congelada 1", "tag": "frozen", "capacity": "500"}
  ],
  "product": {
    "id": "p1", "name": "Arveja", "raw_material": "arveja", "package_type": "pouch",
    "package_sizes": [{"size": "500", "unit": "gm", "count": 0}, {"size": "1", "unit": "kg", "count": 0}]
  },
  "draft": {
    "rm_consumption": [{"chamber_id": "c1", "container_count": 2, "container_size": "25", "container_unit": "kg"}],
    "packages": {
      "500gm": {"bag_count": 10, "packets_per_bag": 20, "chambers": {"c1": 6, "c2": BAGS}}
    }
  }
}`

func TestRunValidate_Valid(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(context.Background(), strings.NewReader(strings.Replace(draftTemplate, "BAGS", "4", 1)), &out, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Materia prima consumida: 50.000 kg")
	assert.Contains(t, out.String(), "[OK] 500 gm: 10 producidas, 10 asignadas")
	assert.Contains(t, out.String(), "Total: 10 bolsas, 200 paquetes")
	assert.Contains(t, out.String(), "Plan válido")
}

func TestRunValidate_UnderAssigned(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(context.Background(), strings.NewReader(strings.Replace(draftTemplate, "BAGS", "1", 1)), &out, false)
	assert.ErrorIs(t, err, errPlanRejected)
	assert.Contains(t, out.String(), "[ERROR] 500 gm: 10 producidas, 7 asignadas")
	assert.Contains(t, out.String(), "Plan inválido")
}

func TestRunValidate_UnknownChamber(t *testing.T) {
	doc := strings.Replace(draftTemplate, `"c2": BAGS`, `"c9": 4`, 1)
	err := runValidate(context.Background(), strings.NewReader(doc), &bytes.Buffer{}, false)
	assert.ErrorIs(t, err, domain.ErrChamberNotFound)
}

func TestRunValidate_JSON(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(context.Background(), strings.NewReader(strings.Replace(draftTemplate, "BAGS", "4", 1)), &out, true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"valid": true`)
	assert.Contains(t, out.String(), `"sku_id": "500gm"`)
}

func TestValidateCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "borrador.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(draftTemplate, "BAGS", "5", 1)), 0o600))

	out, err := run(t, "validate", path)
	assert.ErrorIs(t, err, errPlanRejected)
	assert.Contains(t, out, "sobran 1")
}
