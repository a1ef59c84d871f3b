package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog_Latin1(t *testing.T) {
	f, err := os.Open("testdata/propiedades_latin1.xml")
	require.NoError(t, err)
	defer f.Close()

	props, err := parseCatalog(f)
	require.NoError(t, err)
	require.Len(t, props, 4, "duplicados por nombre normalizado y vacíos se descartan")

	assert.Equal(t, "Gravedad API", props[0].name)
	assert.Equal(t, "°API", props[0].unit)
	assert.Equal(t, "Azufre", props[1].name)
	assert.Equal(t, "% peso", props[1].unit)
	assert.Equal(t, "Viscosidad cinemática", props[2].name)
	assert.Equal(t, "Punto de inflamación", props[3].name)
}

func TestParseCatalog_DeterministicIDs(t *testing.T) {
	xml := `<catalogo><propiedad nombre="Azufre" unidad="%"/></catalogo>`
	a, err := parseCatalog(strings.NewReader(xml))
	require.NoError(t, err)
	b, err := parseCatalog(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, a[0].id, b[0].id)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := parseCatalog(strings.NewReader(`<catalogo nombre=></catalogo>`))
	assert.Error(t, err)
}

func TestWriteSQL(t *testing.T) {
	var b strings.Builder
	err := writeSQL(&b, []property{
		{id: "1", name: "Punto d'inflamación", key: "punto d'inflamación", unit: "°C"},
		{id: "2", name: "Azufre", key: "azufre", unit: "%"},
	})
	require.NoError(t, err)
	out := b.String()
	assert.Contains(t, out, "('1', 'Punto d''inflamación', 'punto d''inflamación', '°C'),\n")
	assert.Contains(t, out, "('2', 'Azufre', 'azufre', '%')\n")
	assert.Contains(t, out, "ON CONFLICT (name_key) DO UPDATE SET unit = EXCLUDED.unit;")
}
