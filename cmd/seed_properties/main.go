// seed_properties genera el script SQL que carga el catálogo de propiedades medibles
// (API, azufre, viscosidad...) a partir de un XML de laboratorio.
//
// Uso: go run ./cmd/seed_properties [ruta/propiedades.xml] > seed_properties.sql
// Por defecto busca propiedades.xml en el directorio actual.
//
// Formato esperado (UTF-8 o ISO-8859-1):
//
//	<catalogo>
//	  <propiedad nombre="Gravedad API" unidad="°API"/>
//	  <propiedad><nombre>Azufre</nombre><unidad>% peso</unidad></propiedad>
//	</catalogo>
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// propertyNamespace espacio para IDs deterministas: el mismo nombre genera el mismo ID en cada corrida.
var propertyNamespace = uuid.MustParse("6f1d9c2e-7a43-4b8e-9a0c-3e5b2d7f4a10")

type property struct {
	id   string
	name string
	key  string
	unit string
}

func main() {
	xmlPath := "propiedades.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	props, err := parseCatalog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}
	if err := writeSQL(os.Stdout, props); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Generadas %d propiedades desde %s\n", len(props), xmlPath)
}

// parseCatalog lee el XML y devuelve las propiedades sin duplicados (por nombre normalizado),
// en el orden del archivo.
func parseCatalog(r io.Reader) ([]property, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") || strings.EqualFold(charset, "latin1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		if strings.EqualFold(charset, "windows-1252") {
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		}
		return input, nil
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("XML vacío")
	}

	seen := make(map[string]bool)
	var out []property
	for _, el := range root.SelectElements("propiedad") {
		name := strings.TrimSpace(el.SelectAttrValue("nombre", childText(el, "nombre")))
		if name == "" {
			continue
		}
		key := entity.NameKey(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, property{
			id:   uuid.NewSHA1(propertyNamespace, []byte(key)).String(),
			name: name,
			key:  key,
			unit: strings.TrimSpace(el.SelectAttrValue("unidad", childText(el, "unidad"))),
		})
	}
	return out, nil
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return c.Text()
	}
	return ""
}

// writeSQL escribe un INSERT idempotente: si el nombre ya existe solo actualiza la unidad.
func writeSQL(w io.Writer, props []property) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de propiedades medibles\n")
	b.WriteString("-- Generado por cmd/seed_properties\n\n")
	if len(props) == 0 {
		b.WriteString("-- (sin propiedades)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	b.WriteString("INSERT INTO property_definitions (id, name, name_key, unit) VALUES\n")
	for i, p := range props {
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s')", p.id, escapeSQL(p.name), escapeSQL(p.key), escapeSQL(p.unit))
		if i < len(props)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	b.WriteString("ON CONFLICT (name_key) DO UPDATE SET unit = EXCLUDED.unit;\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
