// seed_catalog genera un script SQL para poblar el catálogo de productos
// a partir de un XML de catálogo (Catalogo.xml).
//
// Uso: go run ./cmd/seed_catalog [ruta/Catalogo.xml]
// Por defecto busca Catalogo.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type catalogo struct {
	Categorias []categoria `xml:"categoria"`
}

type categoria struct {
	Nombre    string     `xml:"nombre,attr"`
	Productos []producto `xml:"producto"`
}

type producto struct {
	Nombre      string `xml:"nombre,attr"`
	Descripcion string `xml:"descripcion,attr"`
	Precio      string `xml:"precio,attr"`
	Stock       string `xml:"stock,attr"`
}

type row struct {
	id, name, description, category string
	price                           decimal.Decimal
	stock                           int64
}

func main() {
	xmlPath := "Catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var cat catalogo
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&cat); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	var rows []row
	skipped := 0
	for _, c := range cat.Categorias {
		category := strings.TrimSpace(c.Nombre)
		for _, p := range c.Productos {
			name := strings.TrimSpace(p.Nombre)
			if name == "" {
				skipped++
				continue
			}
			price, err := decimal.NewFromString(strings.TrimSpace(p.Precio))
			if err != nil || price.IsNegative() {
				skipped++
				continue
			}
			stock, err := strconv.ParseInt(strings.TrimSpace(p.Stock), 10, 64)
			if err != nil || stock < 0 {
				stock = 0
			}
			// ID determinístico por categoría+nombre: re-ejecutar el seed
			// actualiza en lugar de duplicar.
			id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("tienda/products/"+category+"/"+name)).String()
			rows = append(rows, row{
				id:          id,
				name:        name,
				description: strings.TrimSpace(p.Descripcion),
				category:    category,
				price:       price,
				stock:       stock,
			})
		}
	}

	// Salida estable: ordenar por categoría y nombre
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].category != rows[j].category {
			return rows[i].category < rows[j].category
		}
		return rows[i].name < rows[j].name
	})

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de productos\n")
	out.WriteString("-- Generado desde Catalogo.xml\n\n")
	for _, r := range rows {
		fmt.Fprintf(out, "INSERT INTO products (id, name, description, price, stock, category)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s, %d, '%s')\n",
			r.id, escapeSQL(r.name), escapeSQL(r.description), r.price.String(), r.stock, escapeSQL(r.category))
		out.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description, price = EXCLUDED.price, category = EXCLUDED.category;\n")
	}

	fmt.Printf("Generado %s: %d productos (%d descartados)\n", outPath, len(rows), skipped)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
