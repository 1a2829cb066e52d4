// seed gera o script SQL que popula as tabelas paramétricas de localidade
// (uf e municipio) a partir do XML de municípios do IBGE.
//
// Uso: go run ./cmd/seed [caminho/Municipios.xml]
// Por padrão procura Municipios.xml no diretório atual.
// Escreve: internal/infrastructure/postgres/migrations/002_seed_localidades.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type municipios struct {
	Municipios []municipio `xml:"municipio"`
}

type municipio struct {
	Codigo string `xml:"codigo,attr"`
	Nome   string `xml:"nome,attr"`
	UF     struct {
		Codigo string `xml:"codigo,attr"`
		Sigla  string `xml:"sigla,attr"`
		Nome   string `xml:"nome,attr"`
	} `xml:"uf"`
}

func main() {
	xmlPath := "Municipios.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var m municipios
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&m); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	// UFs únicas: codigo -> (sigla, nome)
	type uf struct{ sigla, nome string }
	ufMap := make(map[string]uf)
	var cidades []struct{ codigo, nome, ufCodigo string }
	for _, v := range m.Municipios {
		if v.Codigo == "" || v.Nome == "" || v.UF.Codigo == "" {
			continue
		}
		ufMap[v.UF.Codigo] = uf{sigla: strings.TrimSpace(v.UF.Sigla), nome: strings.TrimSpace(v.UF.Nome)}
		cidades = append(cidades, struct{ codigo, nome, ufCodigo string }{
			codigo:   strings.TrimSpace(v.Codigo),
			nome:     strings.TrimSpace(v.Nome),
			ufCodigo: strings.TrimSpace(v.UF.Codigo),
		})
	}

	// Ordenar UFs por código para saída estável
	var ufCodigos []string
	for c := range ufMap {
		ufCodigos = append(ufCodigos, c)
	}
	sort.Strings(ufCodigos)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_localidades.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Criar arquivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Unidades federativas e municípios (código IBGE)\n")
	out.WriteString("-- Gerado a partir de Municipios.xml\n\n")

	out.WriteString("-- 1. Unidades federativas\n")
	out.WriteString("INSERT INTO uf (codigo, sigla, nome) VALUES\n")
	for i, c := range ufCodigos {
		u := ufMap[c]
		sep := ","
		if i == len(ufCodigos)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (%s, '%s', '%s')%s\n", c, escapeSQL(u.sigla), escapeSQL(u.nome), sep)
	}
	out.WriteString("ON CONFLICT (codigo) DO UPDATE SET sigla = EXCLUDED.sigla, nome = EXCLUDED.nome;\n\n")

	out.WriteString("-- 2. Municípios (código IBGE completo)\n")
	for _, cidade := range cidades {
		fmt.Fprintf(out, "INSERT INTO municipio (codigo, uf_codigo, nome) VALUES (%s, %s, '%s')\n",
			cidade.codigo, cidade.ufCodigo, escapeSQL(cidade.nome))
		out.WriteString("ON CONFLICT (codigo) DO UPDATE SET nome = EXCLUDED.nome;\n")
	}

	fmt.Printf("Gerado %s: %d UFs, %d municípios\n", outPath, len(ufCodigos), len(cidades))
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
