package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// ligneCompte compte lu depuis un export du plan comptable.
type ligneCompte struct {
	Numero  string
	Libelle string
	Sens    string
}

// lirePlan lit un fichier « numero;libelle[;sens] ». Les exports des logiciels comptables
// de la zone sont souvent en ISO-8859-1 : encoding latin1 les décode.
func lirePlan(r io.Reader, encoding string) ([]ligneCompte, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "cp1252", "windows-1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("encodage non géré : %s", encoding)
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []ligneCompte
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ligne %d: %w", n, err)
		}
		if len(rec) < 2 || strings.HasPrefix(rec[0], "#") {
			continue
		}
		numero := strings.TrimSpace(rec[0])
		// en-tête éventuel
		if n == 1 && !estNumerique(numero) {
			continue
		}
		l := ligneCompte{Numero: numero, Libelle: strings.TrimSpace(rec[1])}
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			l.Sens = strings.ToLower(strings.TrimSpace(rec[2]))
		} else {
			l.Sens = sensParClasse(numero)
		}
		out = append(out, l)
	}
	return out, nil
}

// sensParClasse sens normal SYSCOHADA : capitaux (1) et produits (7) au crédit, le reste au débit.
func sensParClasse(numero string) string {
	if numero == "" {
		return entity.SensDebit
	}
	switch numero[0] {
	case '1', '7':
		return entity.SensCredit
	default:
		return entity.SensDebit
	}
}

func estNumerique(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
