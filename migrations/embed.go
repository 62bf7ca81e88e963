// Package migrations embarque le schéma SQL appliqué par golang-migrate.
package migrations

import "embed"

// FS fichiers NNNNNN_nom.{up,down}.sql.
//
//go:embed *.sql
var FS embed.FS
