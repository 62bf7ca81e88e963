package dto

import (
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// PageRequest pagination skip/limit des listes.
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Resolve vérifie skip >= 0 et limit dans [1, max].
func (p PageRequest) Resolve(max int) (repository.Page, error) {
	if p.Skip < 0 {
		return repository.Page{}, domain.BadRequest("PAGINATION_INVALIDE", "Le paramètre skip doit être positif ou nul (reçu %d).", p.Skip)
	}
	if p.Limit < 1 || p.Limit > max {
		return repository.Page{}, domain.BadRequest("PAGINATION_INVALIDE", "Le paramètre limit doit être compris entre 1 et %d (reçu %d).", max, p.Limit)
	}
	return repository.Page{Skip: p.Skip, Limit: p.Limit}, nil
}

// ErrorResponse enveloppe d'erreur HTTP.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`
}

// ListResponse liste paginée.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// NewList construit la réponse ; Items n'est jamais null.
func NewList[T any](items []T, p repository.Page) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Skip: p.Skip, Limit: p.Limit}
}

// Map applique f à chaque élément.
func Map[S any, T any](in []S, f func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
