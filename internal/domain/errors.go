package domain

import (
	"errors"
	"fmt"
)

// Catégories d'erreurs métier. Chaque *Error s'y rattache (errors.Is).
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("rate limited")

	// ErrDuplicate renvoyé par les adaptateurs de persistance sur violation d'unicité.
	ErrDuplicate = errors.New("duplicate")
)

// Codes stables exposés dans l'enveloppe d'erreur.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeBadRequest          = "BAD_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeForbiddenEntreprise = "FORBIDDEN_ENTREPRISE"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeInternal            = "INTERNAL_ERROR"
)

// Error erreur métier typée : catégorie, code d'enveloppe, sous-code optionnel et message lisible.
type Error struct {
	Kind    error
	Code    string
	Reason  string
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound ressource absente ou référence introuvable.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict violation d'unicité.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}

// BadRequest règle métier ou format violé ; reason est un sous-code stable (ex. QUANTITE_INSUFFISANTE).
func BadRequest(reason, format string, args ...any) *Error {
	return &Error{Kind: ErrBadRequest, Code: CodeBadRequest, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized identifiants ou jeton invalides, utilisateur désactivé.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: ErrUnauthorized, Code: CodeUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Forbidden permission insuffisante.
func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: ErrForbidden, Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

// ForbiddenEntreprise accès à une donnée d'une autre entreprise.
func ForbiddenEntreprise() *Error {
	return &Error{
		Kind:    ErrForbidden,
		Code:    CodeForbiddenEntreprise,
		Message: "Accès refusé : cette ressource appartient à une autre entreprise.",
	}
}

// RateLimited budget de requêtes épuisé.
func RateLimited() *Error {
	return &Error{
		Kind:    ErrRateLimited,
		Code:    CodeRateLimitExceeded,
		Message: "Trop de requêtes. Réessayez dans une minute.",
	}
}

// ConflictOnDuplicate traduit ErrDuplicate en Conflict avec le message donné ; renvoie err sinon.
func ConflictOnDuplicate(err error, format string, args ...any) error {
	if errors.Is(err, ErrDuplicate) {
		return Conflict(format, args...)
	}
	return err
}

// As extrait l'*Error d'une chaîne d'erreurs.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasReason vrai si err est une *Error portant ce sous-code.
func HasReason(err error, reason string) bool {
	de, ok := As(err)
	return ok && de.Reason == reason
}
