package dto

import (
	"bytes"
	"encoding/json"

	"github.com/gesco-erp/gesco-api/internal/domain"
)

// Optional champ de PATCH à trois états : absent, null (effacer), valeur.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some construit un Optional renseigné.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null construit un Optional explicitement null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON n'est appelé que si la clé est présente dans le corps.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// MarshalJSON sérialise la valeur ou null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// HasValue vrai si une valeur non nulle est fournie.
func (o Optional[T]) HasValue() bool {
	return o.Set && !o.Null
}

// Cleared vrai si la clé est fournie à null.
func (o Optional[T]) Cleared() bool {
	return o.Set && o.Null
}

// Apply copie la valeur dans dst si elle est fournie et non nulle.
func (o Optional[T]) Apply(dst *T) {
	if o.HasValue() {
		*dst = o.Value
	}
}

// ApplyNullable met à jour un champ nullable : null efface, valeur remplace, absent ne change rien.
func ApplyNullable[T any](o Optional[T], dst **T) {
	switch {
	case !o.Set:
	case o.Null:
		*dst = nil
	default:
		v := o.Value
		*dst = &v
	}
}

// Clearable champ à trois états, quel que soit son type.
type Clearable interface {
	Cleared() bool
}

// NotNull CHAMP_NON_NULLABLE si le champ obligatoire est fourni à null.
func NotNull(name string, o Clearable) error {
	if o.Cleared() {
		return domain.BadRequest("CHAMP_NON_NULLABLE", "Le champ « %s » ne peut pas être effacé.", name)
	}
	return nil
}

// FirstError première erreur non nulle.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
