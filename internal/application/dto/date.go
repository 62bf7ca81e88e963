package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain"
)

// DateLayout format des dates échangées (AAAA-MM-JJ).
const DateLayout = "2006-01-02"

// Date date calendaire sans heure, en UTC.
type Date struct {
	time.Time
}

// NewDate tronque t au jour.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MustDate analyse une date AAAA-MM-JJ (tests, constantes).
func MustDate(s string) Date {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return NewDate(t)
}

// DatePtr convertit un *time.Time en *Date.
func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// TimePtr convertit un *Date en *time.Time.
func (d *Date) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// UnmarshalJSON accepte "AAAA-MM-JJ" ou un horodatage RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: chaîne attendue")
	}
	parsed, err := parseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON sérialise au format AAAA-MM-JJ.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func parseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t), nil
	}
	return Date{}, fmt.Errorf("date invalide « %s » (format attendu AAAA-MM-JJ)", s)
}

// ParseDateParam analyse un paramètre de requête optionnel (vide = nil).
func ParseDateParam(name, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := parseDate(value)
	if err != nil {
		return nil, domain.BadRequest("DATE_INVALIDE", "Le paramètre %s est invalide : %s.", name, err.Error())
	}
	t := d.Time
	return &t, nil
}
