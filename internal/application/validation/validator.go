// Package validation porte la validation structurelle des charges utiles (types, longueurs,
// précision décimale, formats réglementaires) et la traduit en erreurs métier.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/pkg/ohada"
)

// ReasonValidation sous-code des erreurs structurelles.
const ReasonValidation = "VALIDATION"

var std = newValidate()

// Struct valide s et renvoie la première violation sous forme de domain.BadRequest.
func Struct(s any) error {
	err := std.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return domain.BadRequest(ReasonValidation, "%s", message(verrs[0]))
	}
	return domain.BadRequest(ReasonValidation, "Données invalides : %s", err.Error())
}

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, dto.Date{})
	v.RegisterCustomTypeFunc(optionalValue,
		dto.Optional[string]{},
		dto.Optional[int64]{},
		dto.Optional[int]{},
		dto.Optional[bool]{},
		dto.Optional[decimal.Decimal]{},
		dto.Optional[dto.Date]{},
	)

	must(v.RegisterValidation("notblank", validators.NotBlank))
	must(v.RegisterValidation("dgte0", decimalCheck(func(d decimal.Decimal, _ string) bool { return !d.IsNegative() })))
	must(v.RegisterValidation("dgt0", decimalCheck(func(d decimal.Decimal, _ string) bool { return d.IsPositive() })))
	must(v.RegisterValidation("dprec", decimalCheck(func(d decimal.Decimal, param string) bool {
		places, err := strconv.Atoi(param)
		if err != nil {
			return false
		}
		return d.Equal(d.Truncate(int32(places)))
	})))
	must(v.RegisterValidation("pays", func(fl validator.FieldLevel) bool { return ohada.PaysValide(fl.Field().String()) }))
	must(v.RegisterValidation("devise", func(fl validator.FieldLevel) bool { return ohada.DeviseValide(fl.Field().String()) }))
	must(v.RegisterValidation("niu", func(fl validator.FieldLevel) bool { return ohada.NIUValide(fl.Field().String()) }))
	must(v.RegisterValidation("rccm", func(fl validator.FieldLevel) bool { return ohada.RCCMValide(fl.Field().String()) }))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(dto.Date); ok && !d.IsZero() {
		return d.Time
	}
	return nil
}

// optionalValue expose la valeur d'un Optional (nil si absent ou null) pour que omitempty s'applique.
func optionalValue(field reflect.Value) any {
	if !field.FieldByName("Set").Bool() || field.FieldByName("Null").Bool() {
		return nil
	}
	switch v := field.FieldByName("Value").Interface().(type) {
	case decimal.Decimal:
		return v.String()
	case dto.Date:
		return dateValue(reflect.ValueOf(v))
	default:
		return v
	}
}

func decimalCheck(ok func(d decimal.Decimal, param string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d, fl.Param())
	}
}

// fieldPath chemin JSON du champ sans le nom de la structure racine (ex. lignes[0].debit).
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	f := fieldPath(fe)
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Le champ « %s » est obligatoire.", f)
	case "notblank":
		return fmt.Sprintf("Le champ « %s » ne peut pas être vide.", f)
	case "max":
		if isString {
			return fmt.Sprintf("Le champ « %s » doit contenir au plus %s caractères.", f, fe.Param())
		}
		return fmt.Sprintf("Le champ « %s » doit être inférieur ou égal à %s.", f, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("Le champ « %s » doit contenir au moins %s caractères.", f, fe.Param())
		}
		return fmt.Sprintf("Le champ « %s » doit être supérieur ou égal à %s.", f, fe.Param())
	case "len":
		return fmt.Sprintf("Le champ « %s » doit contenir exactement %s caractères.", f, fe.Param())
	case "gt":
		return fmt.Sprintf("Le champ « %s » doit être strictement supérieur à %s.", f, fe.Param())
	case "gte":
		return fmt.Sprintf("Le champ « %s » doit être supérieur ou égal à %s.", f, fe.Param())
	case "oneof":
		return fmt.Sprintf("Le champ « %s » doit valoir l'une des valeurs : %s (reçu : « %v »).",
			f, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "dgte0":
		return fmt.Sprintf("Le champ « %s » doit être positif ou nul.", f)
	case "dgt0":
		return fmt.Sprintf("Le champ « %s » doit être strictement positif.", f)
	case "dprec":
		return fmt.Sprintf("Le champ « %s » doit comporter au plus %s décimales.", f, fe.Param())
	case "pays":
		return fmt.Sprintf("Le champ « %s » doit être un code pays ISO 3166-1 alpha-3 (reçu : « %v »).", f, fe.Value())
	case "devise":
		return fmt.Sprintf("Le champ « %s » doit être un code devise ISO 4217 (reçu : « %v »).", f, fe.Value())
	case "niu":
		return fmt.Sprintf("Le NIU doit comporter de 1 à %d caractères alphanumériques.", ohada.NIUMaxLen)
	case "rccm":
		return fmt.Sprintf("Le RCCM doit comporter au plus %d caractères.", ohada.RCCMMaxLen)
	case "email":
		return fmt.Sprintf("Le champ « %s » doit être une adresse e-mail valide.", f)
	default:
		return fmt.Sprintf("Le champ « %s » est invalide.", f)
	}
}
