package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Types de jeton émis par l'API.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrWrongType le jeton est valide mais n'est pas du type attendu.
var ErrWrongType = errors.New("jwt: type de jeton inattendu")

// Subject identité portée par chaque jeton : un utilisateur dans une entreprise.
type Subject struct {
	UserID       int64
	EntrepriseID int64
	RoleID       int64
}

// Claims claims standard plus l'identité applicative.
type Claims struct {
	jwt.RegisteredClaims
	UserID       int64  `json:"user_id"`
	EntrepriseID int64  `json:"entreprise_id"`
	RoleID       int64  `json:"role_id"`
	Type         string `json:"typ"`
}

// Identity renvoie l'identité portée par les claims.
func (c *Claims) Identity() Subject {
	return Subject{UserID: c.UserID, EntrepriseID: c.EntrepriseID, RoleID: c.RoleID}
}

// Issued résultat d'une émission : le jeton signé, son identifiant (jti) et son expiration.
type Issued struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// Generate signe (HS256) un jeton du type demandé pour le sujet donné.
func Generate(secret string, sub Subject, tokenType, issuer string, ttl time.Duration) (Issued, error) {
	if secret == "" {
		return Issued{}, fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	exp := now.Add(ttl)
	jti := uuid.NewString()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    issuer,
			Subject:   strconv.FormatInt(sub.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:       sub.UserID,
		EntrepriseID: sub.EntrepriseID,
		RoleID:       sub.RoleID,
		Type:         tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return Issued{}, fmt.Errorf("jwt: signature: %w", err)
	}
	return Issued{Token: signed, ID: jti, ExpiresAt: exp}, nil
}

// Parse valide la signature, l'expiration et le type du jeton.
func Parse(secret, tokenString, expectedType string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims invalides")
	}
	if claims.Type != expectedType {
		return nil, ErrWrongType
	}
	if claims.UserID == 0 || claims.EntrepriseID == 0 {
		return nil, fmt.Errorf("claims incomplets")
	}
	return claims, nil
}
