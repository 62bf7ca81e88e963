// Package auth authentifie les utilisateurs et résout le contexte (utilisateur, entreprise,
// rôle) de chaque requête à partir d'un jeton porteur.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
	"github.com/gesco-erp/gesco-api/pkg/jwt"
)

const (
	msgIdentifiants  = "Identifiants invalides."
	msgJetonInvalide = "Jeton invalide ou expiré."
	msgCompteInactif = "Compte utilisateur inactif ou introuvable."
)

// TokenType valeur de token_type dans les réponses.
const TokenType = "bearer"

// RefreshRegistry registre des jetons de rafraîchissement consommés.
type RefreshRegistry interface {
	// Consume marque jti comme utilisé jusqu'à until ; false si jti l'était déjà.
	Consume(ctx context.Context, jti string, until time.Time) (bool, error)
}

// Config paramètres d'émission des jetons.
type Config struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BcryptCost int
}

// Service login, rotation des jetons et résolution du contexte.
type Service struct {
	store    repository.Store
	registry RefreshRegistry
	cfg      Config
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewService construit le service.
func NewService(store repository.Store, registry RefreshRegistry, cfg Config) *Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{store: store, registry: registry, cfg: cfg, now: time.Now}
}

// HashPassword hache un mot de passe au coût configuré.
func HashPassword(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// normaliser retire les espaces ; la comparaison sans casse revient au dépôt
// (lower() côté PostgreSQL, EqualFold en mémoire).
func normaliser(login string) string {
	return strings.TrimSpace(login)
}

// dummy hash comparé quand l'utilisateur n'existe pas : même coût qu'un vrai contrôle.
func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gesco-dummy-password"), s.cfg.BcryptCost)
	})
	return s.dummyHash
}

// Login vérifie les identifiants et émet une paire de jetons. Utilisateur inconnu, mot de
// passe faux ou compte inactif renvoient la même erreur.
func (s *Service) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	u, err := s.store.Utilisateurs().FindForLogin(ctx, in.EntrepriseID, normaliser(in.Login))
	if err != nil {
		return nil, err
	}
	if u == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(in.Password))
		return nil, domain.Unauthorized(msgIdentifiants)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthorized(msgIdentifiants)
	}
	if !u.Actif {
		return nil, domain.Unauthorized(msgIdentifiants)
	}
	ent, err := s.store.Entreprises().GetByID(ctx, u.EntrepriseID)
	if err != nil {
		return nil, err
	}
	if ent == nil || !ent.Actif {
		return nil, domain.Unauthorized(msgIdentifiants)
	}
	if err := s.store.Utilisateurs().TouchLastLogin(ctx, u.ID, s.now().UTC()); err != nil {
		return nil, err
	}
	return s.issue(jwt.Subject{UserID: u.ID, EntrepriseID: u.EntrepriseID, RoleID: u.RoleID})
}

// Refresh échange un jeton de rafraîchissement contre une nouvelle paire. Chaque jeton ne
// sert qu'une fois : le rejouer renvoie Unauthorized.
func (s *Service) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	claims, err := jwt.Parse(s.cfg.Secret, in.RefreshToken, jwt.TypeRefresh)
	if err != nil {
		return nil, domain.Unauthorized(msgJetonInvalide)
	}
	first, err := s.registry.Consume(ctx, claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		return nil, err
	}
	if !first {
		return nil, domain.Unauthorized(msgJetonInvalide)
	}
	a, err := s.actif(ctx, claims.Identity())
	if err != nil {
		return nil, err
	}
	return s.issue(jwt.Subject{UserID: a.UserID, EntrepriseID: a.EntrepriseID, RoleID: a.RoleID})
}

// ResolveContext valide un jeton d'accès et renvoie l'acteur de la requête. Le rôle est relu
// en base : un changement de rôle s'applique sans attendre l'expiration du jeton.
func (s *Service) ResolveContext(ctx context.Context, bearer string) (tenant.Actor, error) {
	if bearer == "" {
		return tenant.Actor{}, domain.Unauthorized(msgJetonInvalide)
	}
	claims, err := jwt.Parse(s.cfg.Secret, bearer, jwt.TypeAccess)
	if err != nil {
		return tenant.Actor{}, domain.Unauthorized(msgJetonInvalide)
	}
	return s.actif(ctx, claims.Identity())
}

func (s *Service) actif(ctx context.Context, sub jwt.Subject) (tenant.Actor, error) {
	u, err := s.store.Utilisateurs().GetByID(ctx, sub.UserID)
	if err != nil {
		return tenant.Actor{}, err
	}
	if u == nil || !u.Actif || u.EntrepriseID != sub.EntrepriseID {
		return tenant.Actor{}, domain.Unauthorized(msgCompteInactif)
	}
	return tenant.Actor{UserID: u.ID, EntrepriseID: u.EntrepriseID, RoleID: u.RoleID}, nil
}

// Me profil de l'appelant et raison sociale de son entreprise.
func (s *Service) Me(ctx context.Context, a tenant.Actor) (*dto.MeResponse, error) {
	u, err := s.store.Utilisateurs().GetByID(ctx, a.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.Unauthorized(msgCompteInactif)
	}
	ent, err := s.store.Entreprises().GetByID(ctx, a.EntrepriseID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, errors.New("auth: entreprise de l'utilisateur introuvable")
	}
	return &dto.MeResponse{
		UserID:        u.ID,
		EntrepriseID:  u.EntrepriseID,
		RoleID:        u.RoleID,
		Login:         u.Login,
		Nom:           u.Nom,
		Prenom:        u.Prenom,
		Email:         u.Email,
		RaisonSociale: ent.RaisonSociale,
	}, nil
}

func (s *Service) issue(sub jwt.Subject) (*dto.TokenResponse, error) {
	access, err := jwt.Generate(s.cfg.Secret, sub, jwt.TypeAccess, s.cfg.Issuer, s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.Generate(s.cfg.Secret, sub, jwt.TypeRefresh, s.cfg.Issuer, s.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		TokenType:    TokenType,
		ExpiresIn:    int64(s.cfg.AccessTTL / time.Second),
	}, nil
}
