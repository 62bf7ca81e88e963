package dto

// LoginRequest identifiant (login ou e-mail, casse ignorée) et mot de passe dans une entreprise.
type LoginRequest struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	Login        string `json:"login" validate:"required,notblank,max=255"`
	Password     string `json:"password" validate:"required,max=128"`
}

// RefreshRequest jeton de rafraîchissement à échanger.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse paire de jetons émise au login et au rafraîchissement.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// MeResponse contexte résolu de l'appelant.
type MeResponse struct {
	UserID        int64   `json:"user_id"`
	EntrepriseID  int64   `json:"entreprise_id"`
	RoleID        int64   `json:"role_id"`
	Login         string  `json:"login"`
	Nom           string  `json:"nom"`
	Prenom        *string `json:"prenom"`
	Email         *string `json:"email"`
	RaisonSociale string  `json:"raison_sociale"`
}
