// seed crée une entreprise, son rôle administrateur (toutes les permissions) et un compte
// administrateur ; en option, charge le plan comptable depuis un fichier CSV.
//
// Usage : go run ./cmd/seed -code ENT1 -raison "Société Exemple" -login admin -password ... [-plan plan.csv -encoding latin1]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gesco-erp/gesco-api/internal/application/auth"
	"github.com/gesco-erp/gesco-api/internal/application/comptabilite"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/postgres"
	"github.com/gesco-erp/gesco-api/pkg/config"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

func main() {
	var (
		code     = flag.String("code", "ENT1", "code de l'entreprise")
		raison   = flag.String("raison", "Entreprise de démonstration", "raison sociale")
		pays     = flag.String("pays", "", "pays ISO alpha-3 (défaut PAYS_DEFAUT)")
		devise   = flag.String("devise", "", "devise ISO 4217 (défaut DEVISE_DEFAUT)")
		login    = flag.String("login", "admin", "login de l'administrateur")
		password = flag.String("password", "", "mot de passe de l'administrateur")
		plan     = flag.String("plan", "", "fichier CSV du plan comptable (numero;libelle[;sens])")
		encoding = flag.String("encoding", "utf-8", "encodage du fichier du plan (utf-8, latin1, cp1252)")
	)
	flag.Parse()
	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password est obligatoire")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration : %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: "text"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Journal : %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()
	store := postgres.NewStore(pool)
	txRunner := postgres.NewTxRunner(pool)

	hash, err := auth.HashPassword(*password, cfg.Security.BcryptRounds)
	if err != nil {
		log.Fatal().Err(err).Msg("hachage du mot de passe")
	}

	ent := &entity.Entreprise{Code: *code, RaisonSociale: *raison, Pays: cfg.Metier.PaysDefaut, Devise: cfg.Metier.DeviseDefaut, Actif: true}
	if *pays != "" {
		ent.Pays = *pays
	}
	if *devise != "" {
		ent.Devise = *devise
	}

	var actor tenant.Actor
	err = txRunner.Run(ctx, func(tx repository.Store) error {
		if err := tx.Entreprises().Create(ctx, ent); err != nil {
			return fmt.Errorf("entreprise: %w", err)
		}
		role := &entity.Role{EntrepriseID: ent.ID, Code: "admin", Libelle: "Administrateur"}
		if err := tx.Permissions().CreateRole(ctx, role); err != nil {
			return fmt.Errorf("rôle: %w", err)
		}
		for _, module := range tenant.Modules {
			for _, action := range tenant.Actions {
				if err := tx.Permissions().Grant(ctx, role.ID, module, action); err != nil {
					return fmt.Errorf("permission %s/%s: %w", module, action, err)
				}
			}
		}
		u := &entity.Utilisateur{EntrepriseID: ent.ID, RoleID: role.ID, Login: *login, Nom: "Administrateur", PasswordHash: hash, Actif: true}
		if err := tx.Utilisateurs().Create(ctx, u); err != nil {
			return fmt.Errorf("utilisateur: %w", err)
		}
		actor = tenant.Actor{UserID: u.ID, EntrepriseID: ent.ID, RoleID: role.ID}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("création de l'entreprise")
	}
	log.Info().Int64("entreprise_id", ent.ID).Str("login", *login).Msg("entreprise et administrateur créés")

	if *plan == "" {
		return
	}
	f, err := os.Open(*plan)
	if err != nil {
		log.Fatal().Err(err).Msg("ouverture du plan comptable")
	}
	defer f.Close()
	lignes, err := lirePlan(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("lecture du plan comptable")
	}

	comptes := comptabilite.NewService(store, txRunner)
	var crees, rejetes int
	for _, l := range lignes {
		_, err := comptes.CreateCompte(ctx, actor, dto.CompteCreate{
			EntrepriseID: ent.ID,
			Numero:       l.Numero,
			Libelle:      l.Libelle,
			SensNormal:   l.Sens,
		})
		if err != nil {
			rejetes++
			log.Warn().Err(err).Str("numero", l.Numero).Msg("compte ignoré")
			continue
		}
		crees++
	}
	log.Info().Int("crees", crees).Int("rejetes", rejetes).Msg("plan comptable chargé")
}
