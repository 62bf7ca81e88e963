// Package memory implémente les ports de persistance en mémoire. Une transaction travaille
// sur une copie des tables, publiée au commit et abandonnée au rollback ; les transactions
// sont sérialisées, ce qui tient lieu de verrous de ligne.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

type table[T any] struct {
	next int64
	rows map[int64]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[int64]T{}}
}

func (t *table[T]) clone() *table[T] {
	return &table[T]{next: t.next, rows: maps.Clone(t.rows)}
}

func (t *table[T]) nextID() int64 {
	t.next++
	return t.next
}

func (t *table[T]) get(id int64) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

// sorted lignes triées par id.
func (t *table[T]) sorted() []T {
	ids := slices.Sorted(maps.Keys(t.rows))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) where(keep func(T) bool) []T {
	var out []T
	for _, v := range t.sorted() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// unique ErrDuplicate si une autre ligne (id != self) vérifie same.
func unique[T any](t *table[T], name string, self int64, same func(id int64, v T) bool) error {
	for id, v := range t.rows {
		if id != self && same(id, v) {
			return fmt.Errorf("%s: %w", name, domain.ErrDuplicate)
		}
	}
	return nil
}

func paginate[T any](items []T, p repository.Page) []T {
	if p.Skip >= len(items) {
		return nil
	}
	end := len(items)
	if p.Limit > 0 && p.Skip+p.Limit < end {
		end = p.Skip + p.Limit
	}
	return items[p.Skip:end]
}

func ptrs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		v := items[i]
		out[i] = &v
	}
	return out
}

type rolePermission struct {
	RoleID       int64
	PermissionID int64
}

type tables struct {
	entreprises       *table[entity.Entreprise]
	pointsDeVente     *table[entity.PointDeVente]
	devises           *table[entity.Devise]
	etats             *table[entity.EtatDocument]
	unites            *table[string]
	tauxTva           *table[decimal.Decimal]
	utilisateurs      *table[entity.Utilisateur]
	roles             *table[entity.Role]
	permissions       *table[entity.Permission]
	rolePermissions   *table[rolePermission]
	depots            *table[entity.Depot]
	tiers             *table[entity.Tiers]
	produits          *table[entity.Produit]
	variantes         *table[entity.Variante]
	familles          *table[entity.FamilleProduit]
	stocks            *table[entity.Stock]
	mouvements        *table[entity.MouvementStock]
	comptes           *table[entity.CompteComptable]
	journaux          *table[entity.JournalComptable]
	periodes          *table[entity.PeriodeComptable]
	ecritures         *table[entity.EcritureComptable]
	lignesEcriture    *table[entity.LigneEcriture]
	documents         *table[entity.Document]
	receptions        *table[entity.Reception]
	lignesReception   *table[entity.LigneReception]
	comptesTresorerie *table[entity.CompteTresorerie]
	modesPaiement     *table[entity.ModePaiement]
	reglements        *table[entity.Reglement]
	employes          *table[entity.Employe]
	periodesPaie      *table[entity.PeriodePaie]
	bulletins         *table[entity.BulletinPaie]
	lignesBulletin    *table[entity.LigneBulletin]
}

func newTables() *tables {
	return &tables{
		entreprises:       newTable[entity.Entreprise](),
		pointsDeVente:     newTable[entity.PointDeVente](),
		devises:           newTable[entity.Devise](),
		etats:             newTable[entity.EtatDocument](),
		unites:            newTable[string](),
		tauxTva:           newTable[decimal.Decimal](),
		utilisateurs:      newTable[entity.Utilisateur](),
		roles:             newTable[entity.Role](),
		permissions:       newTable[entity.Permission](),
		rolePermissions:   newTable[rolePermission](),
		depots:            newTable[entity.Depot](),
		tiers:             newTable[entity.Tiers](),
		produits:          newTable[entity.Produit](),
		variantes:         newTable[entity.Variante](),
		familles:          newTable[entity.FamilleProduit](),
		stocks:            newTable[entity.Stock](),
		mouvements:        newTable[entity.MouvementStock](),
		comptes:           newTable[entity.CompteComptable](),
		journaux:          newTable[entity.JournalComptable](),
		periodes:          newTable[entity.PeriodeComptable](),
		ecritures:         newTable[entity.EcritureComptable](),
		lignesEcriture:    newTable[entity.LigneEcriture](),
		documents:         newTable[entity.Document](),
		receptions:        newTable[entity.Reception](),
		lignesReception:   newTable[entity.LigneReception](),
		comptesTresorerie: newTable[entity.CompteTresorerie](),
		modesPaiement:     newTable[entity.ModePaiement](),
		reglements:        newTable[entity.Reglement](),
		employes:          newTable[entity.Employe](),
		periodesPaie:      newTable[entity.PeriodePaie](),
		bulletins:         newTable[entity.BulletinPaie](),
		lignesBulletin:    newTable[entity.LigneBulletin](),
	}
}

func (t *tables) clone() *tables {
	return &tables{
		entreprises:       t.entreprises.clone(),
		pointsDeVente:     t.pointsDeVente.clone(),
		devises:           t.devises.clone(),
		etats:             t.etats.clone(),
		unites:            t.unites.clone(),
		tauxTva:           t.tauxTva.clone(),
		utilisateurs:      t.utilisateurs.clone(),
		roles:             t.roles.clone(),
		permissions:       t.permissions.clone(),
		rolePermissions:   t.rolePermissions.clone(),
		depots:            t.depots.clone(),
		tiers:             t.tiers.clone(),
		produits:          t.produits.clone(),
		variantes:         t.variantes.clone(),
		familles:          t.familles.clone(),
		stocks:            t.stocks.clone(),
		mouvements:        t.mouvements.clone(),
		comptes:           t.comptes.clone(),
		journaux:          t.journaux.clone(),
		periodes:          t.periodes.clone(),
		ecritures:         t.ecritures.clone(),
		lignesEcriture:    t.lignesEcriture.clone(),
		documents:         t.documents.clone(),
		receptions:        t.receptions.clone(),
		lignesReception:   t.lignesReception.clone(),
		comptesTresorerie: t.comptesTresorerie.clone(),
		modesPaiement:     t.modesPaiement.clone(),
		reglements:        t.reglements.clone(),
		employes:          t.employes.clone(),
		periodesPaie:      t.periodesPaie.clone(),
		bulletins:         t.bulletins.clone(),
		lignesBulletin:    t.lignesBulletin.clone(),
	}
}

// DB base en mémoire. Store() lit l'état validé ; Run exécute une transaction.
type DB struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *tables
	now  func() time.Time
}

// New base vide.
func New() *DB {
	return &DB{data: newTables(), now: func() time.Time { return time.Now().UTC() }}
}

// Store accès hors transaction ; chaque écriture y est validée immédiatement.
func (db *DB) Store() repository.Store {
	return store{db: db}
}

// Run exécute fn sur une copie des tables, publiée si fn renvoie nil.
func (db *DB) Run(ctx context.Context, fn func(tx repository.Store) error) error {
	db.txMu.Lock()
	defer db.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	db.mu.RLock()
	work := db.data.clone()
	db.mu.RUnlock()

	if err := fn(store{db: db, t: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	db.mu.Lock()
	db.data = work
	db.mu.Unlock()
	return nil
}

type store struct {
	db *DB
	t  *tables
}

func (s store) view(fn func(t *tables) error) error {
	if s.t != nil {
		return fn(s.t)
	}
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return fn(s.db.data)
}

func (s store) update(fn func(t *tables) error) error {
	if s.t != nil {
		return fn(s.t)
	}
	s.db.txMu.Lock()
	defer s.db.txMu.Unlock()
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return fn(s.db.data)
}

func (s store) now() time.Time { return s.db.now() }

func (s store) Entreprises() repository.EntrepriseRepository             { return entreprises{s} }
func (s store) Utilisateurs() repository.UtilisateurRepository           { return utilisateurs{s} }
func (s store) Permissions() repository.PermissionRepository             { return permissions{s} }
func (s store) References() repository.ReferenceRepository               { return references{s} }
func (s store) Depots() repository.DepotRepository                       { return depots{s} }
func (s store) Tiers() repository.TiersRepository                        { return tiersRepo{s} }
func (s store) Produits() repository.ProduitRepository                   { return produits{s} }
func (s store) Variantes() repository.VarianteRepository                 { return variantes{s} }
func (s store) Familles() repository.FamilleRepository                   { return familles{s} }
func (s store) Stocks() repository.StockRepository                       { return stocks{s} }
func (s store) Mouvements() repository.MouvementRepository               { return mouvements{s} }
func (s store) Comptes() repository.CompteRepository                     { return comptes{s} }
func (s store) Journaux() repository.JournalRepository                   { return journaux{s} }
func (s store) Periodes() repository.PeriodeRepository                   { return periodes{s} }
func (s store) Ecritures() repository.EcritureRepository                 { return ecritures{s} }
func (s store) Documents() repository.DocumentRepository                 { return documents{s} }
func (s store) Etats() repository.EtatDocumentRepository                 { return etats{s} }
func (s store) Receptions() repository.ReceptionRepository               { return receptions{s} }
func (s store) ComptesTresorerie() repository.CompteTresorerieRepository { return comptesTresorerie{s} }
func (s store) ModesPaiement() repository.ModePaiementRepository         { return modesPaiement{s} }
func (s store) Reglements() repository.ReglementRepository               { return reglements{s} }
func (s store) Employes() repository.EmployeRepository                   { return employes{s} }
func (s store) PeriodesPaie() repository.PeriodePaieRepository           { return periodesPaie{s} }
func (s store) Bulletins() repository.BulletinRepository                 { return bulletins{s} }
func (s store) Rapports() repository.RapportRepository                   { return rapports{s} }

func getByID[T any](s store, pick func(*tables) *table[T], id int64) (*T, error) {
	var out *T
	err := s.view(func(t *tables) error {
		if v, ok := pick(t).get(id); ok {
			out = &v
		}
		return nil
	})
	return out, err
}

// list filtre, trie (cmp nil = ordre des ids) puis pagine.
func list[T any](s store, pick func(*tables) *table[T], keep func(T) bool, cmp func(a, b T) int, p repository.Page) ([]*T, error) {
	var items []T
	err := s.view(func(t *tables) error {
		items = pick(t).where(keep)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if cmp != nil {
		slices.SortStableFunc(items, cmp)
	}
	return ptrs(paginate(items, p)), nil
}

// put remplace une ligne existante.
func put[T any](s store, pick func(*tables) *table[T], id int64, v T) error {
	return s.update(func(t *tables) error {
		tb := pick(t)
		if _, ok := tb.rows[id]; !ok {
			return fmt.Errorf("ligne %d introuvable", id)
		}
		tb.rows[id] = v
		return nil
	})
}
