package parametrage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

func TestGetEntreprise_TenantCourant(t *testing.T) {
	env := testutil.New(t)
	svc := NewService(env.Store)

	a, err := svc.GetEntreprise(env.Ctx, env.A)
	require.NoError(t, err)
	assert.Equal(t, env.A.EntrepriseID, a.ID)
	assert.Equal(t, "ENT1", a.Code)
	assert.Equal(t, "CMR", a.Pays)

	b, err := svc.GetEntreprise(env.Ctx, env.B)
	require.NoError(t, err)
	assert.Equal(t, "Société ENT2", b.RaisonSociale)
}

func TestGetEntreprise_Inconnue(t *testing.T) {
	env := testutil.New(t)
	svc := NewService(env.Store)

	_, err := svc.GetEntreprise(env.Ctx, tenant.Actor{UserID: 1, EntrepriseID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
