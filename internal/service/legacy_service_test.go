package service

import (
	"context"
	"testing"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierService_CRUD(t *testing.T) {
	f := newFixture(t)
	svc := NewSupplierService(f.suppliers)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.owner, dto.SupplierRequest{Name: "Sono Pro", Email: "sono@test"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.ContactStatusActive, list[0].Status)

	require.NoError(t, svc.Update(ctx, id, dto.SupplierRequest{Name: "Sono Pro 2", Speciality: "Audio"}))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sono Pro 2", list[0].Name)
	assert.Equal(t, model.ContactStatusActive, list[0].Status, "empty status keeps the previous one")

	require.NoError(t, svc.Delete(ctx, id))
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(svc.Delete(ctx, id)))
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(svc.Update(ctx, id, dto.SupplierRequest{Name: "x"})))
}

func TestClientService_CRUD(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.clients)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.owner, dto.ClientRequest{Name: "Acme", Company: "Acme SARL", Status: "Inactif"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, id, dto.ClientRequest{Name: "Acme", Email: "hello@acme.test"}))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hello@acme.test", list[0].Email)
	assert.Equal(t, "Inactif", list[0].Status)

	require.NoError(t, svc.Delete(ctx, id))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
