package service

import (
	"context"
	"testing"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfill_MergesAndIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.clients.Create(ctx, &model.Client{Name: "Acme", Company: "Acme SARL", Status: "Actif"}))
	require.NoError(t, f.clients.Create(ctx, &model.Client{Name: "Bob", Status: "Actif"}))
	f.supplier(t, "acme ", "sales@acme.test")
	f.supplier(t, "SonoPro", "sono@test")

	svc := NewBackfillService(f.contacts, f.clients, f.suppliers)

	first, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.BackfillResult{Clients: 1, Suppliers: 1, Merged: 1, Skipped: 0}, first)

	acme, err := f.contacts.FindByName(ctx, nil, "Acme")
	require.NoError(t, err)
	assert.Equal(t, model.ContactTypeBoth, acme.ContactType)
	assert.Equal(t, model.ContactNatureEnterprise, acme.ContactNature)

	bob, err := f.contacts.FindByName(ctx, nil, "Bob")
	require.NoError(t, err)
	assert.Equal(t, model.ContactTypeClient, bob.ContactType)
	assert.Equal(t, model.ContactNaturePerson, bob.ContactNature)

	sono, err := f.contacts.FindByName(ctx, nil, "SonoPro")
	require.NoError(t, err)
	assert.Equal(t, model.ContactTypeSupplier, sono.ContactType)

	second, err := svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &dto.BackfillResult{Skipped: 3}, second)

	all, err := f.contacts.List(ctx, dto.ContactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
