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

func TestContactCreate_Defaults(t *testing.T) {
	f := newFixture(t)
	svc := NewContactService(f.contacts)
	ctx := context.Background()

	id, err := svc.Create(ctx, f.owner, dto.CreateContactRequest{Name: "  Alice  "})
	require.NoError(t, err)

	c, err := f.contacts.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, model.ContactNaturePerson, c.ContactNature)
	assert.Equal(t, model.ContactTypeClient, c.ContactType)
	assert.Equal(t, model.ContactStatusActive, c.Status)
	assert.Nil(t, c.Capital)
}

func TestContactCreate_SupplierAlias(t *testing.T) {
	f := newFixture(t)
	svc := NewContactService(f.contacts)
	id, err := svc.Create(context.Background(), f.owner, dto.CreateContactRequest{Name: "Sono", ContactType: "supplier"})
	require.NoError(t, err)
	c, err := f.contacts.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.ContactTypeSupplier, c.ContactType)
}

func TestContactEnterpriseAndEmployees(t *testing.T) {
	f := newFixture(t)
	svc := NewContactService(f.contacts)
	ctx := context.Background()

	capital := dec("50000")
	entID, err := svc.Create(ctx, f.owner, dto.CreateContactRequest{
		Name:          "Initech",
		ContactNature: model.ContactNatureEnterprise,
		Capital:       dto.OptionalAmount{Value: &capital},
	})
	require.NoError(t, err)
	personID, err := svc.Create(ctx, f.owner, dto.CreateContactRequest{Name: "Peter", EnterpriseID: &entID, Position: "Engineer"})
	require.NoError(t, err)

	employees, err := svc.ListEmployees(ctx, entID)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Peter", employees[0].Name)
	assert.Equal(t, "Engineer", employees[0].Position)

	_, err = svc.ListEmployees(ctx, personID)
	assert.Equal(t, "Contact is not an enterprise", apierror.PublicMessage(err))

	enterprises, err := svc.ListEnterprises(ctx)
	require.NoError(t, err)
	require.Len(t, enterprises, 1)
	require.NotNil(t, enterprises[0].EnterpriseDetails)
	assert.Nil(t, enterprises[0].PersonDetails)
	assert.Equal(t, int64(1), enterprises[0].EmployeesCount)

	// A person cannot be attached to another person.
	_, err = svc.Create(ctx, f.owner, dto.CreateContactRequest{Name: "Michael", EnterpriseID: &personID})
	assert.Equal(t, "Contact is not an enterprise", apierror.PublicMessage(err))
}

func TestContactList_Filters(t *testing.T) {
	f := newFixture(t)
	svc := NewContactService(f.contacts)
	ctx := context.Background()
	for _, req := range []dto.CreateContactRequest{
		{Name: "C1"},
		{Name: "S1", ContactType: "fournisseur"},
		{Name: "E1", ContactType: "both", ContactNature: "enterprise"},
	} {
		_, err := svc.Create(ctx, f.owner, req)
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, dto.ContactFilter{Type: "all", Nature: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	suppliers, err := svc.List(ctx, dto.ContactFilter{Type: "supplier"})
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "S1", suppliers[0].Name)

	enterprises, err := svc.List(ctx, dto.ContactFilter{Nature: "enterprise"})
	require.NoError(t, err)
	require.Len(t, enterprises, 1)
	assert.Equal(t, "E1", enterprises[0].Name)
}

func TestContactUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	svc := NewContactService(f.contacts)
	ctx := context.Background()
	id, err := svc.Create(ctx, f.owner, dto.CreateContactRequest{Name: "Old"})
	require.NoError(t, err)

	name := "New"
	require.NoError(t, svc.Update(ctx, id, dto.UpdateContactRequest{Name: &name, Capital: &dto.OptionalAmount{}}))
	c, err := f.contacts.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", c.Name)

	require.NoError(t, svc.Delete(ctx, id))
	err = svc.Delete(ctx, id)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}
