package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/parasuram-clad/hrsuite-core/tenants/postgres"
	"github.com/stretchr/testify/require"
)

func TestListForIdentity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "config"}).
		AddRow("acme", "Acme Corp", []byte(`{"theme":"dark"}`)).
		AddRow("globex", "Globex", nil)
	mock.ExpectQuery("select c.id, c.name, c.config").
		WithArgs("user-1").
		WillReturnRows(rows)

	store := postgres.NewStore(db)
	list, err := store.ListForIdentity(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "acme", list[0].ID)
	require.Equal(t, "dark", list[0].Config["theme"])
	require.Nil(t, list[1].Config)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInsertsCompanyAndMembership(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("insert into companies").
		WithArgs(sqlmock.AnyArg(), "Initech", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("insert into company_members").
		WithArgs(sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store := postgres.NewStore(db)
	created, err := store.Create(context.Background(), &tenants.Tenant{Name: "Initech"}, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Initech", created.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("select id, name, config from companies").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "config"}))

	store := postgres.NewStore(db)
	_, err = store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, tenants.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
