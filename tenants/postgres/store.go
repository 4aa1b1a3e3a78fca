package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/parasuram-clad/hrsuite-core/tenants"
	"github.com/pkg/errors"
)

var _ tenants.Repo = (*Store)(nil)

// Store implements tenants.Repo on PostgreSQL via database/sql.
// Open the *sql.DB with the pgx stdlib driver.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListForIdentity(ctx context.Context, identityID string) ([]*tenants.Tenant, error) {
	rows, err := s.db.QueryContext(ctx,
		`select c.id, c.name, c.config
		   from companies c
		   join company_members m on m.company_id = c.id
		  where m.identity_id = $1
		  order by c.created_at asc`, identityID)
	if err != nil {
		return nil, errors.Wrap(err, "[ListForIdentity] query")
	}
	defer rows.Close()

	var list []*tenants.Tenant
	for rows.Next() {
		t, err := scanTenant(rows.Scan)
		if err != nil {
			return nil, errors.Wrap(err, "[ListForIdentity] scan")
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (s *Store) Create(ctx context.Context, tenant *tenants.Tenant, identityID string) (*tenants.Tenant, error) {
	stored := &tenants.Tenant{ID: uuid.New().String(), Name: tenant.Name, Config: tenant.Config}
	config, err := json.Marshal(stored.Config)
	if err != nil {
		return nil, errors.Wrap(err, "[Create] marshal config")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[Create] begin")
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx,
		`insert into companies(id, name, config) values($1, $2, $3)`,
		stored.ID, stored.Name, config); err != nil {
		return nil, errors.Wrap(err, "[Create] insert company")
	}
	if _, err := tx.ExecContext(ctx,
		`insert into company_members(company_id, identity_id) values($1, $2)`,
		stored.ID, identityID); err != nil {
		return nil, errors.Wrap(err, "[Create] insert membership")
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "[Create] commit")
	}
	return stored, nil
}

func (s *Store) Get(ctx context.Context, tenantID string) (*tenants.Tenant, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, name, config from companies where id = $1`, tenantID)
	t, err := scanTenant(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tenants.ErrNotFound
		}
		return nil, errors.Wrap(err, "[Get] scan")
	}
	return t, nil
}

func scanTenant(scan func(dest ...any) error) (*tenants.Tenant, error) {
	var (
		t      tenants.Tenant
		config []byte
	)
	if err := scan(&t.ID, &t.Name, &config); err != nil {
		return nil, err
	}
	if len(config) > 0 {
		_ = json.Unmarshal(config, &t.Config)
	}
	return &t, nil
}
