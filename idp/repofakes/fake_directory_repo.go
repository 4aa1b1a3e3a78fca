package idprepofakes

import (
	"context"
	"strings"
	"sync"

	"github.com/parasuram-clad/hrsuite-core/idp"
	"github.com/pkg/errors"
)

var _ idp.DirectoryRepo = (*FakeDirectoryRepo)(nil)

type FakeDirectoryRepo struct {
	accounts map[string]*idp.Account // keyed by lowercased email
	lock     sync.RWMutex
}

func NewFakeDirectoryRepo() *FakeDirectoryRepo {
	return &FakeDirectoryRepo{accounts: make(map[string]*idp.Account)}
}

func (dr *FakeDirectoryRepo) GetByEmail(_ context.Context, email string) (*idp.Account, error) {
	dr.lock.RLock()
	defer dr.lock.RUnlock()
	account, ok := dr.accounts[strings.ToLower(email)]
	if !ok {
		return nil, errors.New("not found")
	}
	return account, nil
}

func (dr *FakeDirectoryRepo) Upsert(_ context.Context, account *idp.Account) error {
	dr.lock.Lock()
	defer dr.lock.Unlock()
	dr.accounts[strings.ToLower(account.Identity.Email)] = account
	return nil
}
