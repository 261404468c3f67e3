package ldapsync

import (
	"context"

	"github.com/JaSamMarko/back-office/internal/account"
	"github.com/JaSamMarko/back-office/internal/employee"
)

// Store is the local record store the importer writes to. Each call is
// atomic on its own; nothing spans calls.
type Store interface {
	AccountExists(ctx context.Context, username string) (bool, error)
	// GetOrCreateAccount reports true when it inserted the account.
	GetOrCreateAccount(ctx context.Context, username string, defaults account.Defaults) (*account.Account, bool, error)
	CreateEmployee(ctx context.Context, e *employee.Employee) error
}

type repoStore struct {
	accounts  account.Repository
	employees employee.Repository
}

func NewStore(accounts account.Repository, employees employee.Repository) Store {
	return &repoStore{accounts: accounts, employees: employees}
}

func (s *repoStore) AccountExists(ctx context.Context, username string) (bool, error) {
	return s.accounts.ExistsByUsername(ctx, username)
}

func (s *repoStore) GetOrCreateAccount(ctx context.Context, username string, defaults account.Defaults) (*account.Account, bool, error) {
	return s.accounts.GetOrCreate(ctx, username, defaults)
}

func (s *repoStore) CreateEmployee(ctx context.Context, e *employee.Employee) error {
	return s.employees.Create(ctx, e)
}
