package commands

import (
	"context"

	"sweethomes-api/internal/domain/guest"
	"sweethomes-api/internal/infra"
	"sweethomes-api/internal/pkg/errs"
	"sweethomes-api/internal/pkg/jwt"
	"sweethomes-api/internal/pkg/password"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

// LoginResult is the issued session plus the identity baked into it.
type LoginResult struct {
	Token    string
	Identity guest.Identity
}

type AuthCommands interface {
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	accounts   GuestAccountRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(accounts GuestAccountRepository, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{accounts: accounts, jwtService: jwtService}
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	account, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrLedgerFailure)
	}

	if err := password.ComparePassword(account.PasswordHash, pw); err != nil {
		return nil, ErrInvalidCredentials
	}

	ident := guest.Identity{Name: account.Name, Email: account.Email, Phone: account.Phone}
	token, err := u.jwtService.GenerateToken(account.ID, ident)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue session token")
	}

	return &LoginResult{Token: token, Identity: ident}, nil
}
