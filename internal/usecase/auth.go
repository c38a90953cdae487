package usecase

import (
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/pkg/jwt"
)

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth_mock.go -package=usecasemock

var (
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type IssuedToken struct {
	Token     string
	Account   account.Account
	ExpiresAt time.Time
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (account.Account, error)
}

type AuthUseCase interface {
	TokenValidator
	IssueToken(holder account.Account) (*IssuedToken, error)
}

type authUseCaseImpl struct {
	jwtService *jwt.Service
}

func NewAuthUseCase(jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{jwtService: jwtService}
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &authUseCaseImpl{jwtService: jwtService}
}

func (a *authUseCaseImpl) IssueToken(holder account.Account) (*IssuedToken, error) {
	if holder.IsZero() {
		return nil, account.ErrInvalidAccount
	}
	token, expiresAt, err := a.jwtService.GenerateToken(holder.Address())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &IssuedToken{Token: token, Account: holder, ExpiresAt: expiresAt}, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (account.Account, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return account.Account{}, err
	}
	holder, err := account.Parse(claims.Account)
	if err != nil {
		return account.Account{}, errs.Mark(err, ErrTokenValidation)
	}
	return holder, nil
}
