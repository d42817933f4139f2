package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coin-ledger/config"
	"coin-ledger/internal/core/domain"
	"coin-ledger/internal/core/ports"
	"coin-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	accounts   ports.AccountRepository
	ledger     ports.LedgerService
	transactor ports.DBTransactor
	hashSvc    ports.HashService
	tokenSvc   ports.TokenService
	policy     config.LedgerConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	accounts ports.AccountRepository,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	policy config.LedgerConfig,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		accounts:   accounts,
		ledger:     ledger,
		transactor: transactor,
		hashSvc:    hashSvc,
		tokenSvc:   tokenSvc,
		policy:     policy,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the account and posts the signup grant in the same
// transaction, so an account never exists without its starting coins.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*ports.RegisterResponse, error) {
	id := domain.NormalizeAccountID(req.Username)
	if id == "" {
		return nil, apperror.Validation("username is required")
	}
	role := req.Role
	if role == "" {
		role = domain.RoleTrader
	}

	existing, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := s.now()
	account := &domain.Account{
		ID:           id,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		DisplayName:  req.DisplayName,
		BusinessName: req.BusinessName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if account.DisplayName == "" {
		account.DisplayName = strings.TrimSpace(req.Username)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.accounts.Create(ctx, dbTx, account); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, apperror.ErrUsernameExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	var grant *ports.AppliedEntry
	if s.policy.SignupGrant > 0 {
		grant, err = s.ledger.Apply(ctx, dbTx, ports.ApplyRequest{
			AccountID: id,
			Amount:    s.policy.SignupGrant,
			Kind:      domain.EntryKindCredit,
			Reference: domain.BuildReference(domain.RefPrefixSignup, now),
		})
		if err != nil {
			return nil, err
		}
		account.CoinBalance = grant.Balance
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", id).
		Str("role", string(role)).
		Int64("signup_grant", account.CoinBalance).
		Msg("account registered")

	resp := &ports.RegisterResponse{Account: account}
	if grant != nil {
		s.ledger.Announce(ctx, grant)
		resp.SignupGrant = &grant.Entry
	}
	return resp, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	account, err := s.accounts.GetByID(ctx, domain.NormalizeAccountID(username))
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find account: %w", err))
	}
	if account == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, account.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if account.Suspended {
		return "", time.Time{}, apperror.ErrAccountSuspended()
	}

	token, expiry, err := s.tokenSvc.Generate(account.ID, account.Role)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}
