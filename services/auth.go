package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"MediBook/config/jwt"
	"MediBook/models"
	"MediBook/repository"
	"MediBook/role"
	"MediBook/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	Token string       `json:"token"`
	User  jwt.Identity `json:"user"`
}

type AuthService struct {
	accounts AccountStore
	issuer   *jwt.Issuer
	cost     int
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(accounts AccountStore, issuer *jwt.Issuer, bcryptCost int) *AuthService {
	return &AuthService{accounts: accounts, issuer: issuer, cost: bcryptCost, now: time.Now}
}

/*
* Validate name, email and password are present
* Validate the role if one is given, default to user
* Reject an email that is already registered
* Hash the password and save the account
 */
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) error {
	req = req.Trimmed()
	if err := util.ValidateStruct(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Password) == "" {
		return missingFieldsError([]string{"password"})
	}
	r := role.Default(req.Role)
	if !role.Valid(r) {
		return util.ValidationError(util.INVALID_ROLE)
	}
	email := req.Email

	_, err := s.accounts.FindByEmail(ctx, email)
	if err == nil {
		return util.ConflictError(util.USER_ALREADY_EXISTS)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return storeError(err, "register lookup", util.SERVER_ERROR)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		log.Error().Err(err).Msg("bcrypt hash failed")
		return util.InternalError(err)
	}

	account := &models.Register{
		Name:      req.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      r,
		CreatedAt: s.now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		// lost a race with a concurrent registration of the same email
		if errors.Is(err, repository.ErrDuplicate) {
			return util.ConflictError(util.USER_ALREADY_EXISTS)
		}
		return storeError(err, "register create", util.SERVER_ERROR)
	}
	log.Info().Str("email", email).Str("role", r).Msg("account registered")
	return nil
}

// spendHashTime keeps unknown-email logins as slow as wrong-password ones.
// The dummy hash uses the configured cost so both paths do the same work.
func (s *AuthService) spendHashTime(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("medibook-dummy-password"), s.cost)
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}

/*
* Find the account by email
* Compare the password against the stored hash
* Issue a session token carrying id, role, email and name
 */
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*LoginResult, error) {
	req = req.Trimmed()
	if util.ValidateStruct(req) != nil {
		return nil, util.AuthError(util.INVALID_CREDENTIALS)
	}
	email, password := req.Email, req.Password

	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.spendHashTime(password)
		return nil, util.AuthError(util.INVALID_CREDENTIALS)
	}
	if err != nil {
		return nil, storeError(err, "login lookup", util.SERVER_ERROR)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, util.AuthError(util.INVALID_CREDENTIALS)
	}

	identity := jwt.Identity{
		ID:    account.ID.Hex(),
		Role:  account.Role,
		Email: account.Email,
		Name:  account.Name,
	}
	token, _, err := s.issuer.GenerateJWT(identity)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		return nil, util.InternalError(err)
	}
	return &LoginResult{Token: token, User: identity}, nil
}

// normalizeEmail is used for lookups that come from query strings.
func normalizeEmail(raw string) string {
	return strings.TrimSpace(raw)
}
