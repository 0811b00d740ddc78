package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
	ForgotPassword(email string) error
	ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	if request.Password != request.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", utils.ErrValidation)
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := a.accountRepo.TouchLastLogin(ctx, account.ID.String(), time.Now().Unix()); err != nil {
		log.Printf("Failed to record last login for %s: %v", account.ID, err)
	}

	return token, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	return buildProfileResponse(account), nil
}

// UpdateProfile is a merge-style patch: nil fields keep their stored values,
// so a partial update never blanks prior profile edits.
func (a *AccountService) UpdateProfile(ctx context.Context, userId string, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrNotFoundOrUnauthorized
	}

	if request.Name != nil {
		account.Name = *request.Name
	}
	if request.PhotoURL != nil {
		account.PhotoURL = *request.PhotoURL
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildProfileResponse(account), nil
}

// ForgotPassword never reveals whether the email exists.
func (a *AccountService) ForgotPassword(email string) error {
	account, err := a.accountRepo.FindByEmail(context.Background(), email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Failed to send reset mail to %s: %v", account.Email, err)
		return utils.ErrRemoteService
	}

	return nil
}

func (a *AccountService) ResetPasswordWithToken(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrResetTokenInvalid
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrResetTokenInvalid
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account.PasswordHash = hashedPassword
	if err := a.accountRepo.Update(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func buildProfileResponse(account *db_models.Account) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:          account.ID.String(),
		Name:        account.Name,
		Email:       account.Email,
		PhotoURL:    account.PhotoURL,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(account.CreatedAt)),
		LastLoginAt: utils.FormatRFC3339(utils.FromUnixSeconds(account.LastLoginAt)),
	}
}
