package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/kevindev10/ecommerce-api/internal/delivery/context"
	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
	"github.com/kevindev10/ecommerce-api/internal/domain/repository"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

const defaultRegion = "Unspecified"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailSender   service.MailSender
	auth         usecase.AuthUsecase
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Auth         usecase.AuthUsecase
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		businessRepo: params.BusinessRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailSender:   params.MailSender,
		auth:         params.Auth,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process. The user and
// their business are created in one transaction so no user ever exists
// without a business. The verification mail is sent after the transaction
// commits and its failure does not roll back the registration.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}
	newBusiness := &entity.Business{
		Name:   input.Username,
		City:   defaultRegion,
		Region: defaultRegion,
		Logo:   entity.DefaultLogo,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newBusiness.OwnerID = newUser.ID
		if err := repoFactory.BusinessRepo().Create(ctx, newBusiness); err != nil {
			return errors.Wrap(err, "failed to create business during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.sendVerificationMail(ctx, newUser)

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser, Business: newBusiness}, nil
}

// sendVerificationMail issues a verification token bound to the user's id and
// email and mails the link. Failures are logged only; the user can still be
// verified later by requesting a new mail.
func (srv *userService) sendVerificationMail(ctx context.Context, user *entity.User) {
	token, err := srv.tokenService.IssueVerificationToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Warn("Failed to issue verification token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return
	}

	if err := srv.mailSender.SendVerificationMail(ctx, user, token); err != nil {
		srv.log(ctx).Warn("Failed to send verification mail", slog.Int64("userID", user.ID), slog.Any("error", err))
	}
}

// Login orchestrates the user login process. It is the only path that issues
// a login token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", input.Username))

	user, err := srv.auth.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	accessToken, err := srv.tokenService.IssueLoginToken(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to issue login token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue login token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// VerifyEmail consumes an email verification token. The first consumption
// flips the user's verified flag; consuming the same token again is a no-op
// success so a re-clicked mail link never errors.
func (srv *userService) VerifyEmail(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify email token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnknownSubject.WrapMessage("verification token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user for verification")
	}

	if user.Verified {
		srv.log(ctx).Debug("User already verified", slog.Int64("userID", user.ID))

		return user, nil
	}

	user.Verified = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist user verification")
	}

	srv.log(ctx).Info("User verified", slog.Int64("userID", user.ID))

	return user, nil
}

// GetProfile returns the current user together with their business.
func (srv *userService) GetProfile(ctx context.Context, userID int64) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile user not found")
		}

		return nil, errors.Wrap(err, "failed to find profile user")
	}

	business, err := srv.businessRepo.FindByOwnerID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("profile business not found")
		}

		return nil, errors.Wrap(err, "failed to find profile business")
	}

	return &usecase.ProfileOutput{User: user, Business: business}, nil
}
