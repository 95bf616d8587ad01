package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/errors"
	mockRepo "cookbook/internal/mocks/repository"
	mockSvc "cookbook/internal/mocks/service"
	"cookbook/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Username: "ana", Password: "pw123", Bio: strPtr("hi")}

	fx.hasher.EXPECT().Hash("pw123").Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)
	expectTransaction(t, fx.txManager, txUserRepo, nil)

	user, err := fx.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ana", user.Username)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Nil(t, user.ImageURL)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "hi", *user.Bio)
}

func TestUserService_Signup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.SignupInput
		wantMsg string
	}{
		{name: "missing username", input: &usecase.SignupInput{Password: "pw"}, wantMsg: "Username must be provided."},
		{name: "missing both", input: &usecase.SignupInput{}, wantMsg: "Username must be provided."},
		{name: "missing password", input: &usecase.SignupInput{Username: "ana"}, wantMsg: "Password must be provided."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.Signup(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, domainerrors.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestUserService_Signup_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUsernameTaken)
	expectTransaction(t, fx.txManager, txUserRepo, nil)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "ana", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_Signup_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Username: "ana", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Signup_HashValidationPassesThrough(t *testing.T) {
	fx := createTestUserService(t)
	tooLong := domainerrors.NewValidationError("Password", "Password must be at most 72 bytes long.")

	fx.hasher.EXPECT().Hash("pw").Return("", tooLong)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Username: "ana", Password: "pw"})
	assert.ErrorIs(t, err, tooLong)
}

func TestUserService_Signup_DatabaseError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to create user")

	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr)
	expectTransaction(t, fx.txManager, txUserRepo, nil)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "ana", Password: "pw"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeDatabaseExecute, appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	stored := &entity.User{ID: 3, Username: "ana", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(stored, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)

	user, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	assert.Same(t, stored, user)
}

func TestUserService_Login_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing username", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ana"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(&entity.User{ID: 1, Username: "ana", PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("nope", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ana", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestUserService(t)
		storeErr := errors.New("connection refused")
		fx.userRepo.EXPECT().FindByUsername(ctx, "ana").Return(nil, storeErr)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ana", Password: "pw"})
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestUserService(t)
		stored := &entity.User{ID: 5, Username: "ana"}
		fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)

		user, err := fx.service.GetUser(ctx, 5)
		require.NoError(t, err)
		assert.Same(t, stored, user)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUser(ctx, 5)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
