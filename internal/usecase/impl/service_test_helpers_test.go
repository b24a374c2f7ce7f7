package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kevindev10/ecommerce-api/config"
	"github.com/kevindev10/ecommerce-api/internal/domain/entity"
	"github.com/kevindev10/ecommerce-api/internal/domain/repository"
	"github.com/kevindev10/ecommerce-api/internal/domain/service"
	"github.com/kevindev10/ecommerce-api/internal/infra/auth"
	"github.com/kevindev10/ecommerce-api/internal/usecase"
)

const testSigningSecret = "test-signing-secret"

// --- In-memory repositories ---

type fakeUserRepo struct {
	mu          sync.Mutex
	users       map[int64]*entity.User
	nextID      int64
	updateCount int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	r.updateCount++

	return nil
}

func (r *fakeUserRepo) delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type fakeBusinessRepo struct {
	mu         sync.Mutex
	businesses map[int64]*entity.Business
	nextID     int64
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: make(map[int64]*entity.Business), nextID: 1}
}

func (r *fakeBusinessRepo) FindByID(_ context.Context, id int64) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	business, ok := r.businesses[id]
	if !ok {
		return nil, repository.ErrBusinessNotFound
	}
	copied := *business

	return &copied, nil
}

func (r *fakeBusinessRepo) FindByOwnerID(_ context.Context, ownerID int64) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, business := range r.businesses {
		if business.OwnerID == ownerID {
			copied := *business

			return &copied, nil
		}
	}

	return nil, repository.ErrBusinessNotFound
}

func (r *fakeBusinessRepo) List(_ context.Context) ([]*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Business, 0, len(r.businesses))
	for _, business := range r.businesses {
		copied := *business
		out = append(out, &copied)
	}

	return out, nil
}

func (r *fakeBusinessRepo) Create(_ context.Context, business *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	business.ID = r.nextID
	r.nextID++
	copied := *business
	r.businesses[business.ID] = &copied

	return nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, business *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.businesses[business.ID]; !ok {
		return repository.ErrBusinessNotFound
	}
	copied := *business
	r.businesses[business.ID] = &copied

	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product

	return &copied, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		copied := *product
		out = append(out, &copied)
	}

	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.products[product.ID] = &copied

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	copied := *product
	r.products[product.ID] = &copied

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)

	return nil
}

// --- Transaction manager ---

// fakeTxManager runs the callback against a fixed repository factory. It
// counts executions so tests can assert a flow used a single transaction.
type fakeTxManager struct {
	factory    repository.RepositoryFactory
	executions int
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.executions++

	return fn(m.factory)
}

type fakeRepoFactory struct {
	users      repository.UserRepository
	businesses repository.BusinessRepository
	products   repository.ProductRepository
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository         { return f.users }
func (f *fakeRepoFactory) BusinessRepo() repository.BusinessRepository { return f.businesses }
func (f *fakeRepoFactory) ProductRepo() repository.ProductRepository   { return f.products }

// --- Mail, storage and image fakes ---

type sentMail struct {
	email string
	token string
}

type fakeMailSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailSender) SendVerificationMail(_ context.Context, user *entity.User, token string) error {
	if m.err != nil {
		return m.err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{email: user.Email, token: token})

	return nil
}

type fakeFileStore struct {
	mu      sync.Mutex
	saved   map[string][]byte
	deleted []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string][]byte)}
}

func (s *fakeFileStore) Save(_ context.Context, key string, _ string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[key] = data

	return nil
}

func (s *fakeFileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, key)
	s.deleted = append(s.deleted, key)

	return nil
}

// fakeImageProcessor passes uploads through untouched.
type fakeImageProcessor struct{}

func (p *fakeImageProcessor) Normalize(r io.Reader, _ int) (io.Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// --- Environment assembly ---

type testEnv struct {
	users      *fakeUserRepo
	businesses *fakeBusinessRepo
	products   *fakeProductRepo
	txManager  *fakeTxManager
	mail       *fakeMailSender
	store      *fakeFileStore
	hasher     service.PasswordHasher
	tokens     service.TokenService

	userUsecase     usecase.UserUsecase
	authUsecase     usecase.AuthUsecase
	businessUsecase usecase.BusinessUsecase
	productUsecase  usecase.ProductUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Signing = testSigningSecret

	return cfg
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:      newFakeUserRepo(),
		businesses: newFakeBusinessRepo(),
		products:   newFakeProductRepo(),
		mail:       &fakeMailSender{},
		store:      newFakeFileStore(),
	}
	env.txManager = &fakeTxManager{factory: &fakeRepoFactory{
		users:      env.users,
		businesses: env.businesses,
		products:   env.products,
	}}

	env.hasher = auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)
	env.tokens = tokens

	logger := slog.New(slog.DiscardHandler)

	env.authUsecase = NewAuthService(AuthServiceParams{
		UserRepo:     env.users,
		Hasher:       env.hasher,
		TokenService: env.tokens,
		Logger:       logger,
	})
	env.userUsecase = NewUserService(UserServiceParams{
		TxManager:    env.txManager,
		UserRepo:     env.users,
		BusinessRepo: env.businesses,
		Hasher:       env.hasher,
		TokenService: env.tokens,
		MailSender:   env.mail,
		Auth:         env.authUsecase,
		Logger:       logger,
	})
	env.businessUsecase = NewBusinessService(BusinessServiceParams{
		BusinessRepo:   env.businesses,
		UserRepo:       env.users,
		ImageProcessor: &fakeImageProcessor{},
		FileStore:      env.store,
		Config:         newTestConfig(),
		Logger:         logger,
	})
	env.productUsecase = NewProductService(ProductServiceParams{
		ProductRepo:    env.products,
		BusinessRepo:   env.businesses,
		UserRepo:       env.users,
		ImageProcessor: &fakeImageProcessor{},
		FileStore:      env.store,
		Config:         newTestConfig(),
		Logger:         logger,
	})

	return env
}

// registerTestUser registers a user through the real flow and returns the output.
func registerTestUser(t *testing.T, env *testEnv, username, email, password string) *usecase.RegisterOutput {
	t.Helper()

	out, err := env.userUsecase.Register(context.Background(), &usecase.RegisterUserInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	require.NotNil(t, out.User)
	require.NotNil(t, out.Business)

	return out
}
