package handlers

import (
	"context"

	"cats-service/internal/auth"
	"cats-service/internal/lifecycle"
	"cats-service/internal/models"
	"cats-service/internal/utils"

	"github.com/stretchr/testify/mock"
)

// Моки интерфейсов запросов для тестов обработчиков

type MockContainerQueries struct {
	mock.Mock
}

func (m *MockContainerQueries) CreateContainer(ctx context.Context, req models.CreateContainerRequest, code string) (*models.Container, error) {
	args := m.Called(ctx, req, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Container), args.Error(1)
}

func (m *MockContainerQueries) GetContainerByID(ctx context.Context, id int64) (*models.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Container), args.Error(1)
}

func (m *MockContainerQueries) GetContainerByCode(ctx context.Context, code string) (*models.Container, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Container), args.Error(1)
}

func (m *MockContainerQueries) ListContainers(ctx context.Context) ([]models.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Container), args.Error(1)
}

func (m *MockContainerQueries) SearchContainers(ctx context.Context, params models.SearchContainersParams) ([]models.Container, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Container), args.Error(1)
}

func (m *MockContainerQueries) UpdateContainer(ctx context.Context, id int64, req models.UpdateContainerRequest) (*models.Container, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Container), args.Error(1)
}

func (m *MockContainerQueries) DeleteContainer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContainerTypeQueries struct {
	mock.Mock
}

func (m *MockContainerTypeQueries) CreateContainerType(ctx context.Context, req models.CreateContainerTypeRequest) (*models.ContainerType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContainerType), args.Error(1)
}

func (m *MockContainerTypeQueries) GetContainerTypeByID(ctx context.Context, id string) (*models.ContainerType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContainerType), args.Error(1)
}

func (m *MockContainerTypeQueries) ListContainerTypes(ctx context.Context) ([]models.ContainerType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContainerType), args.Error(1)
}

func (m *MockContainerTypeQueries) UpdateContainerType(ctx context.Context, id string, req models.UpdateContainerTypeRequest) (*models.ContainerType, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContainerType), args.Error(1)
}

func (m *MockContainerTypeQueries) DeleteContainerType(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFillQueries struct {
	mock.Mock
}

func (m *MockFillQueries) FillContainer(ctx context.Context, containerID int64, product *models.Product, fill *lifecycle.Fill, userID, userName string) error {
	args := m.Called(ctx, containerID, product, fill, userID, userName)
	return args.Error(0)
}

func (m *MockFillQueries) EmptyContainer(ctx context.Context, containerID int64, userID, userName string) error {
	args := m.Called(ctx, containerID, userID, userName)
	return args.Error(0)
}

func (m *MockFillQueries) UpdateCurrentFill(ctx context.Context, containerID int64, product *models.Product, fill *lifecycle.Fill) error {
	args := m.Called(ctx, containerID, product, fill)
	return args.Error(0)
}

func (m *MockFillQueries) GetContainerHistory(ctx context.Context, containerID int64) ([]models.ContainerFill, error) {
	args := m.Called(ctx, containerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContainerFill), args.Error(1)
}

func (m *MockFillQueries) SearchFills(ctx context.Context, params models.SearchContainerFillsParams) ([]models.ContainerFill, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContainerFill), args.Error(1)
}

type MockProductQueries struct {
	mock.Mock
}

func (m *MockProductQueries) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductQueries) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductQueries) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductQueries) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductQueries) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductTypeQueries struct {
	mock.Mock
}

func (m *MockProductTypeQueries) CreateProductType(ctx context.Context, req models.CreateProductTypeRequest) (*models.ProductType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductType), args.Error(1)
}

func (m *MockProductTypeQueries) GetProductTypeByID(ctx context.Context, id string) (*models.ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductType), args.Error(1)
}

func (m *MockProductTypeQueries) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductType), args.Error(1)
}

func (m *MockProductTypeQueries) UpdateProductType(ctx context.Context, id string, req models.UpdateProductTypeRequest) (*models.ProductType, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductType), args.Error(1)
}

func (m *MockProductTypeQueries) DeleteProductType(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserQueries) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserQueries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserQueries) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserQueries) UpdateUser(ctx context.Context, id string, req models.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserQueries) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserQueries) SetUserActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

type MockInvitationQueries struct {
	mock.Mock
}

func (m *MockInvitationQueries) CreateInvitation(ctx context.Context, req models.CreateInvitationRequest, token string) (*models.Invitation, error) {
	args := m.Called(ctx, req, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

func (m *MockInvitationQueries) GetInvitationByToken(ctx context.Context, token string) (*models.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

func (m *MockInvitationQueries) GetPendingInvitationByEmail(ctx context.Context, email string) (*models.Invitation, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invitation), args.Error(1)
}

func (m *MockInvitationQueries) MarkInvitationUsed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*auth.GoogleClaims, error) {
	args := m.Called(ctx, rawIDToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.GoogleClaims), args.Error(1)
}

type MockJWTManager struct {
	mock.Mock
}

func (m *MockJWTManager) GenerateToken(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockJWTManager) ValidateToken(tokenString string) (*utils.CustomClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.CustomClaims), args.Error(1)
}
