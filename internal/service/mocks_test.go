package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindBySubjectID(ctx context.Context, subjectID string) (*model.User, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Project, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMilestoneRepository is a mock implementation of MilestoneRepository.
type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) Update(ctx context.Context, milestone *model.Milestone) error {
	args := m.Called(ctx, milestone)
	return args.Error(0)
}

func (m *MockMilestoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Milestone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Milestone, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMilestoneRepository) ToggleComplete(ctx context.Context, id uuid.UUID, now time.Time) (*model.Milestone, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Reorder(ctx context.Context, projectID uuid.UUID, ids []uuid.UUID) error {
	args := m.Called(ctx, projectID, ids)
	return args.Error(0)
}

// MockDeliverableRepository is a mock implementation of DeliverableRepository.
type MockDeliverableRepository struct {
	mock.Mock
}

func (m *MockDeliverableRepository) Create(ctx context.Context, deliverable *model.Deliverable) error {
	args := m.Called(ctx, deliverable)
	return args.Error(0)
}

func (m *MockDeliverableRepository) Update(ctx context.Context, deliverable *model.Deliverable) error {
	args := m.Called(ctx, deliverable)
	return args.Error(0)
}

func (m *MockDeliverableRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Deliverable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Deliverable), args.Error(1)
}

func (m *MockDeliverableRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]model.Deliverable, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Deliverable), args.Error(1)
}

func (m *MockDeliverableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, invoice *model.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]model.Invoice, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (*model.Invoice, error) {
	args := m.Called(ctx, id, paidAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func adminActor() *auth.Actor {
	return &auth.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
}

func clientActor(id uuid.UUID) *auth.Actor {
	return &auth.Actor{UserID: id, Role: model.RoleClient}
}
