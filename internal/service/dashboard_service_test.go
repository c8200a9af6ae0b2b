package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "lollyshoppe/internal/errors"
	"lollyshoppe/internal/model"
)

func TestDashboardService_AdminSummary(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProjects := new(MockProjectRepository)
	mockInvoices := new(MockInvoiceRepository)

	mockUsers.On("ListByRole", mock.Anything, model.RoleClient).Return([]model.User{
		{ID: uuid.New()}, {ID: uuid.New()},
	}, nil)
	mockProjects.On("List", mock.Anything).Return([]model.Project{
		{Status: model.ProjectStatusInProgress},
		{Status: model.ProjectStatusInProgress},
		{Status: model.ProjectStatusCompleted},
	}, nil)
	mockInvoices.On("List", mock.Anything).Return([]model.Invoice{
		{Status: model.InvoiceStatusPaid, Amount: decimal.RequireFromString("1000")},
		{Status: model.InvoiceStatusSent, Amount: decimal.RequireFromString("250.50")},
		{Status: model.InvoiceStatusOverdue, Amount: decimal.RequireFromString("99.50")},
		{Status: model.InvoiceStatusDraft, Amount: decimal.RequireFromString("400")},
	}, nil)

	service := NewDashboardService(mockUsers, mockProjects, new(MockMilestoneRepository), new(MockDeliverableRepository), mockInvoices)
	summary, err := service.AdminSummary(context.Background(), adminActor())

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TotalClients)
	assert.Equal(t, 3, summary.TotalProjects)
	assert.Equal(t, 2, summary.ActiveProjects)
	assert.Equal(t, 1, summary.StatusCounts[model.ProjectStatusCompleted])
	assert.Equal(t, "1750", summary.TotalInvoiced)
	assert.Equal(t, "1000", summary.TotalPaid)
	assert.Equal(t, "350", summary.Outstanding)
}

func TestDashboardService_AdminSummaryForbidden(t *testing.T) {
	service := NewDashboardService(new(MockUserRepository), new(MockProjectRepository), new(MockMilestoneRepository), new(MockDeliverableRepository), new(MockInvoiceRepository))

	_, err := service.AdminSummary(context.Background(), clientActor(uuid.New()))
	assert.ErrorIs(t, err, errs.ErrForbidden)

	_, err = service.AdminSummary(context.Background(), nil)
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestDashboardService_ClientSummary(t *testing.T) {
	clientID := uuid.New()
	projectID := uuid.New()
	done := time.Now()

	mockProjects := new(MockProjectRepository)
	mockMilestones := new(MockMilestoneRepository)
	mockDeliverables := new(MockDeliverableRepository)
	mockInvoices := new(MockInvoiceRepository)

	mockProjects.On("ListByClientID", mock.Anything, clientID).Return([]model.Project{
		{ID: projectID, ClientID: clientID, Status: model.ProjectStatusInProgress},
	}, nil)
	mockInvoices.On("ListByClientID", mock.Anything, clientID).Return([]model.Invoice{
		{Status: model.InvoiceStatusSent, Amount: decimal.RequireFromString("500")},
		{Status: model.InvoiceStatusPaid, Amount: decimal.RequireFromString("1500")},
	}, nil)
	mockDeliverables.On("ListByProjectID", mock.Anything, projectID).Return([]model.Deliverable{
		{ID: uuid.New()}, {ID: uuid.New()},
	}, nil)
	mockMilestones.On("ListByProjectID", mock.Anything, projectID).Return([]model.Milestone{
		{Title: "Kickoff", Order: 0, CompletedAt: &done},
		{Title: "First draft", Order: 1},
		{Title: "Handover", Order: 2},
	}, nil)

	service := NewDashboardService(new(MockUserRepository), mockProjects, mockMilestones, mockDeliverables, mockInvoices)
	summary, err := service.ClientSummary(context.Background(), clientActor(clientID))

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.TotalProjects)
	assert.Equal(t, 1, summary.ActiveProjects)
	assert.Equal(t, "500", summary.UnpaidTotal)
	assert.Equal(t, 2, summary.Deliverables)
	assert.NotNil(t, summary.NextMilestone)
	assert.Equal(t, "First draft", summary.NextMilestone.Title)
}

func TestDashboardService_ClientSummaryEmpty(t *testing.T) {
	clientID := uuid.New()

	mockProjects := new(MockProjectRepository)
	mockInvoices := new(MockInvoiceRepository)
	mockProjects.On("ListByClientID", mock.Anything, clientID).Return([]model.Project{}, nil)
	mockInvoices.On("ListByClientID", mock.Anything, clientID).Return([]model.Invoice{}, nil)

	service := NewDashboardService(new(MockUserRepository), mockProjects, new(MockMilestoneRepository), new(MockDeliverableRepository), mockInvoices)
	summary, err := service.ClientSummary(context.Background(), clientActor(clientID))

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.TotalProjects)
	assert.Equal(t, "0", summary.UnpaidTotal)
	assert.Nil(t, summary.NextMilestone)
}
