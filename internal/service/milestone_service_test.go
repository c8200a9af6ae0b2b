package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/cache"
	errs "lollyshoppe/internal/errors"
	"lollyshoppe/internal/model"
	"lollyshoppe/internal/validation"
)

func TestMilestoneService_ToggleComplete(t *testing.T) {
	projectID := uuid.New()
	milestoneID := uuid.New()
	now := time.Now()

	tests := []struct {
		name          string
		actor         *auth.Actor
		setupMock     func(*MockMilestoneRepository)
		expectedError error
		wantCompleted bool
	}{
		{
			name:  "incomplete milestone becomes complete",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository) {
				m.On("ToggleComplete", mock.Anything, milestoneID, mock.AnythingOfType("time.Time")).
					Return(&model.Milestone{ID: milestoneID, ProjectID: projectID, CompletedAt: &now}, nil)
			},
			wantCompleted: true,
		},
		{
			name:  "complete milestone becomes incomplete",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository) {
				m.On("ToggleComplete", mock.Anything, milestoneID, mock.AnythingOfType("time.Time")).
					Return(&model.Milestone{ID: milestoneID, ProjectID: projectID}, nil)
			},
			wantCompleted: false,
		},
		{
			name:  "missing milestone maps to not found",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository) {
				m.On("ToggleComplete", mock.Anything, milestoneID, mock.AnythingOfType("time.Time")).
					Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrMilestoneNotFound,
		},
		{
			name:          "client may not toggle",
			actor:         clientActor(uuid.New()),
			setupMock:     func(m *MockMilestoneRepository) {},
			expectedError: errs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMilestones := new(MockMilestoneRepository)
			tt.setupMock(mockMilestones)

			service := NewMilestoneService(mockMilestones, new(MockProjectRepository), nil)
			milestone, err := service.ToggleComplete(context.Background(), tt.actor, milestoneID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, milestone)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCompleted, milestone.Completed())
			}

			mockMilestones.AssertExpectations(t)
		})
	}
}

func TestMilestoneService_Reorder(t *testing.T) {
	projectID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	project := &model.Project{ID: projectID, ClientID: uuid.New()}

	tests := []struct {
		name          string
		actor         *auth.Actor
		setupMock     func(*MockMilestoneRepository, *MockProjectRepository)
		expectedError error
	}{
		{
			name:  "reorders the whole batch",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository, p *MockProjectRepository) {
				p.On("FindByID", mock.Anything, projectID).Return(project, nil)
				m.On("Reorder", mock.Anything, projectID, ids).Return(nil)
			},
		},
		{
			name:  "id outside the project fails the batch",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository, p *MockProjectRepository) {
				p.On("FindByID", mock.Anything, projectID).Return(project, nil)
				m.On("Reorder", mock.Anything, projectID, ids).Return(gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrMilestoneNotFound,
		},
		{
			name:  "unknown project is rejected first",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository, p *MockProjectRepository) {
				p.On("FindByID", mock.Anything, projectID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errs.ErrProjectNotFound,
		},
		{
			name:          "client may not reorder",
			actor:         clientActor(uuid.New()),
			setupMock:     func(m *MockMilestoneRepository, p *MockProjectRepository) {},
			expectedError: errs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMilestones := new(MockMilestoneRepository)
			mockProjects := new(MockProjectRepository)
			tt.setupMock(mockMilestones, mockProjects)

			service := NewMilestoneService(mockMilestones, mockProjects, nil)
			err := service.Reorder(context.Background(), tt.actor, projectID, ids)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockMilestones.AssertExpectations(t)
			mockProjects.AssertExpectations(t)
		})
	}
}

func TestMilestoneService_UpdateInvalidatesBothParents(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient := cache.New(mr.Addr(), "", 0)

	oldProjectID := uuid.New()
	newProjectID := uuid.New()
	milestoneID := uuid.New()

	assert.NoError(t, mr.Set(cache.TopicProjectDetail(oldProjectID.String()), "old-detail"))
	assert.NoError(t, mr.Set(cache.TopicProjectDetail(newProjectID.String()), "new-detail"))

	mockMilestones := new(MockMilestoneRepository)
	mockProjects := new(MockProjectRepository)
	mockMilestones.On("FindByID", mock.Anything, milestoneID).
		Return(&model.Milestone{ID: milestoneID, Title: "Beta launch", ProjectID: oldProjectID}, nil)
	mockProjects.On("FindByID", mock.Anything, newProjectID).
		Return(&model.Project{ID: newProjectID, ClientID: uuid.New()}, nil)
	mockMilestones.On("Update", mock.Anything, mock.AnythingOfType("*model.Milestone")).Return(nil)

	service := NewMilestoneService(mockMilestones, mockProjects, cacheClient)
	payload := &validation.MilestonePayload{
		Title:     "Beta launch",
		Order:     1,
		ProjectID: newProjectID.String(),
	}

	milestone, err := service.Update(context.Background(), adminActor(), milestoneID, payload)
	assert.NoError(t, err)
	assert.Equal(t, newProjectID, milestone.ProjectID)

	// Moving the milestone drops the cached detail of both projects.
	assert.False(t, mr.Exists(cache.TopicProjectDetail(oldProjectID.String())))
	assert.False(t, mr.Exists(cache.TopicProjectDetail(newProjectID.String())))

	mockMilestones.AssertExpectations(t)
	mockProjects.AssertExpectations(t)
}

func TestMilestoneService_ListByProject(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()
	project := &model.Project{ID: projectID, ClientID: ownerID}
	milestones := []model.Milestone{
		{ID: uuid.New(), ProjectID: projectID, Order: 0},
		{ID: uuid.New(), ProjectID: projectID, Order: 1},
	}

	tests := []struct {
		name          string
		actor         *auth.Actor
		setupMock     func(*MockMilestoneRepository, *MockProjectRepository)
		expectedError error
	}{
		{
			name:  "admin skips the ownership lookup",
			actor: adminActor(),
			setupMock: func(m *MockMilestoneRepository, p *MockProjectRepository) {
				m.On("ListByProjectID", mock.Anything, projectID).Return(milestones, nil)
			},
		},
		{
			name:  "owner reads through the parent project",
			actor: clientActor(ownerID),
			setupMock: func(m *MockMilestoneRepository, p *MockProjectRepository) {
				p.On("FindByID", mock.Anything, projectID).Return(project, nil)
				m.On("ListByProjectID", mock.Anything, projectID).Return(milestones, nil)
			},
		},
		{
			name:  "other client is forbidden",
			actor: clientActor(uuid.New()),
			setupMock: func(m *MockMilestoneRepository, p *MockProjectRepository) {
				p.On("FindByID", mock.Anything, projectID).Return(project, nil)
			},
			expectedError: errs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMilestones := new(MockMilestoneRepository)
			mockProjects := new(MockProjectRepository)
			tt.setupMock(mockMilestones, mockProjects)

			service := NewMilestoneService(mockMilestones, mockProjects, nil)
			got, err := service.ListByProject(context.Background(), tt.actor, projectID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, 2)
			}

			mockMilestones.AssertExpectations(t)
			mockProjects.AssertExpectations(t)
		})
	}
}
