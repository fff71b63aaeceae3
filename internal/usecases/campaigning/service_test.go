package campaigning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"go.uber.org/mock/gomock"
)

func TestService_CreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	tests := []struct {
		name        string
		actorID     string
		campaign    *domain.Campaign
		setup       func()
		expectedErr error
		validate    func(t *testing.T, result *domain.Campaign)
	}{
		{
			name:    "Campanha sem status recebe draft e o dono é o criador",
			actorID: "user-1",
			campaign: &domain.Campaign{
				Name:     "Lançamento Primavera",
				Channels: []domain.Channel{domain.ChannelEmail, domain.ChannelSocialMedia},
			},
			setup: func() {
				mockRepo.EXPECT().
					CreateCampaign(gomock.Any()).
					DoAndReturn(func(c *domain.Campaign) (*domain.Campaign, error) {
						c.ID = "camp-1"
						return c, nil
					})
			},
			validate: func(t *testing.T, result *domain.Campaign) {
				assert.Equal(t, domain.CampaignStatusDraft, result.Status)
				assert.Equal(t, "user-1", result.UserID)
			},
		},
		{
			name:    "Orçamento e gasto negativos são zerados",
			actorID: "user-1",
			campaign: &domain.Campaign{
				Name:   "Remarketing",
				Status: domain.CampaignStatusActive,
				Budget: -100,
				Spent:  -50,
			},
			setup: func() {
				mockRepo.EXPECT().
					CreateCampaign(gomock.Any()).
					DoAndReturn(func(c *domain.Campaign) (*domain.Campaign, error) {
						return c, nil
					})
			},
			validate: func(t *testing.T, result *domain.Campaign) {
				assert.Equal(t, 0.0, result.Budget)
				assert.Equal(t, 0.0, result.Spent)
			},
		},
		{
			name:    "Gasto acima do orçamento é permitido",
			actorID: "user-1",
			campaign: &domain.Campaign{
				Name:   "Black Friday",
				Status: domain.CampaignStatusActive,
				Budget: 1000,
				Spent:  2500,
			},
			setup: func() {
				mockRepo.EXPECT().
					CreateCampaign(gomock.Any()).
					DoAndReturn(func(c *domain.Campaign) (*domain.Campaign, error) {
						return c, nil
					})
			},
			validate: func(t *testing.T, result *domain.Campaign) {
				assert.Equal(t, 2500.0, result.Spent)
			},
		},
		{
			name:        "Campanha sem nome é rejeitada",
			actorID:     "user-1",
			campaign:    &domain.Campaign{},
			setup:       func() {},
			expectedErr: ErrMissingName,
		},
		{
			name:    "Status desconhecido é rejeitado",
			actorID: "user-1",
			campaign: &domain.Campaign{
				Name:   "Campanha",
				Status: domain.CampaignStatus("arquivada"),
			},
			setup:       func() {},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:    "Canal desconhecido é rejeitado",
			actorID: "user-1",
			campaign: &domain.Campaign{
				Name:     "Campanha",
				Status:   domain.CampaignStatusDraft,
				Channels: []domain.Channel{domain.Channel("telegrama")},
			},
			setup:       func() {},
			expectedErr: ErrInvalidChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.CreateCampaign(tt.actorID, tt.campaign)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestService_UpdateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	existing := &domain.Campaign{
		ID:     "camp-1",
		UserID: "user-1",
		Name:   "Original",
		Status: domain.CampaignStatusActive,
	}

	t.Run("Campanha inexistente retorna erro", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaignByID("camp-x").Return(nil, nil)

		err := service.UpdateCampaign(&domain.Campaign{ID: "camp-x", Name: "Qualquer"})
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("Troca de dono é rejeitada", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaignByID("camp-1").Return(existing, nil)

		err := service.UpdateCampaign(&domain.Campaign{
			ID:     "camp-1",
			UserID: "user-2",
			Name:   "Original",
			Status: domain.CampaignStatusActive,
		})
		assert.ErrorIs(t, err, ErrOwnershipImutable)
	})

	t.Run("Atualização válida é persistida", func(t *testing.T) {
		mockRepo.EXPECT().GetCampaignByID("camp-1").Return(existing, nil)
		mockRepo.EXPECT().UpdateCampaign(gomock.Any()).Return(nil)

		err := service.UpdateCampaign(&domain.Campaign{
			ID:     "camp-1",
			UserID: "user-1",
			Name:   "Renomeada",
			Status: domain.CampaignStatusPaused,
		})
		assert.NoError(t, err)
	})
}

func TestService_DeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	campaign := &domain.Campaign{ID: "camp-1", UserID: "owner-1", Name: "Campanha"}

	tests := []struct {
		name        string
		actorRole   domain.Role
		actorID     string
		setup       func()
		expectedErr error
	}{
		{
			name:      "Admin exclui campanha de qualquer dono",
			actorRole: domain.RoleAdmin,
			actorID:   "admin-1",
			setup: func() {
				mockRepo.EXPECT().GetCampaignByID("camp-1").Return(campaign, nil)
				mockRepo.EXPECT().DeleteCampaign("camp-1").Return(nil)
			},
		},
		{
			name:      "Gerente de marketing exclui campanha de qualquer dono",
			actorRole: domain.RoleGerenteMarketing,
			actorID:   "gerente-1",
			setup: func() {
				mockRepo.EXPECT().GetCampaignByID("camp-1").Return(campaign, nil)
				mockRepo.EXPECT().DeleteCampaign("camp-1").Return(nil)
			},
		},
		{
			name:      "Editor exclui a própria campanha",
			actorRole: domain.RoleEditor,
			actorID:   "owner-1",
			setup: func() {
				mockRepo.EXPECT().GetCampaignByID("camp-1").Return(campaign, nil)
				mockRepo.EXPECT().DeleteCampaign("camp-1").Return(nil)
			},
		},
		{
			name:      "Editor não exclui campanha alheia",
			actorRole: domain.RoleEditor,
			actorID:   "editor-2",
			setup: func() {
				mockRepo.EXPECT().GetCampaignByID("camp-1").Return(campaign, nil)
			},
			expectedErr: ErrDeleteNotAllowed,
		},
		{
			name:      "Viewer não exclui campanha alheia",
			actorRole: domain.RoleViewer,
			actorID:   "viewer-1",
			setup: func() {
				mockRepo.EXPECT().GetCampaignByID("camp-1").Return(campaign, nil)
			},
			expectedErr: ErrDeleteNotAllowed,
		},
		{
			name:      "Campanha inexistente retorna erro",
			actorRole: domain.RoleAdmin,
			actorID:   "admin-1",
			setup: func() {
				mockRepo.EXPECT().GetCampaignByID("camp-1").Return(nil, nil)
			},
			expectedErr: ErrCampaignNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.DeleteCampaign(tt.actorRole, tt.actorID, "camp-1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
