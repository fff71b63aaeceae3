package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"go.uber.org/mock/gomock"
)

func TestService_CreatePersona(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPersonaRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	tests := []struct {
		name        string
		actorID     string
		persona     *domain.Persona
		setup       func()
		expectedErr error
		validate    func(t *testing.T, result *domain.Persona)
	}{
		{
			name:    "Persona criada tem o criador como dono",
			actorID: "user-1",
			persona: &domain.Persona{
				PersonaName: "Marina Gerente",
				UserID:      "outro-usuario",
			},
			setup: func() {
				mockRepo.EXPECT().
					CreatePersona(gomock.Any()).
					DoAndReturn(func(p *domain.Persona) (*domain.Persona, error) {
						p.ID = "persona-1"
						return p, nil
					})
			},
			validate: func(t *testing.T, result *domain.Persona) {
				assert.Equal(t, "user-1", result.UserID)
			},
		},
		{
			name:        "Persona sem nome é rejeitada",
			actorID:     "user-1",
			persona:     &domain.Persona{},
			setup:       func() {},
			expectedErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.CreatePersona(tt.actorID, tt.persona)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			tt.validate(t, result)
		})
	}
}

func TestService_UpdatePersona(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPersonaRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	tests := []struct {
		name        string
		persona     *domain.Persona
		setup       func()
		expectedErr error
	}{
		{
			name: "Atualização preserva o dono original",
			persona: &domain.Persona{
				ID:          "persona-1",
				PersonaName: "Marina Gerente",
				UserID:      "invasor",
			},
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-1").
					Return(&domain.Persona{ID: "persona-1", UserID: "user-1"}, nil)

				mockRepo.EXPECT().
					UpdatePersona(gomock.Any()).
					DoAndReturn(func(p *domain.Persona) error {
						assert.Equal(t, "user-1", p.UserID)
						return nil
					})
			},
		},
		{
			name:    "Persona inexistente não é atualizada",
			persona: &domain.Persona{ID: "persona-x", PersonaName: "Qualquer"},
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-x").
					Return(nil, nil)
			},
			expectedErr: ErrPersonaNotFound,
		},
		{
			name:    "Nome vazio é rejeitado",
			persona: &domain.Persona{ID: "persona-1"},
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-1").
					Return(&domain.Persona{ID: "persona-1", UserID: "user-1"}, nil)
			},
			expectedErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.UpdatePersona(tt.persona)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeletePersona(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPersonaRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	tests := []struct {
		name        string
		actorRole   domain.Role
		actorID     string
		setup       func()
		expectedErr error
	}{
		{
			name:      "Dono exclui a própria persona",
			actorRole: domain.RoleEditor,
			actorID:   "user-1",
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-1").
					Return(&domain.Persona{ID: "persona-1", UserID: "user-1"}, nil)

				mockRepo.EXPECT().
					DeletePersona("persona-1").
					Return(nil)
			},
		},
		{
			name:      "Gerente de marketing exclui persona de qualquer dono",
			actorRole: domain.RoleGerenteMarketing,
			actorID:   "gerente-1",
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-1").
					Return(&domain.Persona{ID: "persona-1", UserID: "user-1"}, nil)

				mockRepo.EXPECT().
					DeletePersona("persona-1").
					Return(nil)
			},
		},
		{
			name:      "Editor não exclui persona de outro dono",
			actorRole: domain.RoleEditor,
			actorID:   "user-2",
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-1").
					Return(&domain.Persona{ID: "persona-1", UserID: "user-1"}, nil)
			},
			expectedErr: ErrDeleteNotAllowed,
		},
		{
			name:      "Persona inexistente não é excluída",
			actorRole: domain.RoleAdmin,
			actorID:   "admin-1",
			setup: func() {
				mockRepo.EXPECT().
					GetPersonaByID("persona-1").
					Return(nil, nil)
			},
			expectedErr: ErrPersonaNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.DeletePersona(tt.actorRole, tt.actorID, "persona-1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
