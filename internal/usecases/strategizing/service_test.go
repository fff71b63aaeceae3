package strategizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"go.uber.org/mock/gomock"
)

func newService(ctrl *gomock.Controller) (StrategyService, *mocks.MockObjectiveRepository, *mocks.MockSwotRepository, *mocks.MockBrandIdentityRepository) {
	mockObjectiveRepo := mocks.NewMockObjectiveRepository(ctrl)
	mockSwotRepo := mocks.NewMockSwotRepository(ctrl)
	mockBrandRepo := mocks.NewMockBrandIdentityRepository(ctrl)
	service := NewService(mockObjectiveRepo, mockSwotRepo, mockBrandRepo, authorizing.NewEvaluator(nil))
	return service, mockObjectiveRepo, mockSwotRepo, mockBrandRepo
}

func TestService_CreateObjective(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockObjectiveRepo, _, _ := newService(ctrl)

	t.Run("Objetivo válido recebe o criador como dono", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().
			CreateObjective(gomock.Any()).
			DoAndReturn(func(objective *domain.Objective) (*domain.Objective, error) {
				objective.ID = "obj-1"
				return objective, nil
			})

		result, err := service.CreateObjective("user-1", &domain.Objective{Title: "Crescer tráfego orgânico"})
		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Objetivo sem título é rejeitado", func(t *testing.T) {
		result, err := service.CreateObjective("user-1", &domain.Objective{})
		assert.ErrorIs(t, err, ErrMissingTitle)
		assert.Nil(t, result)
	})
}

func TestService_CreateKeyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockObjectiveRepo, _, _ := newService(ctrl)

	t.Run("Resultado-chave válido é criado sob o objetivo", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().
			GetObjectiveByID("obj-1").
			Return(&domain.Objective{ID: "obj-1", UserID: "user-1"}, nil)

		mockObjectiveRepo.EXPECT().
			CreateKeyResult(gomock.Any()).
			DoAndReturn(func(keyResult *domain.KeyResult) (*domain.KeyResult, error) {
				keyResult.ID = "kr-1"
				return keyResult, nil
			})

		result, err := service.CreateKeyResult("user-1", &domain.KeyResult{
			ObjectiveID: "obj-1",
			Title:       "10 mil visitas mensais",
			TargetValue: 10000,
		})
		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Meta zero ou negativa é rejeitada", func(t *testing.T) {
		result, err := service.CreateKeyResult("user-1", &domain.KeyResult{
			ObjectiveID: "obj-1",
			Title:       "Meta inválida",
			TargetValue: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidTargetValue)
		assert.Nil(t, result)
	})

	t.Run("Objetivo inexistente é rejeitado", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().GetObjectiveByID("obj-x").Return(nil, nil)

		result, err := service.CreateKeyResult("user-1", &domain.KeyResult{
			ObjectiveID: "obj-x",
			Title:       "Órfão",
			TargetValue: 100,
		})
		assert.ErrorIs(t, err, ErrObjectiveNotFound)
		assert.Nil(t, result)
	})
}

func TestService_UpdateKeyResultProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockObjectiveRepo, _, _ := newService(ctrl)

	t.Run("Progresso é atualizado e retornado", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().
			GetKeyResultByID("kr-1").
			Return(&domain.KeyResult{ID: "kr-1", TargetValue: 10000, CurrentValue: 2000}, nil)

		mockObjectiveRepo.EXPECT().
			UpdateKeyResultProgress("kr-1", 7500.0).
			Return(nil)

		result, err := service.UpdateKeyResultProgress("kr-1", 7500)
		assert.NoError(t, err)
		assert.Equal(t, 7500.0, result.CurrentValue)
	})

	t.Run("Valor negativo é normalizado para zero", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().
			GetKeyResultByID("kr-1").
			Return(&domain.KeyResult{ID: "kr-1", TargetValue: 10000}, nil)

		mockObjectiveRepo.EXPECT().
			UpdateKeyResultProgress("kr-1", 0.0).
			Return(nil)

		result, err := service.UpdateKeyResultProgress("kr-1", -50)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, result.CurrentValue)
	})

	t.Run("Resultado-chave inexistente retorna erro", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().GetKeyResultByID("kr-x").Return(nil, nil)

		result, err := service.UpdateKeyResultProgress("kr-x", 100)
		assert.ErrorIs(t, err, ErrKeyResultNotFound)
		assert.Nil(t, result)
	})
}

func TestService_ListObjectives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockObjectiveRepo, _, _ := newService(ctrl)

	t.Run("Objetivos vêm com seus resultados-chave carregados", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().ListObjectives().Return([]*domain.Objective{
			{ID: "obj-1", Title: "Objetivo A"},
			{ID: "obj-2", Title: "Objetivo B"},
		}, nil)

		mockObjectiveRepo.EXPECT().
			ListKeyResultsByObjective("obj-1").
			Return([]*domain.KeyResult{{ID: "kr-1", ObjectiveID: "obj-1"}}, nil)

		mockObjectiveRepo.EXPECT().
			ListKeyResultsByObjective("obj-2").
			Return([]*domain.KeyResult{}, nil)

		objectives, err := service.ListObjectives()
		assert.NoError(t, err)
		assert.Len(t, objectives, 2)
		assert.Len(t, objectives[0].KeyResults, 1)
		assert.Empty(t, objectives[1].KeyResults)
	})
}

func TestService_SaveSwot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, mockSwotRepo, _ := newService(ctrl)

	t.Run("Análise é gravada com o usuário autenticado como dono", func(t *testing.T) {
		mockSwotRepo.EXPECT().
			SaveOrUpdateSwot(gomock.Any()).
			DoAndReturn(func(swot *domain.SwotAnalysis) (*domain.SwotAnalysis, error) {
				assert.Equal(t, "user-1", swot.UserID)
				return swot, nil
			})

		strengths := "Equipe experiente"
		result, err := service.SaveSwot("user-1", &domain.SwotAnalysis{Strengths: &strengths})
		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
	})
}

func TestService_SaveBrandIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, mockBrandRepo := newService(ctrl)

	t.Run("Identidade é gravada com o usuário autenticado como dono", func(t *testing.T) {
		mockBrandRepo.EXPECT().
			SaveOrUpdateBrandIdentity(gomock.Any()).
			DoAndReturn(func(brand *domain.BrandIdentity) (*domain.BrandIdentity, error) {
				assert.Equal(t, "user-1", brand.UserID)
				return brand, nil
			})

		mission := "Democratizar o marketing baseado em dados"
		result, err := service.SaveBrandIdentity("user-1", &domain.BrandIdentity{
			Mission: &mission,
			UserID:  "invasor",
		})
		assert.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Salvar novamente substitui a identidade existente do usuário", func(t *testing.T) {
		vision := "Ser referência em operações de marketing"
		mockBrandRepo.EXPECT().
			SaveOrUpdateBrandIdentity(gomock.Any()).
			DoAndReturn(func(brand *domain.BrandIdentity) (*domain.BrandIdentity, error) {
				brand.ID = "brand-1"
				return brand, nil
			})

		result, err := service.SaveBrandIdentity("user-1", &domain.BrandIdentity{Vision: &vision})
		assert.NoError(t, err)
		assert.Equal(t, "brand-1", result.ID)
		assert.Equal(t, &vision, result.Vision)
	})
}

func TestService_GetBrandIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, mockBrandRepo := newService(ctrl)

	t.Run("Identidade existente é retornada", func(t *testing.T) {
		mockBrandRepo.EXPECT().
			GetByUserID("user-1").
			Return(&domain.BrandIdentity{ID: "brand-1", UserID: "user-1"}, nil)

		result, err := service.GetBrandIdentity("user-1")
		assert.NoError(t, err)
		assert.Equal(t, "brand-1", result.ID)
	})

	t.Run("Usuário sem identidade recebe nil sem erro", func(t *testing.T) {
		mockBrandRepo.EXPECT().
			GetByUserID("user-1").
			Return(nil, nil)

		result, err := service.GetBrandIdentity("user-1")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestService_DeleteObjective(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockObjectiveRepo, _, _ := newService(ctrl)

	objective := &domain.Objective{ID: "obj-1", UserID: "owner-1", Title: "Objetivo"}

	t.Run("Dono exclui o próprio objetivo", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().GetObjectiveByID("obj-1").Return(objective, nil)
		mockObjectiveRepo.EXPECT().DeleteObjective("obj-1").Return(nil)

		err := service.DeleteObjective(domain.RoleEditor, "owner-1", "obj-1")
		assert.NoError(t, err)
	})

	t.Run("Não dono sem privilégio é negado", func(t *testing.T) {
		mockObjectiveRepo.EXPECT().GetObjectiveByID("obj-1").Return(objective, nil)

		err := service.DeleteObjective(domain.RoleAnalyst, "outro", "obj-1")
		assert.ErrorIs(t, err, ErrDeleteNotAllowed)
	})
}
