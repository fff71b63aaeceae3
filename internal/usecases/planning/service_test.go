package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository/mocks"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
	"go.uber.org/mock/gomock"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestService_CreateContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	t.Run("Peça nova sem status entra como ideia", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateContent(gomock.Any()).
			DoAndReturn(func(content *domain.Content) (*domain.Content, error) {
				content.ID = "content-1"
				return content, nil
			})

		result, err := service.CreateContent("user-1", &domain.Content{
			Title:  "Guia de SEO",
			Format: domain.FormatBlogPost,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.TaskStatusIdeas, result.Status)
		assert.Equal(t, "user-1", result.UserID)
	})

	t.Run("Peça sem título é rejeitada", func(t *testing.T) {
		result, err := service.CreateContent("user-1", &domain.Content{Format: domain.FormatVideo})
		assert.ErrorIs(t, err, ErrMissingTitle)
		assert.Nil(t, result)
	})

	t.Run("Formato desconhecido é rejeitado", func(t *testing.T) {
		result, err := service.CreateContent("user-1", &domain.Content{
			Title:  "Peça",
			Format: domain.ContentFormat("podcast_quantico"),
		})
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.Nil(t, result)
	})
}

func TestService_GetCalendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	t.Run("Agrupa peças por dia em ordem cronológica", func(t *testing.T) {
		day20 := time.Date(2026, time.March, 20, 14, 30, 0, 0, time.UTC)
		day5a := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
		day5b := time.Date(2026, time.March, 5, 18, 0, 0, 0, time.UTC)

		mockRepo.EXPECT().
			ListContentByPeriod(gomock.Any(), gomock.Any()).
			DoAndReturn(func(start, end time.Time) ([]*domain.Content, error) {
				assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)
				assert.Equal(t, time.March, end.Month())
				return []*domain.Content{
					{ID: "c1", Title: "Post tarde", PublishDate: timePtr(day20)},
					{ID: "c2", Title: "Post manhã", PublishDate: timePtr(day5a)},
					{ID: "c3", Title: "Post noite", PublishDate: timePtr(day5b)},
					{ID: "c4", Title: "Rascunho sem data", PublishDate: nil},
				}, nil
			})

		days, err := service.GetCalendar(2026, time.March)
		assert.NoError(t, err)
		assert.Len(t, days, 2)

		// Dia 5 vem antes do dia 20, com as duas peças do dia agrupadas
		assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), days[0].Date)
		assert.Len(t, days[0].Entries, 2)

		assert.Equal(t, time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC), days[1].Date)
		assert.Len(t, days[1].Entries, 1)
	})

	t.Run("Mês sem conteúdo retorna calendário vazio", func(t *testing.T) {
		mockRepo.EXPECT().
			ListContentByPeriod(gomock.Any(), gomock.Any()).
			Return([]*domain.Content{}, nil)

		days, err := service.GetCalendar(2026, time.April)
		assert.NoError(t, err)
		assert.Empty(t, days)
	})
}

func TestService_DeleteContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockContentRepository(ctrl)
	service := NewService(mockRepo, authorizing.NewEvaluator(nil))

	content := &domain.Content{ID: "content-1", UserID: "owner-1", Title: "Peça"}

	t.Run("Dono exclui a própria peça", func(t *testing.T) {
		mockRepo.EXPECT().GetContentByID("content-1").Return(content, nil)
		mockRepo.EXPECT().DeleteContent("content-1").Return(nil)

		err := service.DeleteContent(domain.RoleEditor, "owner-1", "content-1")
		assert.NoError(t, err)
	})

	t.Run("Editor não exclui peça alheia", func(t *testing.T) {
		mockRepo.EXPECT().GetContentByID("content-1").Return(content, nil)

		err := service.DeleteContent(domain.RoleEditor, "editor-2", "content-1")
		assert.ErrorIs(t, err, ErrDeleteNotAllowed)
	})

	t.Run("Peça inexistente retorna erro", func(t *testing.T) {
		mockRepo.EXPECT().GetContentByID("content-x").Return(nil, nil)

		err := service.DeleteContent(domain.RoleAdmin, "admin-1", "content-x")
		assert.ErrorIs(t, err, ErrContentNotFound)
	})
}
