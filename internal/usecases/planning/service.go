package planning

import (
	"errors"
	"sort"
	"time"

	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
)

var (
	ErrContentNotFound  = errors.New("conteúdo não encontrado")
	ErrInvalidFormat    = errors.New("formato de conteúdo inválido")
	ErrInvalidStatus    = errors.New("status de conteúdo inválido")
	ErrMissingTitle     = errors.New("título do conteúdo é obrigatório")
	ErrDeleteNotAllowed = errors.New("usuário não pode excluir este conteúdo")
)

type ContentService interface {
	CreateContent(actorID string, content *domain.Content) (*domain.Content, error)
	UpdateContent(content *domain.Content) error
	DeleteContent(actorRole domain.Role, actorID, contentID string) error
	GetContentByID(contentID string) (*domain.Content, error)
	ListContent() ([]*domain.Content, error)
	GetCalendar(year int, month time.Month) ([]*domain.CalendarDay, error)
}

type Service struct {
	contentRepo repository.ContentRepository
	evaluator   *authorizing.Evaluator
}

func NewService(contentRepo repository.ContentRepository, evaluator *authorizing.Evaluator) ContentService {
	return &Service{
		contentRepo: contentRepo,
		evaluator:   evaluator,
	}
}

func (s *Service) CreateContent(actorID string, content *domain.Content) (*domain.Content, error) {
	if content.Title == "" {
		return nil, ErrMissingTitle
	}
	if !domain.IsValidContentFormat(content.Format) {
		return nil, ErrInvalidFormat
	}

	if content.Status == "" {
		content.Status = domain.TaskStatusIdeas
	}
	if !domain.IsValidTaskStatus(content.Status) {
		return nil, ErrInvalidStatus
	}

	content.UserID = actorID

	return s.contentRepo.CreateContent(content)
}

func (s *Service) UpdateContent(content *domain.Content) error {
	existing, err := s.contentRepo.GetContentByID(content.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrContentNotFound
	}

	if content.Title == "" {
		return ErrMissingTitle
	}
	if !domain.IsValidContentFormat(content.Format) {
		return ErrInvalidFormat
	}
	if !domain.IsValidTaskStatus(content.Status) {
		return ErrInvalidStatus
	}

	content.UserID = existing.UserID

	return s.contentRepo.UpdateContent(content)
}

func (s *Service) DeleteContent(actorRole domain.Role, actorID, contentID string) error {
	content, err := s.contentRepo.GetContentByID(contentID)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}

	if !s.evaluator.CanDelete(actorRole, content.UserID, actorID) {
		return ErrDeleteNotAllowed
	}

	return s.contentRepo.DeleteContent(contentID)
}

func (s *Service) GetContentByID(contentID string) (*domain.Content, error) {
	return s.contentRepo.GetContentByID(contentID)
}

func (s *Service) ListContent() ([]*domain.Content, error) {
	return s.contentRepo.ListContent()
}

// GetCalendar retorna os dias do mês que possuem conteúdo agendado, em ordem
// cronológica. Peças sem data de publicação ficam fora do calendário.
func (s *Service) GetCalendar(year int, month time.Month) ([]*domain.CalendarDay, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	contents, err := s.contentRepo.ListContentByPeriod(start, end)
	if err != nil {
		return nil, err
	}

	buckets := make(map[time.Time][]*domain.Content)
	for _, content := range contents {
		if content.PublishDate == nil {
			continue
		}

		day := content.PublishDate.UTC()
		day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		buckets[day] = append(buckets[day], content)
	}

	days := make([]*domain.CalendarDay, 0, len(buckets))
	for day, entries := range buckets {
		days = append(days, &domain.CalendarDay{
			Date:    day,
			Entries: entries,
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return days, nil
}
