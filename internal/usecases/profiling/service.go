package profiling

import (
	"errors"

	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
)

var (
	ErrPersonaNotFound  = errors.New("persona não encontrada")
	ErrMissingName      = errors.New("nome da persona é obrigatório")
	ErrDeleteNotAllowed = errors.New("usuário não pode excluir esta persona")
)

type PersonaService interface {
	CreatePersona(actorID string, persona *domain.Persona) (*domain.Persona, error)
	UpdatePersona(persona *domain.Persona) error
	DeletePersona(actorRole domain.Role, actorID, personaID string) error
	GetPersonaByID(personaID string) (*domain.Persona, error)
	ListPersonas() ([]*domain.Persona, error)
}

type Service struct {
	personaRepo repository.PersonaRepository
	evaluator   *authorizing.Evaluator
}

func NewService(personaRepo repository.PersonaRepository, evaluator *authorizing.Evaluator) PersonaService {
	return &Service{
		personaRepo: personaRepo,
		evaluator:   evaluator,
	}
}

func (s *Service) CreatePersona(actorID string, persona *domain.Persona) (*domain.Persona, error) {
	if persona.PersonaName == "" {
		return nil, ErrMissingName
	}

	persona.UserID = actorID

	return s.personaRepo.CreatePersona(persona)
}

func (s *Service) UpdatePersona(persona *domain.Persona) error {
	existing, err := s.personaRepo.GetPersonaByID(persona.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPersonaNotFound
	}

	if persona.PersonaName == "" {
		return ErrMissingName
	}

	persona.UserID = existing.UserID

	return s.personaRepo.UpdatePersona(persona)
}

func (s *Service) DeletePersona(actorRole domain.Role, actorID, personaID string) error {
	persona, err := s.personaRepo.GetPersonaByID(personaID)
	if err != nil {
		return err
	}
	if persona == nil {
		return ErrPersonaNotFound
	}

	if !s.evaluator.CanDelete(actorRole, persona.UserID, actorID) {
		return ErrDeleteNotAllowed
	}

	return s.personaRepo.DeletePersona(personaID)
}

func (s *Service) GetPersonaByID(personaID string) (*domain.Persona, error) {
	return s.personaRepo.GetPersonaByID(personaID)
}

func (s *Service) ListPersonas() ([]*domain.Persona, error) {
	return s.personaRepo.ListPersonas()
}
