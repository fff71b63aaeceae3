package strategizing

import (
	"errors"

	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
)

var (
	ErrObjectiveNotFound  = errors.New("objetivo não encontrado")
	ErrKeyResultNotFound  = errors.New("resultado-chave não encontrado")
	ErrMissingTitle       = errors.New("título é obrigatório")
	ErrInvalidTargetValue = errors.New("meta do resultado-chave deve ser maior que zero")
	ErrDeleteNotAllowed   = errors.New("usuário não pode excluir este objetivo")
)

type StrategyService interface {
	CreateObjective(actorID string, objective *domain.Objective) (*domain.Objective, error)
	DeleteObjective(actorRole domain.Role, actorID, objectiveID string) error
	GetObjectiveByID(objectiveID string) (*domain.Objective, error)
	ListObjectives() ([]*domain.Objective, error)
	CreateKeyResult(actorID string, keyResult *domain.KeyResult) (*domain.KeyResult, error)
	UpdateKeyResultProgress(keyResultID string, currentValue float64) (*domain.KeyResult, error)
	GetSwot(userID string) (*domain.SwotAnalysis, error)
	SaveSwot(userID string, swot *domain.SwotAnalysis) (*domain.SwotAnalysis, error)
	GetBrandIdentity(userID string) (*domain.BrandIdentity, error)
	SaveBrandIdentity(userID string, brand *domain.BrandIdentity) (*domain.BrandIdentity, error)
}

type Service struct {
	objectiveRepo repository.ObjectiveRepository
	swotRepo      repository.SwotRepository
	brandRepo     repository.BrandIdentityRepository
	evaluator     *authorizing.Evaluator
}

func NewService(
	objectiveRepo repository.ObjectiveRepository,
	swotRepo repository.SwotRepository,
	brandRepo repository.BrandIdentityRepository,
	evaluator *authorizing.Evaluator,
) StrategyService {
	return &Service{
		objectiveRepo: objectiveRepo,
		swotRepo:      swotRepo,
		brandRepo:     brandRepo,
		evaluator:     evaluator,
	}
}

func (s *Service) CreateObjective(actorID string, objective *domain.Objective) (*domain.Objective, error) {
	if objective.Title == "" {
		return nil, ErrMissingTitle
	}

	objective.UserID = actorID

	return s.objectiveRepo.CreateObjective(objective)
}

// DeleteObjective remove o objetivo e, em cascata, seus resultados-chave.
func (s *Service) DeleteObjective(actorRole domain.Role, actorID, objectiveID string) error {
	objective, err := s.objectiveRepo.GetObjectiveByID(objectiveID)
	if err != nil {
		return err
	}
	if objective == nil {
		return ErrObjectiveNotFound
	}

	if !s.evaluator.CanDelete(actorRole, objective.UserID, actorID) {
		return ErrDeleteNotAllowed
	}

	return s.objectiveRepo.DeleteObjective(objectiveID)
}

// GetObjectiveByID retorna o objetivo já com seus resultados-chave carregados.
func (s *Service) GetObjectiveByID(objectiveID string) (*domain.Objective, error) {
	objective, err := s.objectiveRepo.GetObjectiveByID(objectiveID)
	if err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, ErrObjectiveNotFound
	}

	keyResults, err := s.objectiveRepo.ListKeyResultsByObjective(objectiveID)
	if err != nil {
		return nil, err
	}
	objective.KeyResults = keyResults

	return objective, nil
}

func (s *Service) ListObjectives() ([]*domain.Objective, error) {
	objectives, err := s.objectiveRepo.ListObjectives()
	if err != nil {
		return nil, err
	}

	for _, objective := range objectives {
		keyResults, err := s.objectiveRepo.ListKeyResultsByObjective(objective.ID)
		if err != nil {
			return nil, err
		}
		objective.KeyResults = keyResults
	}

	return objectives, nil
}

func (s *Service) CreateKeyResult(actorID string, keyResult *domain.KeyResult) (*domain.KeyResult, error) {
	if keyResult.Title == "" {
		return nil, ErrMissingTitle
	}
	if keyResult.TargetValue <= 0 {
		return nil, ErrInvalidTargetValue
	}

	objective, err := s.objectiveRepo.GetObjectiveByID(keyResult.ObjectiveID)
	if err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, ErrObjectiveNotFound
	}

	keyResult.UserID = actorID

	return s.objectiveRepo.CreateKeyResult(keyResult)
}

func (s *Service) UpdateKeyResultProgress(keyResultID string, currentValue float64) (*domain.KeyResult, error) {
	keyResult, err := s.objectiveRepo.GetKeyResultByID(keyResultID)
	if err != nil {
		return nil, err
	}
	if keyResult == nil {
		return nil, ErrKeyResultNotFound
	}

	if currentValue < 0 {
		currentValue = 0
	}

	if err := s.objectiveRepo.UpdateKeyResultProgress(keyResultID, currentValue); err != nil {
		return nil, err
	}

	keyResult.CurrentValue = currentValue

	return keyResult, nil
}

func (s *Service) GetSwot(userID string) (*domain.SwotAnalysis, error) {
	return s.swotRepo.GetByUserID(userID)
}

// SaveSwot cria ou substitui a análise SWOT do usuário. Cada usuário possui
// no máximo uma análise.
func (s *Service) SaveSwot(userID string, swot *domain.SwotAnalysis) (*domain.SwotAnalysis, error) {
	swot.UserID = userID
	return s.swotRepo.SaveOrUpdateSwot(swot)
}

func (s *Service) GetBrandIdentity(userID string) (*domain.BrandIdentity, error) {
	return s.brandRepo.GetByUserID(userID)
}

// SaveBrandIdentity cria ou substitui a identidade da marca do usuário,
// com a mesma semântica de linha única por usuário da análise SWOT.
func (s *Service) SaveBrandIdentity(userID string, brand *domain.BrandIdentity) (*domain.BrandIdentity, error) {
	brand.UserID = userID
	return s.brandRepo.SaveOrUpdateBrandIdentity(brand)
}
