package campaigning

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vcampos/marketing-hub-api/infrastructure/repository"
	"github.com/vcampos/marketing-hub-api/internal/domain"
	"github.com/vcampos/marketing-hub-api/internal/usecases/authorizing"
)

var (
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrInvalidStatus     = errors.New("status de campanha inválido")
	ErrInvalidChannel    = errors.New("canal de marketing inválido")
	ErrMissingName       = errors.New("nome da campanha é obrigatório")
	ErrDeleteNotAllowed  = errors.New("usuário não pode excluir esta campanha")
	ErrOwnershipImutable = errors.New("o dono de uma campanha não pode ser alterado")
)

type CampaignService interface {
	CreateCampaign(actorID string, campaign *domain.Campaign) (*domain.Campaign, error)
	UpdateCampaign(campaign *domain.Campaign) error
	DeleteCampaign(actorRole domain.Role, actorID, campaignID string) error
	GetCampaignByID(campaignID string) (*domain.Campaign, error)
	ListCampaigns() ([]*domain.Campaign, error)
	ListCampaignsByOwner(userID string) ([]*domain.Campaign, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	evaluator    *authorizing.Evaluator
}

func NewService(campaignRepo repository.CampaignRepository, evaluator *authorizing.Evaluator) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		evaluator:    evaluator,
	}
}

// CreateCampaign cria uma campanha pertencente ao usuário que a criou. O
// dono é definido aqui e nunca muda.
func (s *Service) CreateCampaign(actorID string, campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign.Name == "" {
		return nil, ErrMissingName
	}

	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}

	if err := validateCampaign(campaign); err != nil {
		return nil, err
	}

	campaign.UserID = actorID

	// Orçamento e gasto negativos não são persistidos; o estouro de
	// orçamento (spent > budget) é permitido por decisão de produto
	if campaign.Budget < 0 {
		campaign.Budget = 0
	}
	if campaign.Spent < 0 {
		campaign.Spent = 0
	}

	return s.campaignRepo.CreateCampaign(campaign)
}

func (s *Service) UpdateCampaign(campaign *domain.Campaign) error {
	existing, err := s.campaignRepo.GetCampaignByID(campaign.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCampaignNotFound
	}

	if campaign.UserID != "" && campaign.UserID != existing.UserID {
		return ErrOwnershipImutable
	}

	if err := validateCampaign(campaign); err != nil {
		return err
	}

	if campaign.Budget < 0 {
		campaign.Budget = 0
	}
	if campaign.Spent < 0 {
		campaign.Spent = 0
	}

	return s.campaignRepo.UpdateCampaign(campaign)
}

// DeleteCampaign exclui a campanha se o avaliador de autorização permitir:
// administradores e gerentes de marketing excluem qualquer campanha, os
// demais papéis apenas as próprias.
func (s *Service) DeleteCampaign(actorRole domain.Role, actorID, campaignID string) error {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	if !s.evaluator.CanDelete(actorRole, campaign.UserID, actorID) {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"actor_id":    actorID,
			"actor_role":  actorRole,
		}).Warn("Exclusão de campanha negada")
		return ErrDeleteNotAllowed
	}

	return s.campaignRepo.DeleteCampaign(campaignID)
}

func (s *Service) GetCampaignByID(campaignID string) (*domain.Campaign, error) {
	return s.campaignRepo.GetCampaignByID(campaignID)
}

func (s *Service) ListCampaigns() ([]*domain.Campaign, error) {
	return s.campaignRepo.ListCampaigns()
}

func (s *Service) ListCampaignsByOwner(userID string) ([]*domain.Campaign, error) {
	return s.campaignRepo.ListCampaignsByOwner(userID)
}

func validateCampaign(campaign *domain.Campaign) error {
	if !domain.IsValidStatus(campaign.Status) {
		return ErrInvalidStatus
	}

	for _, channel := range campaign.Channels {
		if !domain.IsValidChannel(channel) {
			return ErrInvalidChannel
		}
	}

	return nil
}
