package domain

import (
	"time"
)

// CampaignStatus representa o estado de uma campanha
type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusPaused CampaignStatus = "paused"
	CampaignStatusDraft  CampaignStatus = "draft"
)

// Channel representa um canal de marketing
type Channel string

const (
	ChannelSEO         Channel = "seo"
	ChannelPPC         Channel = "ppc"
	ChannelSocialMedia Channel = "social_media"
	ChannelEmail       Channel = "email"
	ChannelContent     Channel = "content"
	ChannelPR          Channel = "pr"
	ChannelEvents      Channel = "events"
)

// ValidChannels lista os canais aceitos na criação de campanhas
var ValidChannels = []Channel{
	ChannelSEO,
	ChannelPPC,
	ChannelSocialMedia,
	ChannelEmail,
	ChannelContent,
	ChannelPR,
	ChannelEvents,
}

// Campaign representa uma campanha de marketing. O campo Spent não é
// validado contra Budget: estouro de orçamento é representável por decisão
// de produto.
type Campaign struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	Spent       float64        `json:"spent"`
	StartDate   *time.Time     `json:"start_date"`
	EndDate     *time.Time     `json:"end_date"`
	Channels    []Channel      `json:"channels"`
	ObjectiveID *string        `json:"objective_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IsValidStatus verifica se o status informado é um status de campanha conhecido
func IsValidStatus(s CampaignStatus) bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusDraft:
		return true
	}
	return false
}

// IsValidChannel verifica se o canal informado é um canal de marketing conhecido
func IsValidChannel(c Channel) bool {
	for _, valid := range ValidChannels {
		if c == valid {
			return true
		}
	}
	return false
}
