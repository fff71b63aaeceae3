package domain

import (
	"time"
)

// ContentFormat representa o formato de uma peça de conteúdo editorial
type ContentFormat string

const (
	FormatBlogPost    ContentFormat = "blog_post"
	FormatSocialMedia ContentFormat = "social_media"
	FormatEmail       ContentFormat = "email"
	FormatVideo       ContentFormat = "video"
	FormatInfographic ContentFormat = "infographic"
	FormatWebinar     ContentFormat = "webinar"
	FormatEbook       ContentFormat = "ebook"
)

// JourneyStage representa a etapa da jornada do cliente que o conteúdo atende
type JourneyStage string

const (
	StageAwareness     JourneyStage = "awareness"
	StageConsideration JourneyStage = "consideration"
	StageDecision      JourneyStage = "decision"
	StageRetention     JourneyStage = "retention"
)

// IsValidContentFormat verifica se o formato informado é conhecido
func IsValidContentFormat(f ContentFormat) bool {
	switch f {
	case FormatBlogPost, FormatSocialMedia, FormatEmail, FormatVideo,
		FormatInfographic, FormatWebinar, FormatEbook:
		return true
	}
	return false
}

// Content representa uma peça do calendário editorial. O status reaproveita
// as colunas do quadro de tarefas (ideas até published).
type Content struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Title        string        `json:"title"`
	Format       ContentFormat `json:"format"`
	Status       TaskStatus    `json:"status"`
	PersonaID    *string       `json:"persona_id"`
	CampaignID   *string       `json:"campaign_id"`
	PublishDate  *time.Time    `json:"publish_date"`
	DeliveryDate *time.Time    `json:"delivery_date"`
	JourneyStage *JourneyStage `json:"journey_stage"`
	Author       *string       `json:"author"`
	ContentBody  *string       `json:"content_body"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CalendarDay representa um dia do calendário editorial com as peças
// agendadas para aquele dia
type CalendarDay struct {
	Date    time.Time  `json:"date"`
	Entries []*Content `json:"entries"`
}
