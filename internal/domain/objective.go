package domain

import (
	"time"
)

// Objective representa um objetivo (OKR) de um trimestre
type Objective struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Quarter     *string      `json:"quarter"`
	Year        *int         `json:"year"`
	KeyResults  []*KeyResult `json:"key_results,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// KeyResult representa um resultado-chave vinculado a um objetivo
type KeyResult struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ObjectiveID  string    `json:"objective_id"`
	Title        string    `json:"title"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Unit         *string   `json:"unit"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Progress retorna o percentual de progresso do resultado-chave, limitado a
// [0, 100]. Meta zerada resulta em 0, nunca em divisão por zero.
func (kr *KeyResult) Progress() float64 {
	if kr.TargetValue <= 0 {
		return 0
	}

	progress := (kr.CurrentValue / kr.TargetValue) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}

	return progress
}
