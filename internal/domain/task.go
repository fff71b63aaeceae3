package domain

import (
	"time"
)

// TaskStatus representa a coluna do quadro kanban em que a tarefa está
type TaskStatus string

const (
	TaskStatusIdeas      TaskStatus = "ideas"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusApproved   TaskStatus = "approved"
	TaskStatusPublished  TaskStatus = "published"
)

// BoardColumns define as colunas do quadro na ordem de exibição
var BoardColumns = []TaskStatus{
	TaskStatusIdeas,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusApproved,
	TaskStatusPublished,
}

// IsValidTaskStatus verifica se o status informado é uma coluna conhecida do quadro
func IsValidTaskStatus(s TaskStatus) bool {
	for _, valid := range BoardColumns {
		if s == valid {
			return true
		}
	}
	return false
}

// Task representa uma tarefa do quadro kanban. Priority varia de 1 (baixa)
// a 3 (alta).
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CampaignID  *string    `json:"campaign_id"`
	ContentID   *string    `json:"content_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	AssignedTo  *string    `json:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskBoard representa o quadro agrupado por coluna, na ordem de BoardColumns
type TaskBoard struct {
	Columns []TaskBoardColumn `json:"columns"`
	Total   int               `json:"total"`
}

type TaskBoardColumn struct {
	Status TaskStatus `json:"status"`
	Tasks  []*Task    `json:"tasks"`
	Count  int        `json:"count"`
}
