package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/vcampos/marketing-hub-api/infrastructure/database/postgres"
	"github.com/vcampos/marketing-hub-api/internal/domain"
)

const notificationsTable = "notifications"

type NotificationRepository interface {
	CreateNotification(notification *domain.Notification) (*domain.Notification, error)
	ListByUserID(userID string) ([]*domain.Notification, error)
	MarkAsRead(notificationID, userID string) error
	MarkAllAsRead(userID string) error
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

func (r *notificationRepository) CreateNotification(notification *domain.Notification) (*domain.Notification, error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}

	queryBuilder := squirrel.
		Insert(notificationsTable).
		Columns("id", "user_id", "title", "message", "type", "read").
		Values(notification.ID, notification.UserID, notification.Title, notification.Message, notification.Type, notification.Read).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de criação de notificação")
	}

	err = r.conn.QueryRow(notificationSQL, notificationArgs...).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir notificação")
	}

	return notification, nil
}

func (r *notificationRepository) ListByUserID(userID string) ([]*domain.Notification, error) {
	queryBuilder := squirrel.
		Select("id", "user_id", "title", "message", "type", "read", "created_at").
		From(notificationsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(100).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta de notificações")
	}

	rows, err := r.conn.Query(notificationSQL, notificationArgs...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar notificações")
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Title,
			&notification.Message,
			&notification.Type,
			&notification.Read,
			&notification.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao processar notificação")
		}

		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração de notificações")
	}

	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(notificationID, userID string) error {
	queryBuilder := squirrel.
		Update(notificationsTable).
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de leitura de notificação")
	}

	_, err = r.conn.Exec(notificationSQL, notificationArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao marcar notificação como lida")
	}

	return nil
}

func (r *notificationRepository) MarkAllAsRead(userID string) error {
	queryBuilder := squirrel.
		Update(notificationsTable).
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta de leitura de notificações")
	}

	_, err = r.conn.Exec(notificationSQL, notificationArgs...)
	if err != nil {
		return errors.Wrap(err, "erro ao marcar notificações como lidas")
	}

	return nil
}
