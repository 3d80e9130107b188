package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"chamados/internal/domain/ticket"
	vo "chamados/internal/domain/ticket/valueobjects"
	"chamados/internal/infrastructure/persistence/mappers"
	"chamados/internal/infrastructure/persistence/models"
	db "chamados/internal/shared/db"
	"chamados/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Complete closes the ticket with a single guarded statement. Rows
// that are already closed are left untouched, so the stored closing
// timestamp never moves once set.
func (r *TicketRepository) Complete(ctx context.Context, ticketID uint, closedAt time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND status <> ?", ticketID, vo.StatusClosed.String()).
		Updates(map[string]interface{}{
			"status":    vo.StatusClosed.String(),
			"closed_at": closedAt.UnixMilli(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete ticket: %w", result.Error)
	}

	// RowsAffected is 0 when the ticket was already closed.

	return nil
}

// SetOnSiteHelp raises the escalation flag. The flag is monotonic and
// the write touches no other column, so repeating it is harmless.
func (r *TicketRepository) SetOnSiteHelp(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", ticketID).
		Update("on_site_help", true)

	if result.Error != nil {
		return fmt.Errorf("failed to set on-site help flag: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByStatus(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{}).
		Where("status = ?", filter.Status.String())

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Order("id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}

	return tickets, nil
}
