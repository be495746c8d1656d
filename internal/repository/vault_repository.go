package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"carevault/internal/domain"
)

type VaultRepository struct {
	db *sqlx.DB
}

func NewVaultRepository(db *sqlx.DB) *VaultRepository {
	return &VaultRepository{db: db}
}

// Create вставляет запись о документе и заполняет поля, назначенные базой
func (r *VaultRepository) Create(ctx context.Context, doc *domain.VaultDocument) error {
	query := `
        INSERT INTO vault (name, type, file_path, prescribed_at, owner_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		doc.Name,
		doc.Type,
		doc.FilePath,
		doc.PrescribedAt,
		doc.OwnerID,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert vault document: %w", err)
	}

	return nil
}

func (r *VaultRepository) GetByID(ctx context.Context, id int64) (*domain.VaultDocument, error) {
	var doc domain.VaultDocument
	query := `SELECT * FROM vault WHERE id = $1`

	err := r.db.GetContext(ctx, &doc, query, id)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// List возвращает все документы, самые свежие назначения первыми
func (r *VaultRepository) List(ctx context.Context) ([]domain.VaultDocument, error) {
	var docs []domain.VaultDocument
	query := `SELECT * FROM vault ORDER BY prescribed_at DESC`

	err := r.db.SelectContext(ctx, &docs, query)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// ListByOwner возвращает документы одного владельца, самые свежие назначения первыми
func (r *VaultRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.VaultDocument, error) {
	var docs []domain.VaultDocument
	query := `SELECT * FROM vault WHERE owner_id = $1 ORDER BY prescribed_at DESC`

	err := r.db.SelectContext(ctx, &docs, query, ownerID)
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// Delete удаляет запись о документе. Удаление несуществующего id не является
// ошибкой: повторное удаление затрагивает ноль строк.
func (r *VaultRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM vault WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vault document: %w", err)
	}

	return nil
}
