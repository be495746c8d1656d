package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"carevault/internal/domain"
	"carevault/internal/service/s3"
)

const (
	// Время жизни подписанной ссылки на скачивание
	signedURLTTL = time.Hour
)

// Определение пользовательских ошибок
var (
	ErrMissingInput     = errors.New("missing required input")
	ErrInvalidTimestamp = errors.New("invalid prescribed timestamp")
	ErrStorageFailure   = errors.New("storage operation failed")
	ErrMetadataFailure  = errors.New("metadata operation failed")
	ErrNotFound         = errors.New("document not found")
	ErrDeleteFailure    = errors.New("failed to delete document")
)

// Форматы, в которых клиенты присылают prescribedAt
var prescribedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// VaultMetadata определяет операции над записями о документах
type VaultMetadata interface {
	Create(ctx context.Context, doc *domain.VaultDocument) error
	GetByID(ctx context.Context, id int64) (*domain.VaultDocument, error)
	List(ctx context.Context) ([]domain.VaultDocument, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.VaultDocument, error)
	Delete(ctx context.Context, id int64) error
}

// VaultService оркестрирует загрузку, выдачу и удаление документов:
// блоб живет в S3, запись о нем - в базе. Общей транзакции между ними нет,
// согласованность восстанавливается компенсирующими действиями.
type VaultService struct {
	vaultRepo VaultMetadata
	storage   s3.Storage
}

func NewVaultService(vaultRepo VaultMetadata, storage s3.Storage) *VaultService {
	return &VaultService{
		vaultRepo: vaultRepo,
		storage:   storage,
	}
}

// Upload загружает документ: сначала блоб в S3 под свежим случайным ключом,
// затем запись в базу. Если вставка записи не удалась, только что загруженный
// блоб удаляется, чтобы не оставлять осиротевших объектов.
func (s *VaultService) Upload(ctx context.Context, payload io.Reader, input domain.VaultUpload) error {
	// Проверяем входные параметры до любых побочных эффектов
	if payload == nil || input.FileName == "" {
		return fmt.Errorf("%w: file is required", ErrMissingInput)
	}
	if input.Type == "" {
		return fmt.Errorf("%w: type is required", ErrMissingInput)
	}
	if input.PrescribedAt == "" {
		return fmt.Errorf("%w: prescribedAt is required", ErrMissingInput)
	}
	if input.OwnerID == "" {
		return fmt.Errorf("%w: userId is required", ErrMissingInput)
	}

	// Разбираем дату назначения до обращения к хранилищу: ошибка разбора
	// не должна оставить блоб без записи
	prescribedAt, err := parsePrescribedAt(input.PrescribedAt)
	if err != nil {
		return err
	}

	// Буферизуем входящий поток во временный файл; файл удаляется
	// на любом пути выхода
	tmp, err := os.CreateTemp("", "vault-upload-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrStorageFailure, err)
	}
	defer func() {
		tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil {
			log.Printf("failed to remove temp file %s: %v", tmp.Name(), err)
		}
	}()

	if _, err := io.Copy(tmp, payload); err != nil {
		return fmt.Errorf("%w: failed to stage upload: %v", ErrStorageFailure, err)
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return fmt.Errorf("%w: failed to read staged upload: %v", ErrStorageFailure, err)
	}

	// Ключ хранения никогда не выводится из имени файла: случайный токен
	// плюс исходное расширение
	storageKey := uuid.New().String() + filepath.Ext(input.FileName)

	if err := s.storage.UploadBytes(storageKey, data, input.ContentType); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	doc := &domain.VaultDocument{
		Name:         input.FileName,
		Type:         input.Type,
		FilePath:     storageKey,
		PrescribedAt: prescribedAt,
		OwnerID:      input.OwnerID,
	}

	if err := s.vaultRepo.Create(ctx, doc); err != nil {
		// При ошибке вставки удаляем свежезагруженный блоб
		if deleteErr := s.storage.DeleteObject(storageKey); deleteErr != nil {
			log.Printf("failed to delete object %s after db error: %v", storageKey, deleteErr)
		}
		return fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	return nil
}

// List возвращает документы (все или одного владельца), каждый с подписанной
// ссылкой на скачивание. Ошибка подписи одной ссылки не прячет остальные
// документы: такая запись возвращается с пустым URL.
func (s *VaultService) List(ctx context.Context, ownerID string) ([]domain.VaultFile, error) {
	var (
		docs []domain.VaultDocument
		err  error
	)

	if ownerID == "" {
		docs, err = s.vaultRepo.List(ctx)
	} else {
		docs, err = s.vaultRepo.ListByOwner(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	// Подписываем ссылки параллельно; порядок ответа сохраняет порядок выборки
	files := make([]domain.VaultFile, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		files[i].VaultDocument = docs[i]

		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()

			url, err := s.storage.PresignURL(ctx, key, signedURLTTL)
			if err != nil {
				log.Printf("failed to presign URL for %s: %v", key, err)
				return
			}
			files[i].URL = url
		}(i, docs[i].FilePath)
	}
	wg.Wait()

	return files, nil
}

// Delete удаляет блоб и запись о документе. Неудача удаления блоба не
// фатальна: лучше убрать запись, чем оставить нескачиваемый документ в
// списке. Неудача удаления записи фатальна.
func (s *VaultService) Delete(ctx context.Context, id int64) error {
	doc, err := s.vaultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrMetadataFailure, err)
	}

	if err := s.storage.DeleteObject(doc.FilePath); err != nil {
		log.Printf("failed to delete object %s, removing metadata anyway: %v", doc.FilePath, err)
	}

	if err := s.vaultRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailure, err)
	}

	return nil
}

// parsePrescribedAt нормализует присланную клиентом дату к UTC
func parsePrescribedAt(value string) (time.Time, error) {
	for _, layout := range prescribedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
