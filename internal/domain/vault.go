package domain

import (
	"time"
)

// VaultDocument представляет запись о медицинском документе в хранилище
type VaultDocument struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Type         string    `json:"type" db:"type"`
	FilePath     string    `json:"file_path" db:"file_path"`
	PrescribedAt time.Time `json:"prescribed_at" db:"prescribed_at"`
	OwnerID      string    `json:"owner_id" db:"owner_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// VaultUpload представляет входные данные загрузки документа
type VaultUpload struct {
	FileName     string
	ContentType  string
	Type         string
	PrescribedAt string
	OwnerID      string
}

// VaultFile представляет документ вместе с подписанной ссылкой на скачивание.
// URL пустой, если подписать ссылку не удалось.
type VaultFile struct {
	VaultDocument
	URL string `json:"url"`
}
