package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agencyops/backoffice-api/internal/models"
)

// Payloads reference related rows by raw id. The helpers below resolve
// a reference to an existing row or clear it: a nil, empty, malformed
// or dangling id yields nil. Entity writes never see request-shaped
// data.

func userRef(db *gorm.DB, raw *string) *uuid.UUID {
	return resolve(db, raw, &models.User{})
}

func productRef(db *gorm.DB, raw *string) *uuid.UUID {
	return resolve(db, raw, &models.Product{})
}

func voiceOverRef(db *gorm.DB, raw *string) *uuid.UUID {
	return resolve(db, raw, &models.VoiceOver{})
}

func clientRef(db *gorm.DB, raw *string) *uuid.UUID {
	return resolve(db, raw, &models.Client{})
}

func resolve(db *gorm.DB, raw *string, model interface{}) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil
	}
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil || count == 0 {
		return nil
	}
	return &id
}
