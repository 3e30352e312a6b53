package storage

import (
	"gorm.io/gorm"

	"github.com/oghanim/triviarena/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByID(id uint) (*game.Session, error) {
	var s game.Session
	err := r.db.
		Preload("Participants").
		Preload("AbilityCatalog").
		Preload("Questions").
		Preload("Cells").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) FindSessionByJoinCode(code string) (*game.Session, error) {
	var s game.Session
	err := r.db.
		Preload("Participants").
		Preload("AbilityCatalog").
		Preload("Questions").
		Preload("Cells").
		Where("join_code = ?", code).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *sqliteRepository) RemoveParticipantByUUID(sessionID uint, participantUUID string) error {
	return r.db.
		Where("session_id = ? AND participant_uuid = ?", sessionID, participantUUID).
		Delete(&game.Participant{}).Error
}

func (r *sqliteRepository) ReplaceAbilityCatalog(sessionID uint, catalog []game.AbilityDef) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&game.AbilityDef{}).Error; err != nil {
			return err
		}
		for i := range catalog {
			catalog[i].ID = 0
			catalog[i].SessionID = sessionID
			catalog[i].Position = i
		}
		if len(catalog) == 0 {
			return nil
		}
		return tx.Create(&catalog).Error
	})
}

func (r *sqliteRepository) ReplaceCells(sessionID uint, cells []game.Cell) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&game.Cell{}).Error; err != nil {
			return err
		}
		for i := range cells {
			cells[i].ID = 0
			cells[i].SessionID = sessionID
		}
		if len(cells) == 0 {
			return nil
		}
		return tx.Create(&cells).Error
	})
}
