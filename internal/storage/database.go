package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oghanim/triviarena/internal/game"
)

// OpenAndMigrate opens the SQLite database at dataSourceName and keeps
// the schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&game.Session{},
		&game.Participant{},
		&game.AbilityDef{},
		&game.Question{},
		&game.Cell{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
