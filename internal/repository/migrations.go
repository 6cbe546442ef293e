package repository

import (
	"fmt"

	"billest/internal/db"

	"gorm.io/gorm"
)

const historyUserIDIndex = "idx_history_user_id"

// Migrations lists the schema versions in the order they were introduced.
func Migrations() []db.Migration {
	return []db.Migration{
		{Version: 1, Name: "create_base_tables", Up: createBaseTables},
		{Version: 2, Name: "add_history_user_id", Up: addHistoryUserID},
	}
}

// createBaseTables leaves tables that already exist untouched, including a history table
// written by the single-table schema.
func createBaseTables(tx *gorm.DB) error {
	m := tx.Migrator()
	for _, model := range []any{&User{}, &HistoryEntry{}, &GuestPrediction{}} {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}

func addHistoryUserID(tx *gorm.DB) error {
	m := tx.Migrator()
	if !m.HasColumn(&HistoryEntry{}, "UserID") {
		if err := m.AddColumn(&HistoryEntry{}, "UserID"); err != nil {
			return fmt.Errorf("add history.user_id: %w", err)
		}
	}
	if !m.HasIndex(&HistoryEntry{}, historyUserIDIndex) {
		if err := m.CreateIndex(&HistoryEntry{}, historyUserIDIndex); err != nil {
			return fmt.Errorf("create %s: %w", historyUserIDIndex, err)
		}
	}
	return nil
}
