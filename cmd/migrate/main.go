package main

import (
	"log"
	"os"

	"wisenotes-be/internal/model"
	"wisenotes-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	models := []interface{}{
		&model.Notebook{},
		&model.Note{},
		&model.ActivityLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Migration failed: %v", err)
		os.Exit(1)
	}

	// notes.notebook_id -> notebooks.id with cascading delete at the
	// store level; the service still deletes notes explicitly in the
	// same transaction, this keeps the schema honest either way.
	fkSQL := `DO $$ BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_notes_notebook') THEN
			ALTER TABLE notes ADD CONSTRAINT fk_notes_notebook
				FOREIGN KEY (notebook_id) REFERENCES notebooks (id) ON DELETE CASCADE;
		END IF;
	END $$;`
	if err := db.Exec(fkSQL).Error; err != nil {
		color.Yellow("Warn: Failed to ensure notes foreign key: %v", err)
	}

	color.Green("Migration complete: %d tables", len(models))
}
