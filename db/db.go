package db

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/darkroomtools/easeld/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

var (
	database *sql.DB
	once     sync.Once
)

// Connect opens the SQLite recipe store at the given path. The busy
// timeout covers the server and the CLI touching the same file.
func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_fk=1", cfg.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func GetDatabase() *sql.DB {
	once.Do(func() {
		db, err := Connect(config.Global().Database)
		if err != nil {
			log.Logger.Fatal().Err(err).Msg("Connect to database")
			panic(err)
		}
		database = db
	})
	return database
}
