package util

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

/*
 * a UsageStore backed by a sqlite database file.
 */
type DB struct {
	db           *sql.DB
	rowsLimit    uint
	recentsLimit int
}

var _ UsageStore = (*DB)(nil)

func ConnectDB(filename string, rowsLimit uint, recentsLimit int) (*DB, error) {
	dsn := "file:" + filename + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if recentsLimit <= 0 {
		recentsLimit = DefaultRecentsLimit
	}
	final := &DB{
		db,
		rowsLimit,
		recentsLimit,
	}
	if err = final.InitDB(); err != nil {
		db.Close()
		return nil, err
	}
	// statistics are not worth keeping forever
	rows, err := final.Count()
	if err == nil && rowsLimit > 0 && uint(rows) > rowsLimit {
		db.Close()
		if err = os.Remove(filename); err != nil {
			return nil, err
		}
		os.Remove(filename + "-wal")
		os.Remove(filename + "-shm")
		// the new file is empty, so this won't recurse again
		return ConnectDB(filename, rowsLimit, recentsLimit)
	}
	return final, nil
}

func (db *DB) Close() {
	db.db.Close()
}

func (db *DB) InitDB() error {
	stmts := []string{
		`create table if not exists usage(carrier text not null primary key, uses integer not null default 0);`,
		`create table if not exists recents(id integer not null primary key autoincrement, carrier text not null unique);`,
	}
	for _, stmt := range stmts {
		if _, err := db.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (db *DB) RecordUsage(carrier string) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []struct {
		query string
		args  []any
	}{
		{`insert into usage(carrier, uses) values(?, 1) on conflict(carrier) do update set uses = uses + 1;`, []any{carrier}},
		{`delete from recents where carrier = ?;`, []any{carrier}},
		{`insert into recents(carrier) values(?);`, []any{carrier}},
		{`delete from recents where id not in (select id from recents order by id desc limit ?);`, []any{db.recentsLimit}},
	}
	for _, s := range stmts {
		if _, err = tx.Exec(s.query, s.args...); err != nil {
			return fmt.Errorf("failed to record usage: %w", err)
		}
	}
	return tx.Commit()
}

func (db *DB) Recents(limit int) ([]string, error) {
	if limit <= 0 {
		limit = db.recentsLimit
	}
	rows, err := db.db.Query(`select carrier from recents order by id desc limit ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var carrier string
		if err = rows.Scan(&carrier); err != nil {
			return nil, err
		}
		result = append(result, carrier)
	}
	return result, rows.Err()
}

func (db *DB) Stats() (map[string]uint, error) {
	rows, err := db.db.Query(`select carrier, uses from usage;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[string]uint{}
	for rows.Next() {
		var carrier string
		var count uint
		if err = rows.Scan(&carrier, &count); err != nil {
			return nil, err
		}
		result[carrier] = count
	}
	return result, rows.Err()
}

func (db *DB) ClearRecents() error {
	_, err := db.db.Exec(`delete from recents;`)
	return err
}

// Count returns the amount of carriers with statistics.
func (db *DB) Count() (int, error) {
	var amount int
	if err := db.db.QueryRow(`select count(*) from usage;`).Scan(&amount); err != nil {
		return -1, err
	}
	return amount, nil
}
