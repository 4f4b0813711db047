/*
Package sqlite3adapter provides an adapter for sqldataset to read
datasets from SQLite3 database files.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	// registers the sqlite3 driver on database/sql
	_ "github.com/mattn/go-sqlite3"
)

/*
Adapter wraps a connection to a SQLite3 database file.
*/
type Adapter struct {
	db *sql.DB
}

/*
New takes a filepath to a SQLite3 database file and a limit to the
number of connections to open against it (0 for no limit) and returns
an adapter for it or an error.
*/
func New(filepath string, maxConns int) (*Adapter, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database at %s: %v", filepath, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &Adapter{db}, nil
}

/*
DB returns the database/sql handle of the adapter.
*/
func (a *Adapter) DB() *sql.DB {
	return a.db
}

/*
Close releases the connection to the database file.
*/
func (a *Adapter) Close() error {
	return a.db.Close()
}
