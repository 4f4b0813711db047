/*
Package pgadapter provides an adapter for sqldataset to read datasets
from PostgreSQL databases.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	// registers the postgres driver on database/sql
	_ "github.com/lib/pq"
)

/*
Adapter wraps a connection to a PostgreSQL database.
*/
type Adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns an adapter for the
database it points to or an error.
*/
func New(url string) (*Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database at %s: %v", url, err)
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
Close releases the connection to the database.
*/
func (a *Adapter) Close() error {
	return a.db.Close()
}
