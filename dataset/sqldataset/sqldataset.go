/*
Package sqldataset provides methods to read datasets from tables on SQL
database backends, made available through adapters for the specific
database technologies.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/marc-chan/sapling/dataset"
)

/*
Adapter is an interface wrapping a connection to a specific SQL
database technology.

Its DB method returns the database/sql handle queries are run against.
Its Close method releases the connection.
*/
type Adapter interface {
	DB() *sql.DB
	Close() error
}

/*
Open takes a context, an adapter to a database backend, the name of a
table and the names of its feature columns and label column, and
returns the dataset read from the table or an error. Every selected
column must hold values readable as float64.
*/
func Open(ctx context.Context, adapter Adapter, table string, featureColumns []string, labelColumn string) (*dataset.Dataset, error) {
	if len(featureColumns) == 0 {
		return nil, fmt.Errorf("opening dataset on table %s: no feature columns", table)
	}
	columns := make([]string, 0, len(featureColumns)+1)
	for _, c := range append(append([]string{}, featureColumns...), labelColumn) {
		columns = append(columns, fmt.Sprintf("%q", c))
	}
	query := fmt.Sprintf("SELECT %s FROM %q", strings.Join(columns, ", "), table)
	rows, err := adapter.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	var features [][]float64
	var labels []float64
	for rows.Next() {
		values := make([]float64, len(columns))
		dest := make([]interface{}, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", len(labels)+1, table, err)
		}
		features = append(features, values[:len(values)-1])
		labels = append(labels, values[len(values)-1])
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return dataset.New(features, labels)
}
