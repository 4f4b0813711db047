package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/marc-chan/sapling/dataset"
	"github.com/marc-chan/sapling/dataset/csv"
	"github.com/marc-chan/sapling/dataset/mongodataset"
	"github.com/marc-chan/sapling/dataset/sqldataset"
	"github.com/marc-chan/sapling/dataset/sqldataset/pgadapter"
	"github.com/marc-chan/sapling/dataset/sqldataset/sqlite3adapter"
	"github.com/marc-chan/sapling/feature"
	"github.com/marc-chan/sapling/feature/yaml"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	mgo "gopkg.in/mgo.v2"
)

const inputFlagUsage = "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to read (defaults to STDIN, interpreted as CSV)"

type datasetInput struct {
	path          string
	metadataInput string
	table         string
	maxDBConns    int
}

// dataset loads the dataset the input points to, along with the names
// of its feature columns. CSV inputs name their columns on the header
// row; database inputs take them from the metadata file.
func (di *datasetInput) dataset(ctx context.Context, log *zap.SugaredLogger) (*dataset.Dataset, []string, error) {
	switch {
	case strings.HasPrefix(di.path, "postgresql://"):
		return di.postgreSQLDataset(ctx, log)
	case strings.HasPrefix(di.path, "mongodb://"):
		return di.mongoDBDataset(log)
	case strings.HasSuffix(di.path, ".db"):
		return di.sqlite3Dataset(ctx, log)
	}
	if di.path == "" {
		log.Debugf("Reading dataset from STDIN...")
	} else {
		log.Debugf("Opening %s to read dataset...", di.path)
	}
	return csv.ReadFromFilePath(di.path)
}

func (di *datasetInput) sqlite3Dataset(ctx context.Context, log *zap.SugaredLogger) (*dataset.Dataset, []string, error) {
	md, err := di.metadata()
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("Creating SQLite3 adapter for file %s to read dataset...", di.path)
	adapter, err := sqlite3adapter.New(di.path, di.maxDBConns)
	if err != nil {
		return nil, nil, err
	}
	defer adapter.Close()
	log.Debugf("Opening dataset over SQLite3 adapter for file %s...", di.path)
	ds, err := sqldataset.Open(ctx, adapter, di.table, feature.Names(md.Features), md.Label.Name())
	if err != nil {
		return nil, nil, err
	}
	return ds, feature.Names(md.Features), nil
}

func (di *datasetInput) postgreSQLDataset(ctx context.Context, log *zap.SugaredLogger) (*dataset.Dataset, []string, error) {
	md, err := di.metadata()
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("Creating PostgreSQL adapter for url %s to read dataset...", di.path)
	adapter, err := pgadapter.New(di.path)
	if err != nil {
		return nil, nil, err
	}
	defer adapter.Close()
	log.Debugf("Opening dataset over PostgreSQL adapter for url %s...", di.path)
	ds, err := sqldataset.Open(ctx, adapter, di.table, feature.Names(md.Features), md.Label.Name())
	if err != nil {
		return nil, nil, err
	}
	return ds, feature.Names(md.Features), nil
}

func (di *datasetInput) mongoDBDataset(log *zap.SugaredLogger) (*dataset.Dataset, []string, error) {
	md, err := di.metadata()
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("Dialing MongoDB at %s to read dataset...", di.path)
	session, err := mgo.Dial(di.path)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MongoDB at %s: %v", di.path, err)
	}
	defer session.Close()
	log.Debugf("Opening dataset on MongoDB collection %s...", di.table)
	ds, err := mongodataset.Open(session, di.table, feature.Names(md.Features), md.Label.Name())
	if err != nil {
		return nil, nil, err
	}
	return ds, feature.Names(md.Features), nil
}

func (di *datasetInput) metadata() (*yaml.Metadata, error) {
	if di.metadataInput == "" {
		return nil, fmt.Errorf("required metadata flag was not set for database input %s", di.path)
	}
	if di.table == "" {
		return nil, fmt.Errorf("required table flag was not set for database input %s", di.path)
	}
	return yaml.ReadMetadataFromFile(di.metadataInput)
}

func (di *datasetInput) registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&(di.path), "input", "i", "", inputFlagUsage)
	flags.StringVarP(&(di.metadataInput), "metadata", "m", "", "path to a YML file naming the feature columns and the label column of a database input")
	flags.StringVar(&(di.table), "table", "", "name of the table or collection to read a database input from")
	flags.IntVar(&(di.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}
