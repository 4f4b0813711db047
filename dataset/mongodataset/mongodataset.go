/*
Package mongodataset provides methods to read datasets from collections
on MongoDB databases.
*/
package mongodataset

import (
	"fmt"

	"github.com/marc-chan/sapling/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

/*
Open takes a MongoDB database session, the name of a collection and the
names of its feature fields and label field and returns the dataset
read from the documents of the collection on the session's default
database, or an error. Every selected field must hold a numeric value
on every document.
*/
func Open(session *mgo.Session, collection string, featureFields []string, labelField string) (*dataset.Dataset, error) {
	if len(featureFields) == 0 {
		return nil, fmt.Errorf("opening dataset on collection %s: no feature fields", collection)
	}
	selection := bson.M{"_id": 0, labelField: 1}
	for _, f := range featureFields {
		selection[f] = 1
	}
	iter := session.DB("").C(collection).Find(nil).Select(selection).Iter()
	var features [][]float64
	var labels []float64
	var doc bson.M
	for iter.Next(&doc) {
		fv := make([]float64, 0, len(featureFields))
		for _, f := range featureFields {
			value, err := numericField(doc, f)
			if err != nil {
				return nil, fmt.Errorf("reading document %d of collection %s: %v", len(labels)+1, collection, err)
			}
			fv = append(fv, value)
		}
		label, err := numericField(doc, labelField)
		if err != nil {
			return nil, fmt.Errorf("reading document %d of collection %s: %v", len(labels)+1, collection, err)
		}
		features = append(features, fv)
		labels = append(labels, label)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return dataset.New(features, labels)
}

func numericField(doc bson.M, field string) (float64, error) {
	v, ok := doc[field]
	if !ok {
		return 0.0, fmt.Errorf("document defines no %s field", field)
	}
	switch value := v.(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	}
	return 0.0, fmt.Errorf("field %s holds non-numeric value %v", field, v)
}
