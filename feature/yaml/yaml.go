/*
Package yaml provides methods to parse column specifications, also
known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/marc-chan/sapling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes the columns of a dataset input: the feature columns
in order and the label column trees grown from the input predict.
*/
type Metadata struct {
	Features []feature.Feature
	Label    feature.Feature
}

/*
ReadMetadata takes a slice of bytes with a column specification in YML
and returns the metadata parsed from it or an error.
The YML is expected to be an object with a features property listing
the feature column names in order and a label property with the name of
the label column.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	spec := struct {
		Features []string
		Label    string
	}{}
	err := yaml.Unmarshal(md, &spec)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(spec.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	if spec.Label == "" {
		return nil, fmt.Errorf("metadata has no label column")
	}
	features := make([]feature.Feature, 0, len(spec.Features))
	for _, name := range spec.Features {
		if name == spec.Label {
			return nil, fmt.Errorf("label column %s listed as a feature", name)
		}
		features = append(features, feature.New(name))
	}
	return &Metadata{Features: features, Label: feature.New(spec.Label)}, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and
uses ReadMetadata to parse it and return the metadata or an error. If
the file indicated by the filepath cannot be opened for reading an
error will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}
