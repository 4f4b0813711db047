/*
Package feature describes the columns of a dataset: the named
continuous features samples define and the label column trees predict.
*/
package feature

/*
Feature represents a continuous property samples define a value for.
*/
type Feature struct {
	name string
}

/*
New takes a name string and returns a feature with the given name.
*/
func New(name string) Feature {
	return Feature{name}
}

/*
Name returns a string with the name of the feature
*/
func (f Feature) Name() string {
	return f.name
}

func (f Feature) String() string {
	return f.name
}

/*
Names takes a slice of features and returns a slice with their names in
the same order.
*/
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name()
	}
	return names
}
