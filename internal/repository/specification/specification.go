package specification

import "go.mongodb.org/mongo-driver/bson"

// Specification describes one filter condition on a collection query.
// Implementations add their condition to the bson filter document.
type Specification interface {
	Apply(filter bson.M)
}

// Filter merges specifications into a single bson filter document.
func Filter(specs ...Specification) bson.M {
	filter := bson.M{}
	for _, spec := range specs {
		spec.Apply(filter)
	}
	return filter
}
