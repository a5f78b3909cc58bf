package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// NewID returns a 24-character hex identifier. The leading bytes encode the
// creation time, so identifiers sort in insertion order.
func NewID() string {
	return bson.NewObjectID().Hex()
}

func IsValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}
