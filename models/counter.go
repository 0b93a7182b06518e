package models

// Counter backs a named monotonic sequence.
type Counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}
