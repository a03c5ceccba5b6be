package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// pageOptions builds find options for a newest-first page sorted on field.
// A limit <= 0 returns every document.
func pageOptions(field string, limit, offset int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: field, Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if offset > 0 {
		opts.SetSkip(int64(offset))
	}
	return opts
}

// storedTime reads a timestamp written either as a BSON date or as an RFC 3339 string
func storedTime(v interface{}) time.Time {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

// firstTime returns the first non-zero time
func firstTime(times ...time.Time) time.Time {
	for _, t := range times {
		if !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

// objectIDTime is the creation time encoded in a document id
func objectIDTime(id primitive.ObjectID) time.Time {
	if id.IsZero() {
		return time.Time{}
	}
	return id.Timestamp().UTC()
}
