package services

import (
	"errors"
	"sort"
	"strings"

	"MediBook/repository"
	"MediBook/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, util.ValidationError(util.INVALID_ID)
	}
	return id, nil
}

// storeError maps repository failures onto the client-facing taxonomy.
// Anything unexpected is logged here and hidden behind InternalError.
func storeError(err error, op string, notFound string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return util.NotFoundError(notFound)
	}
	log.Error().Err(err).Str("op", op).Msg("store operation failed")
	return util.InternalError(err)
}

func missingFieldsError(missing []string) error {
	return util.ValidationError(util.MISSING_FIELDS + ": " + strings.Join(missing, ", "))
}

type fieldKind int

const (
	stringField fieldKind = iota
	intField
	dateField
)

/*
* Turn a client update body into a $set document
* Locked keys are rejected, unknown keys are dropped
* Values are converted to the stored type
 */
func buildSet(data map[string]interface{}, fields map[string]fieldKind, locked ...string) (bson.M, error) {
	for _, key := range locked {
		if _, ok := data[key]; ok {
			return nil, util.ValidationError(util.FIELD_NOT_UPDATABLE + ": " + key)
		}
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	set := bson.M{}
	for _, key := range keys {
		kind, ok := fields[key]
		if !ok {
			continue
		}
		value := data[key]
		switch kind {
		case stringField:
			s, ok := util.StringValue(value)
			if !ok {
				return nil, util.ValidationError("Invalid value for " + key)
			}
			set[key] = s
		case intField:
			n, ok := util.IntValue(value)
			if !ok {
				return nil, util.ValidationError("Invalid value for " + key)
			}
			set[key] = n
		case dateField:
			s, ok := value.(string)
			if !ok {
				return nil, util.ValidationError(util.INVALID_DATE)
			}
			t, err := util.ParseDate(s)
			if err != nil {
				return nil, util.ValidationError(util.INVALID_DATE)
			}
			set[key] = t
		}
	}
	return set, nil
}
