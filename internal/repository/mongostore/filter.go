package mongostore

import (
	"regexp"

	"github.com/silfira/realty/api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildPropertyFilter translates the filter into a Mongo query document.
// Absent predicates add no key; supplied predicates AND together as
// top-level document fields.
func buildPropertyFilter(filter repository.PropertyFilter) bson.M {
	query := bson.M{}

	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if filter.Location != "" {
		// Case-insensitive substring match; the input is quoted so regex
		// metacharacters match literally.
		query["location"] = primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Location),
			Options: "i",
		}
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	return query
}
