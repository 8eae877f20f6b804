package repository

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceSearch carries the raw search parameters of GET /services.
// Price bounds stay strings so that unparseable values can be dropped.
type ServiceSearch struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Sort     string
}

// QueryPlan is a filter document plus a sort document ready for Find.
type QueryPlan struct {
	Filter bson.D
	Sort   bson.D
}

// SortByPrice is the sort key (case-insensitive) that orders by hourly rate.
const SortByPrice = "price"

// BuildServiceQuery translates search parameters into a query plan.
//
//   - search: title OR category contains the term, case-insensitive,
//     literal substring (regex metacharacters are escaped)
//   - category: exact equality
//   - minPrice/maxPrice: bound hourly_rate; a bound that does not parse as
//     a finite number is dropped
//   - sort: rating descending, or hourly_rate descending for "price"
//
// All present clauses are ANDed. There is no ascending order, secondary
// sort key or pagination.
func BuildServiceQuery(params ServiceSearch) QueryPlan {
	filter := bson.D{}

	if term := strings.TrimSpace(params.Search); term != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "category", Value: pattern}},
		}})
	}

	if params.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: params.Category})
	}

	rate := bson.D{}
	if lower, ok := parseBound(params.MinPrice); ok {
		rate = append(rate, bson.E{Key: "$gte", Value: lower})
	}
	if upper, ok := parseBound(params.MaxPrice); ok {
		rate = append(rate, bson.E{Key: "$lte", Value: upper})
	}
	if len(rate) > 0 {
		filter = append(filter, bson.E{Key: "hourly_rate", Value: rate})
	}

	sortField := "rating"
	if strings.EqualFold(strings.TrimSpace(params.Sort), SortByPrice) {
		sortField = "hourly_rate"
	}

	return QueryPlan{
		Filter: filter,
		Sort:   bson.D{{Key: sortField, Value: -1}},
	}
}

func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
