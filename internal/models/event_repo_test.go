package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventQuery(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, bson.M{}, eventQuery(EventFilter{}))
	})

	t.Run("AllCategoryMatchesEverything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, eventQuery(EventFilter{Category: "All"}))
	})

	t.Run("Category", func(t *testing.T) {
		q := eventQuery(EventFilter{Category: "Music"})
		assert.Equal(t, "Music", q["category"])
	})

	t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
		q := eventQuery(EventFilter{Search: "jazz"})
		or, ok := q["$or"].(bson.A)
		assert.True(t, ok)
		assert.Len(t, or, 3)

		first := or[0].(bson.M)
		regex := first["title"].(primitive.Regex)
		assert.Equal(t, "jazz", regex.Pattern)
		assert.Equal(t, "i", regex.Options)
	})
}

func TestEventSort(t *testing.T) {
	cases := []struct {
		sort  string
		key   string
		order int
	}{
		{SortPopular, "attendees", -1},
		{SortRating, "rating", -1},
		{SortPriceAsc, "price", 1},
		{SortNearest, "date_time", 1},
		{"", "date_time", 1},
		{"garbage", "date_time", 1},
	}

	for _, tc := range cases {
		spec := eventSort(tc.sort)
		assert.Len(t, spec, 1)
		assert.Equal(t, tc.key, spec[0].Key, "sort=%q", tc.sort)
		assert.Equal(t, tc.order, spec[0].Value, "sort=%q", tc.sort)
	}
}
