package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/GeoSignal-Intelligence/internal/domain/signal"
)

func TestBucketEntity(t *testing.T) {
	t.Parallel()

	var ents signal.WatchlistEntities
	ents = bucketEntity(ents, entityKindEvent, "e1")
	ents = bucketEntity(ents, entityKindSector, "mining")
	ents = bucketEntity(ents, entityKindCountry, "France")
	ents = bucketEntity(ents, "unknown", "dropped")

	assert.Equal(t, []string{"e1"}, ents.EventIDs)
	assert.Equal(t, []string{"mining"}, ents.Sectors)
	assert.Equal(t, []string{"France"}, ents.Countries)
}

func TestDerefAndNilIfEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", deref(nil))
	v := "x"
	assert.Equal(t, "x", deref(&v))

	assert.Nil(t, nilIfEmpty(""))
	got := nilIfEmpty("y")
	if assert.NotNil(t, got) {
		assert.Equal(t, "y", *got)
	}
}

func TestNewEventRepository_RowCapDefault(t *testing.T) {
	t.Parallel()

	r := NewEventRepository(nil, nil, 0)
	assert.Equal(t, defaultRowCap, r.rowCap)

	r = NewEventRepository(nil, nil, 25)
	assert.Equal(t, 25, r.rowCap)
}

//Personal.AI order the ending
