package entity_test

import (
	"testing"

	"github.com/jklassic/logistics/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestParcelStatusValid(t *testing.T) {
	for _, status := range []entity.ParcelStatus{
		entity.StatusPending,
		entity.StatusTransit,
		entity.StatusArrived,
		entity.StatusDelivered,
	} {
		assert.True(t, status.Valid(), "expected %s to be valid", status)
	}

	assert.False(t, entity.ParcelStatus("LOST").Valid())
	assert.False(t, entity.ParcelStatus("pending").Valid())
	assert.False(t, entity.ParcelStatus("").Valid())
}
