package utils_test

import (
	"testing"

	"github.com/jklassic/logistics/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrackingNumber(t *testing.T) {
	id := uuid.MustParse("ab12cd34-0000-0000-0000-000000000000")

	tn := utils.TrackingNumber(id)
	assert.Equal(t, "ab12cd", tn)

	// stable across calls
	assert.Equal(t, tn, utils.TrackingNumber(id))
}

func TestDisplayIDs(t *testing.T) {
	id := uuid.MustParse("ab12cd34-0000-0000-0000-000000000000")

	assert.Equal(t, "ABC-ab12cd", utils.WorkerDisplayID(id))
	assert.Equal(t, "ab12cd", utils.AdminDisplayID(id))
}

func TestTrackingLink(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/track?parcel=ab12cd",
		utils.TrackingLink("http://localhost:8080", "ab12cd"))

	// trailing slash on the base url does not double up
	assert.Equal(t, "http://localhost:8080/track?parcel=ab12cd",
		utils.TrackingLink("http://localhost:8080/", "ab12cd"))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, utils.ParseInt("10", 1))
	assert.Equal(t, 1, utils.ParseInt("", 1))
	assert.Equal(t, 1, utils.ParseInt("abc", 1))
	assert.Equal(t, 1, utils.ParseInt("0", 1))
	assert.Equal(t, 1, utils.ParseInt("-5", 1))
}
