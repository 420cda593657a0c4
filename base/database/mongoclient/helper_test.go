package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crossmart/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Price  *string `bson:"price,omitempty"`
		Status *string `bson:"status,omitempty"`
		Lister string  `bson:"lister"`
		Note   string  `bson:"note"`
	}

	patchable := &PatchableListing{}
	patchable.Price = ptr.String("1000000000000000000")
	patchable.Note = "relisted"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"price": "1000000000000000000",
			// lister is empty so it is skipped
			"note": "relisted",
		},
		updater,
	)
}
