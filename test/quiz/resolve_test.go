package quiz

import (
	"testing"

	"Backend-BrainBattle/src/utils"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resolution order: identifiers shaped like ObjectIDs are tried as ids
// first, everything else goes straight to the join-code lookup.
func TestIdentifierShapes(t *testing.T) {

	t.Run("TestObjectIDShape", func(t *testing.T) {
		id := primitive.NewObjectID().Hex()

		_, err := primitive.ObjectIDFromHex(id)

		assert.NoError(t, err)
		assert.Len(t, id, 24)
		assert.False(t, utils.IsJoinCode(id))
	})

	t.Run("TestJoinCodeShape", func(t *testing.T) {
		code := utils.GenerateJoinCode()

		_, err := primitive.ObjectIDFromHex(code)

		assert.Error(t, err, "a join code must never parse as an ObjectID")
		assert.True(t, utils.IsJoinCode(code))
	})

	t.Run("TestGarbageMatchesNeither", func(t *testing.T) {
		_, err := primitive.ObjectIDFromHex("not-a-quiz")

		assert.Error(t, err)
		assert.False(t, utils.IsJoinCode("not-a-quiz"))
	})
}
