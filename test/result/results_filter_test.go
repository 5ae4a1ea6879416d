package result

import (
	"testing"
	"time"

	"Backend-BrainBattle/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(n int) *int { return &n }

func TestResultFilterScoping(t *testing.T) {
	admin := primitive.NewObjectID()
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()

	// A non-admin caller only ever sees their own results, even when the
	// filter asks for someone else's.
	t.Run("TestNonAdminIsPinnedToOwnResults", func(t *testing.T) {
		filter := models.ResultFilter{UserID: other.Hex()}

		match, err := filter.MatchDocument(user, models.RoleUser)

		assert.NoError(t, err)
		assert.Equal(t, user, match["user"])
	})

	t.Run("TestAdminCanFilterByUser", func(t *testing.T) {
		filter := models.ResultFilter{UserID: other.Hex()}

		match, err := filter.MatchDocument(admin, models.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, other, match["user"])
	})

	t.Run("TestAdminWithoutUserFilterSeesAll", func(t *testing.T) {
		filter := models.ResultFilter{}

		match, err := filter.MatchDocument(admin, models.RoleAdmin)

		assert.NoError(t, err)
		assert.NotContains(t, match, "user")
	})

	t.Run("TestScoreBoundsAreInclusive", func(t *testing.T) {
		filter := models.ResultFilter{MinScore: intPtr(2), MaxScore: intPtr(8)}

		match, err := filter.MatchDocument(admin, models.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, bson.M{"$gte": 2, "$lte": 8}, match["score"])
	})

	t.Run("TestInvalidUserIdIsRejected", func(t *testing.T) {
		filter := models.ResultFilter{UserID: "not-an-object-id"}

		_, err := filter.MatchDocument(admin, models.RoleAdmin)

		assert.Error(t, err)
	})

	// name/email never appear store-side; they need the joined user document
	t.Run("TestNameAndEmailStayOutOfMatch", func(t *testing.T) {
		filter := models.ResultFilter{Name: "alice", Email: "example.com"}

		match, err := filter.MatchDocument(admin, models.RoleAdmin)

		assert.NoError(t, err)
		assert.Empty(t, match)
	})
}

func TestFilterResultsByIdentity(t *testing.T) {
	results := []models.ResultWithRefs{
		{User: models.UserSummary{Name: "Alice Player", Email: "alice@brainbattle.dev"}, Score: 5},
		{User: models.UserSummary{Name: "Bob Player", Email: "bob@brainbattle.dev"}, Score: 3},
	}

	t.Run("TestNameSubstringCaseInsensitive", func(t *testing.T) {
		filtered := models.FilterResultsByIdentity(results, "ALICE", "")

		assert.Len(t, filtered, 1)
		assert.Equal(t, "Alice Player", filtered[0].User.Name)
	})

	t.Run("TestEmailSubstring", func(t *testing.T) {
		filtered := models.FilterResultsByIdentity(results, "", "bob@")

		assert.Len(t, filtered, 1)
		assert.Equal(t, 3, filtered[0].Score)
	})

	t.Run("TestEmptyFiltersKeepEverything", func(t *testing.T) {
		filtered := models.FilterResultsByIdentity(results, "", "")

		assert.Len(t, filtered, 2)
	})

	t.Run("TestNoMatchReturnsEmptySliceNotNil", func(t *testing.T) {
		filtered := models.FilterResultsByIdentity(results, "charlie", "")

		assert.NotNil(t, filtered)
		assert.Len(t, filtered, 0)
	})
}

// TestLeaderboardOrderingContract pins the ranking rule the leaderboard
// pipeline sorts by: score descending, ties broken by earlier submission.
func TestLeaderboardOrderingContract(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	t3 := t1.Add(2 * time.Minute)

	byRank := func(a, b models.ResultWithRefs) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.SubmittedAt.Before(b.SubmittedAt)
	}

	first := models.ResultWithRefs{Score: 5, SubmittedAt: t1}
	second := models.ResultWithRefs{Score: 3, SubmittedAt: t2}
	third := models.ResultWithRefs{Score: 5, SubmittedAt: t3}

	t.Run("TestHigherScoreRanksFirst", func(t *testing.T) {
		assert.True(t, byRank(first, second))
		assert.False(t, byRank(second, first))
	})

	// scores 5(t1) and 5(t3): the earlier submission wins the tie
	t.Run("TestTieBrokenByEarlierSubmission", func(t *testing.T) {
		assert.True(t, byRank(first, third))
		assert.False(t, byRank(third, first))
	})

	t.Run("TestScenarioOrdering", func(t *testing.T) {
		// two users submit 5 and 3 at t1<t2, a third submits 5 at t3
		assert.True(t, byRank(first, third))
		assert.True(t, byRank(third, second))
	})
}
