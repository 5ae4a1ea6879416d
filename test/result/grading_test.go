package result

import (
	"testing"

	"Backend-BrainBattle/src/models"

	"github.com/stretchr/testify/assert"
)

func TestGradeAnswers(t *testing.T) {

	t.Run("TestAllCorrectScoresFullMarks", func(t *testing.T) {
		key := map[string]string{"Q1": "A", "Q2": "B", "Q3": "C"}
		answers := []models.AnswerRecord{
			{Question: "Q1", Selected: "A", Correct: "A"},
			{Question: "Q2", Selected: "B", Correct: "B"},
			{Question: "Q3", Selected: "C", Correct: "C"},
		}

		graded, score := models.GradeAnswers(key, answers)

		assert.Equal(t, len(answers), score)
		assert.Len(t, graded, len(answers))
	})

	t.Run("TestNoneCorrectScoresZero", func(t *testing.T) {
		key := map[string]string{"Q1": "A", "Q2": "B"}
		answers := []models.AnswerRecord{
			{Question: "Q1", Selected: "B", Correct: "A"},
			{Question: "Q2", Selected: "A", Correct: "B"},
		}

		_, score := models.GradeAnswers(key, answers)

		assert.Equal(t, 0, score)
	})

	// The two-question scenario: Q1 answered right, Q2 answered wrong.
	t.Run("TestPartialScore", func(t *testing.T) {
		key := map[string]string{"Q1": "A", "Q2": "B"}
		answers := []models.AnswerRecord{
			{Question: "Q1", Selected: "A", Correct: "A"},
			{Question: "Q2", Selected: "C", Correct: "B"},
		}

		graded, score := models.GradeAnswers(key, answers)

		assert.Equal(t, 1, score)
		assert.Len(t, graded, 2)
	})

	t.Run("TestScoreWithinBounds", func(t *testing.T) {
		key := map[string]string{"Q1": "A", "Q2": "B", "Q3": "C", "Q4": "D"}
		answers := []models.AnswerRecord{
			{Question: "Q1", Selected: "A"},
			{Question: "Q2", Selected: "X"},
			{Question: "Q3", Selected: "C"},
			{Question: "Q4", Selected: "Y"},
		}

		_, score := models.GradeAnswers(key, answers)

		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, len(answers))
	})

	t.Run("TestMatchingIsCaseSensitive", func(t *testing.T) {
		key := map[string]string{"Q1": "Paris"}
		answers := []models.AnswerRecord{
			{Question: "Q1", Selected: "paris"},
		}

		_, score := models.GradeAnswers(key, answers)

		assert.Equal(t, 0, score, "case or whitespace normalization must not happen")
	})
}

// TestSubmitIgnoresClientCorrectField covers the trust boundary: a client
// forging the "correct" field cannot inflate its score, because grading
// re-derives correctness from the stored answer key.
func TestSubmitIgnoresClientCorrectField(t *testing.T) {
	key := map[string]string{"Q1": "B"}

	// the client claims its own selection is the correct answer
	answers := []models.AnswerRecord{
		{Question: "Q1", Selected: "C", Correct: "C"},
	}

	graded, score := models.GradeAnswers(key, answers)

	assert.Equal(t, 0, score)
	assert.Equal(t, "B", graded[0].Correct, "persisted snapshot must carry the stored answer key")
}

// TestGradeAnswersUnknownQuestion: answers for questions the quiz does not
// contain can never score, whatever the client claims.
func TestGradeAnswersUnknownQuestion(t *testing.T) {
	key := map[string]string{"Q1": "A"}
	answers := []models.AnswerRecord{
		{Question: "Q99", Selected: "A", Correct: "A"},
	}

	graded, score := models.GradeAnswers(key, answers)

	assert.Equal(t, 0, score)
	assert.Empty(t, graded[0].Correct)
}
