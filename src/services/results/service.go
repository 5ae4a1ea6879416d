package results

import (
	"context"
	"log"
	"time"

	"Backend-BrainBattle/src/database"
	"Backend-BrainBattle/src/models"
	"Backend-BrainBattle/src/services/quizzes"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

var resultCollection *mongo.Collection

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	resultCollection = database.GetCollection(database.DBName, "results")
	if resultCollection == nil {
		log.Fatal("Failed to get the results collection")
	}
}

const leaderboardSize = 10

// SubmitQuiz grades a submission against the stored quiz and persists the
// result. The correct answer per question is re-derived from the quiz; the
// client-sent "correct" field is ignored. Retakes are allowed: every call
// writes an independent result.
func SubmitQuiz(identifier string, userID primitive.ObjectID, req *models.SubmitRequest) (*models.SubmitResponse, error) {
	quiz, err := quizzes.GetQuizByIDOrCode(identifier)
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(req); err != nil {
		return nil, models.NewValidationError("Answers are required")
	}

	graded, score := models.GradeAnswers(quiz.AnswerKey(), req.Answers)

	result := models.Result{
		ID:          primitive.NewObjectID(),
		User:        userID,
		Quiz:        quiz.ID,
		Answers:     graded,
		Score:       score,
		SubmittedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := resultCollection.InsertOne(ctx, result); err != nil {
		return nil, models.NewPersistenceError("Failed to save result", err)
	}

	log.Printf("✅ Result saved: user=%s quiz=%s score=%d/%d", userID.Hex(), quiz.ID.Hex(), score, len(quiz.Questions))

	return &models.SubmitResponse{
		Message:        "Result saved successfully",
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		ResultID:       result.ID.Hex(),
	}, nil
}

// GetResults returns results visible to the caller, most recent first.
// Non-admins only ever see their own results, whatever the filter says.
// quizId/userId/minScore/maxScore are applied store-side; name/email are a
// second, in-process pass because they live on the joined user document.
func GetResults(callerID primitive.ObjectID, callerRole string, filter *models.ResultFilter) ([]models.ResultWithRefs, error) {
	match, err := filter.MatchDocument(callerID, callerRole)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := joinedResultsPipeline(match, bson.D{{Key: "submittedAt", Value: -1}}, 0)

	cursor, err := resultCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, models.NewPersistenceError("Failed to fetch results", err)
	}
	defer cursor.Close(ctx)

	results := []models.ResultWithRefs{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, models.NewPersistenceError("Failed to decode results", err)
	}

	return models.FilterResultsByIdentity(results, filter.Name, filter.Email), nil
}

// GetLeaderboard returns the top results for a quiz: score descending, ties
// broken by earlier submission.
func GetLeaderboard(quizID string, limit int64) ([]models.ResultWithRefs, error) {
	qid, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return nil, models.NewValidationError("Invalid quiz id")
	}

	if limit <= 0 {
		limit = leaderboardSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := joinedResultsPipeline(
		bson.M{"quiz": qid},
		bson.D{{Key: "score", Value: -1}, {Key: "submittedAt", Value: 1}},
		limit,
	)

	cursor, err := resultCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, models.NewPersistenceError("Failed to fetch leaderboard", err)
	}
	defer cursor.Close(ctx)

	results := []models.ResultWithRefs{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, models.NewPersistenceError("Failed to decode leaderboard", err)
	}

	return results, nil
}
