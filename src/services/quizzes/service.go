package quizzes

import (
	"context"
	"log"
	"time"

	"Backend-BrainBattle/src/database"
	"Backend-BrainBattle/src/jobs"
	"Backend-BrainBattle/src/models"
	"Backend-BrainBattle/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var (
	quizCollection   *mongo.Collection
	resultCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	quizCollection = database.GetCollection(database.DBName, "quizzes")
	resultCollection = database.GetCollection(database.DBName, "results")
	if quizCollection == nil || resultCollection == nil {
		log.Fatal("Failed to get the quiz collections")
	}
}

// joinCodeAttempts bounds the generate-and-check loop; the unique index on
// quizCode catches the race a check cannot.
const joinCodeAttempts = 5

// CreateQuiz สร้างข้อสอบใหม่ owned by ownerID, with a freshly generated join code.
func CreateQuiz(ownerID primitive.ObjectID, req *models.CreateQuizRequest) (*models.Quiz, error) {
	if err := validate.Struct(req); err != nil {
		return nil, models.NewValidationError("Title is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	code, err := reserveJoinCode(ctx)
	if err != nil {
		return nil, err
	}

	questions := req.Questions
	if questions == nil {
		questions = []models.Question{}
	}

	quiz := &models.Quiz{
		ID:               primitive.NewObjectID(),
		Title:            req.Title,
		Description:      req.Description,
		Questions:        questions,
		QuizCode:         code,
		CreatedBy:        ownerID,
		TimeLimitMinutes: req.TimeLimitMinutes,
	}

	if _, err := quizCollection.InsertOne(ctx, quiz); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewPersistenceError("Join code collision, please retry", err)
		}
		return nil, models.NewPersistenceError("Failed to create quiz", err)
	}

	log.Printf("✅ Quiz created: %s (code %s)", quiz.ID.Hex(), quiz.QuizCode)
	return quiz, nil
}

// reserveJoinCode generates codes until one is unused, up to joinCodeAttempts.
func reserveJoinCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < joinCodeAttempts; attempt++ {
		code := utils.GenerateJoinCode()
		if code == "" {
			continue
		}

		count, err := quizCollection.CountDocuments(ctx, bson.M{"quizCode": code})
		if err != nil {
			return "", models.NewPersistenceError("Failed to check join code", err)
		}
		if count == 0 {
			return code, nil
		}

		log.Println("⚠️ Join code collision, regenerating:", code)
	}
	return "", models.NewPersistenceError("Could not allocate a unique join code", nil)
}

// GetAllQuizzes ดึงข้อสอบทั้งหมด with createdBy expanded to {name, email}.
func GetAllQuizzes() ([]models.QuizWithOwner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "createdBy"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$set", Value: bson.D{
			{Key: "createdBy", Value: bson.D{{Key: "$first", Value: "$owner"}}},
		}}},
		{{Key: "$unset", Value: "owner"}},
	}

	cursor, err := quizCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, models.NewPersistenceError("Failed to fetch quizzes", err)
	}
	defer cursor.Close(ctx)

	quizzes := []models.QuizWithOwner{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		return nil, models.NewPersistenceError("Failed to decode quizzes", err)
	}

	return quizzes, nil
}

// GetQuizByIDOrCode resolves an identifier first as an ObjectID, then as a
// join code. 24-hex strings that match no quiz still fall through to the code
// lookup before giving up.
func GetQuizByIDOrCode(identifier string) (*models.Quiz, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var quiz models.Quiz

	if objID, err := primitive.ObjectIDFromHex(identifier); err == nil {
		err := quizCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&quiz)
		if err == nil {
			return &quiz, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, models.NewPersistenceError("Failed to fetch quiz", err)
		}
	}

	err := quizCollection.FindOne(ctx, bson.M{"quizCode": identifier}).Decode(&quiz)
	if err == mongo.ErrNoDocuments {
		return nil, models.NewNotFoundError("Quiz not found")
	}
	if err != nil {
		return nil, models.NewPersistenceError("Failed to fetch quiz", err)
	}

	return &quiz, nil
}

// UpdateQuiz applies a partial update. Only the owning admin may edit;
// quizCode and createdBy are never touched.
func UpdateQuiz(id string, callerID primitive.ObjectID, callerRole string, patch *models.UpdateQuizRequest) (*models.Quiz, error) {
	if callerRole != models.RoleAdmin {
		return nil, models.NewForbiddenError("Forbidden")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("Quiz not found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Quiz
	err = quizCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, models.NewNotFoundError("Quiz not found")
	}
	if err != nil {
		return nil, models.NewPersistenceError("Failed to fetch quiz", err)
	}

	if existing.CreatedBy != callerID {
		return nil, models.NewForbiddenError("Only the quiz owner can update it")
	}

	updates := patch.ToUpdateDocument()
	if len(updates) == 0 {
		return &existing, nil
	}

	var updated models.Quiz
	err = quizCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, models.NewPersistenceError("Failed to update quiz", err)
	}

	return &updated, nil
}

// DeleteQuiz removes a quiz and cascades the deletion of its results.
// The cascade is best-effort sequential: the quiz goes first, then the
// results, via the cleanup worker when Asynq is configured or inline
// otherwise. Returns the number of results the cascade covers.
func DeleteQuiz(id string, callerID primitive.ObjectID, callerRole string) (int64, error) {
	if callerRole != models.RoleAdmin {
		return 0, models.NewForbiddenError("Forbidden")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, models.NewNotFoundError("Quiz not found")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var existing models.Quiz
	err = quizCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return 0, models.NewNotFoundError("Quiz not found")
	}
	if err != nil {
		return 0, models.NewPersistenceError("Failed to fetch quiz", err)
	}

	if existing.CreatedBy != callerID {
		return 0, models.NewForbiddenError("Only the quiz owner can delete it")
	}

	resultCount, err := resultCollection.CountDocuments(ctx, bson.M{"quiz": objID})
	if err != nil {
		resultCount = 0
	}

	if _, err := quizCollection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return 0, models.NewPersistenceError("Failed to delete quiz", err)
	}

	cascadeResults(ctx, objID)

	log.Printf("✅ Quiz deleted: %s (%d results to clean up)", objID.Hex(), resultCount)
	return resultCount, nil
}

func cascadeResults(ctx context.Context, quizID primitive.ObjectID) {
	if database.AsynqClient != nil {
		task, err := jobs.NewCleanupResultsTask(quizID.Hex())
		if err == nil {
			if _, err := database.AsynqClient.Enqueue(task); err == nil {
				return
			}
			log.Println("⚠️ Failed to enqueue result cleanup, deleting inline:", quizID.Hex())
		}
	}

	if _, err := resultCollection.DeleteMany(ctx, bson.M{"quiz": quizID}); err != nil {
		// orphaned results are the accepted failure mode here
		log.Println("⚠️ Failed to delete results for quiz:", err)
	}
}
