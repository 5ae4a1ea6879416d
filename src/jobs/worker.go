package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-BrainBattle/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCleanupResultsTask removes every result of a deleted quiz. The quiz is
// already gone when this runs; a crash in between leaves orphaned results
// until the task is retried, which is the documented best-effort contract.
func HandleCleanupResultsTask(ctx context.Context, t *asynq.Task) error {
	var payload CleanupResultsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	quizID, err := primitive.ObjectIDFromHex(payload.QuizID)
	if err != nil {
		log.Println("⚠️ Invalid quiz id in cleanup task. Skipping:", payload.QuizID)
		return nil
	}

	res, err := database.GetCollection(database.DBName, "results").DeleteMany(ctx, bson.M{"quiz": quizID})
	if err != nil {
		log.Println("❌ Failed to delete results for quiz:", err)
		return err
	}

	log.Printf("✅ Cleaned up %d results for deleted quiz %s", res.DeletedCount, quizID.Hex())
	return nil
}

// StartWorker runs the Asynq server in the background when Redis is configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Result cleanup will run inline.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleanupResults, HandleCleanupResultsTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()

	log.Println("✅ Asynq worker started")
}
