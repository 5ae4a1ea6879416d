package seeder

import (
	"context"
	"fmt"
	"log"

	"Backend-BrainBattle/src/database"
	"Backend-BrainBattle/src/models"
	"Backend-BrainBattle/src/services/quizzes"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// SeedSampleData inserts a demo admin, two participants and a sample quiz for
// local development. Emails get a uuid suffix so reseeding a database that
// already holds users never trips the unique email index. No-op when an admin
// already exists.
func SeedSampleData() error {
	ctx := context.Background()
	userCollection := database.GetCollection(database.DBName, "users")

	count, err := userCollection.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("⚠️ Admin user already exists. Skipping seed.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	suffix := uuid.NewString()[:8]

	admin := models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Demo Admin",
		Email:    fmt.Sprintf("admin-%s@brainbattle.dev", suffix),
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	players := []interface{}{
		admin,
		models.User{
			ID:       primitive.NewObjectID(),
			Name:     "Alice Player",
			Email:    fmt.Sprintf("alice-%s@brainbattle.dev", suffix),
			Password: string(hash),
			Role:     models.RoleUser,
		},
		models.User{
			ID:       primitive.NewObjectID(),
			Name:     "Bob Player",
			Email:    fmt.Sprintf("bob-%s@brainbattle.dev", suffix),
			Password: string(hash),
			Role:     models.RoleUser,
		},
	}

	if _, err := userCollection.InsertMany(ctx, players); err != nil {
		return err
	}

	quiz, err := quizzes.CreateQuiz(admin.ID, &models.CreateQuizRequest{
		Title:       "General Knowledge Warm-up",
		Description: "A short demo quiz",
		Questions: []models.Question{
			{
				Question: "What is the capital of France?",
				Options:  []string{"Paris", "Lyon", "Marseille", "Nice"},
				Answer:   "Paris",
			},
			{
				Question: "Which planet is known as the Red Planet?",
				Options:  []string{"Venus", "Mars", "Jupiter", "Saturn"},
				Answer:   "Mars",
			},
			{
				Question: "How many continents are there?",
				Options:  []string{"5", "6", "7", "8"},
				Answer:   "7",
			},
			{
				Question: "What is 9 x 7?",
				Options:  []string{"56", "63", "72", "81"},
				Answer:   "63",
			},
		},
		TimeLimitMinutes: 10,
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Seeded sample data: admin=%s quiz code=%s", admin.Email, quiz.QuizCode)
	return nil
}
