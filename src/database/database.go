package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "BrainBattleDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error
)

// ConnectMongoDB connects to MongoDB exactly once.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
		EnsureIndexes()
	})

	return connectErr
}

// EnsureIndexes creates the indexes the application relies on.
// quizCode uniqueness is enforced here, not re-checked on every insert.
func EnsureIndexes() {
	ctx := context.TODO()

	_, err := GetCollection(DBName, "quizzes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "quizCode", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("⚠️ Failed to create quizCode index:", err)
	}

	_, err = GetCollection(DBName, "users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("⚠️ Failed to create email index:", err)
	}

	// results are read by quiz for leaderboards
	_, err = GetCollection(DBName, "results").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "quiz", Value: 1}, {Key: "score", Value: -1}, {Key: "submittedAt", Value: 1}},
	})
	if err != nil {
		log.Println("⚠️ Failed to create result index:", err)
	}
}

// GetCollection returns a collection from MongoDB.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
