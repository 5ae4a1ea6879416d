package results

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// joinedResultsPipeline matches results and expands user and quiz the way the
// dashboards expect. Results whose user or quiz was deleted keep an empty
// summary rather than being dropped.
func joinedResultsPipeline(match bson.M, sort bson.D, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},

		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDoc"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "quizzes"},
			{Key: "localField", Value: "quiz"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "quizDoc"},
		}}},

		{{Key: "$set", Value: bson.D{
			{Key: "user", Value: bson.D{{Key: "$first", Value: "$userDoc"}}},
			{Key: "quiz", Value: bson.D{{Key: "$first", Value: "$quizDoc"}}},
		}}},
		{{Key: "$unset", Value: bson.A{"userDoc", "quizDoc"}}},

		{{Key: "$sort", Value: sort}},
	}

	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	return pipeline
}
