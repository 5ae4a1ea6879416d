package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerRecord snapshot of one answered question. Question text and correct
// answer are captured at submission time so the result stays readable after
// the quiz is edited.
type AnswerRecord struct {
	Question string `bson:"question" json:"question"`
	Selected string `bson:"selected" json:"selected"`
	Correct  string `bson:"correct" json:"correct"`
}

// Result ผลสอบ (immutable once written; removed only by quiz cascade delete)
type Result struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Quiz        primitive.ObjectID `bson:"quiz" json:"quiz"`
	Answers     []AnswerRecord     `bson:"answers" json:"answers"`
	Score       int                `bson:"score" json:"score"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// QuizSummary is the joined quiz view embedded in result listings
type QuizSummary struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Questions []Question         `bson:"questions" json:"questions"`
	QuizCode  string             `bson:"quizCode" json:"quizCode"`
}

// ResultWithRefs is a result with user and quiz expanded for dashboards
type ResultWithRefs struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        UserSummary        `bson:"user" json:"user"`
	Quiz        QuizSummary        `bson:"quiz" json:"quiz"`
	Answers     []AnswerRecord     `bson:"answers" json:"answers"`
	Score       int                `bson:"score" json:"score"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// SubmitRequest payload for POST /quizzes/:id/submit
type SubmitRequest struct {
	Answers []AnswerRecord `json:"answers" validate:"required,min=1"`
}

// SubmitResponse reply for a graded submission
type SubmitResponse struct {
	Message        string `json:"message"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	ResultID       string `json:"resultId"`
}

// ResultFilter recognized query options for GET /quizzes/results
type ResultFilter struct {
	QuizID   string `query:"quizId"`
	UserID   string `query:"userId"`
	MinScore *int   `query:"minScore"`
	MaxScore *int   `query:"maxScore"`
	Name     string `query:"name"`
	Email    string `query:"email"`
}

// MatchDocument builds the store-side half of the results filter. Non-admin
// callers are always pinned to their own results, whatever userId the filter
// carries. name/email are deliberately absent here; they are applied after
// the join, see FilterResultsByIdentity.
func (f *ResultFilter) MatchDocument(callerID primitive.ObjectID, callerRole string) (bson.M, error) {
	match := bson.M{}

	if callerRole != RoleAdmin {
		match["user"] = callerID
	} else if f.UserID != "" {
		uid, err := primitive.ObjectIDFromHex(f.UserID)
		if err != nil {
			return nil, NewValidationError("Invalid userId filter")
		}
		match["user"] = uid
	}

	if f.QuizID != "" {
		qid, err := primitive.ObjectIDFromHex(f.QuizID)
		if err != nil {
			return nil, NewValidationError("Invalid quizId filter")
		}
		match["quiz"] = qid
	}

	score := bson.M{}
	if f.MinScore != nil {
		score["$gte"] = *f.MinScore
	}
	if f.MaxScore != nil {
		score["$lte"] = *f.MaxScore
	}
	if len(score) > 0 {
		match["score"] = score
	}

	return match, nil
}

// GradeAnswers scores a submission against the stored answer key. Matching is
// exact, case-sensitive string equality. The returned records carry the
// server-side correct answer, overwriting the client-supplied one; answers
// whose question text is unknown to the quiz get an empty correct answer and
// can never score.
func GradeAnswers(key map[string]string, answers []AnswerRecord) ([]AnswerRecord, int) {
	graded := make([]AnswerRecord, 0, len(answers))
	score := 0

	for _, ans := range answers {
		record := ans
		if correct, ok := key[ans.Question]; ok {
			record.Correct = correct
		} else {
			record.Correct = ""
		}
		if record.Correct != "" && record.Selected == record.Correct {
			score++
		}
		graded = append(graded, record)
	}

	return graded, score
}

// FilterResultsByIdentity keeps results whose joined user name/email contain
// the given substrings, case-insensitively. This is the in-process half of
// the results filter: name and email live on the joined user document, so
// they cannot go into the store-side match. Empty filters keep everything.
func FilterResultsByIdentity(results []ResultWithRefs, name, email string) []ResultWithRefs {
	if name == "" && email == "" {
		return results
	}

	name = strings.ToLower(name)
	email = strings.ToLower(email)

	filtered := []ResultWithRefs{}
	for _, r := range results {
		if name != "" && !strings.Contains(strings.ToLower(r.User.Name), name) {
			continue
		}
		if email != "" && !strings.Contains(strings.ToLower(r.User.Email), email) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
