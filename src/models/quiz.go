package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Question คำถามแบบปรนัย embedded in a quiz, not addressable on its own
type Question struct {
	Question         string   `bson:"question" json:"question" validate:"required"`
	Options          []string `bson:"options" json:"options"`
	Answer           string   `bson:"answer" json:"answer"`
	TimeLimitSeconds int      `bson:"timeLimitSeconds,omitempty" json:"timeLimitSeconds,omitempty" validate:"omitempty,gt=0"`
}

// Quiz ข้อสอบ
type Quiz struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Questions        []Question         `bson:"questions" json:"questions"`
	QuizCode         string             `bson:"quizCode" json:"quizCode"` // 6-digit join code, unique, immutable
	CreatedBy        primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	TimeLimitMinutes int                `bson:"timeLimitMinutes,omitempty" json:"timeLimitMinutes,omitempty"`
}

// QuizWithOwner is a quiz with createdBy expanded to {name, email} for listings
type QuizWithOwner struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Questions        []Question         `bson:"questions" json:"questions"`
	QuizCode         string             `bson:"quizCode" json:"quizCode"`
	CreatedBy        UserSummary        `bson:"createdBy" json:"createdBy"`
	TimeLimitMinutes int                `bson:"timeLimitMinutes,omitempty" json:"timeLimitMinutes,omitempty"`
}

// CreateQuizRequest payload for POST /quizzes
type CreateQuizRequest struct {
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description"`
	Questions        []Question `json:"questions" validate:"omitempty,dive"`
	TimeLimitMinutes int        `json:"timeLimitMinutes" validate:"omitempty,gt=0"`
}

// UpdateQuizRequest partial update for PUT /quizzes/:id. Only non-nil fields are
// applied; quizCode and createdBy are immutable and have no place here.
type UpdateQuizRequest struct {
	Title            *string     `json:"title,omitempty"`
	Description      *string     `json:"description,omitempty"`
	Questions        *[]Question `json:"questions,omitempty"`
	TimeLimitMinutes *int        `json:"timeLimitMinutes,omitempty"`
}

// ToUpdateDocument builds the $set document from the fields present in the patch.
func (r *UpdateQuizRequest) ToUpdateDocument() bson.M {
	updates := bson.M{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Questions != nil {
		updates["questions"] = *r.Questions
	}
	if r.TimeLimitMinutes != nil {
		updates["timeLimitMinutes"] = *r.TimeLimitMinutes
	}
	return updates
}

// AnswerKey maps question text to the stored correct answer. Grading uses this
// instead of trusting whatever "correct" value the client sent.
func (q *Quiz) AnswerKey() map[string]string {
	key := make(map[string]string, len(q.Questions))
	for _, question := range q.Questions {
		key[question.Question] = question.Answer
	}
	return key
}
