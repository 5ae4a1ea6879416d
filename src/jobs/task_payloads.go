package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCleanupResults = "results:cleanup"

type CleanupResultsPayload struct {
	QuizID string `json:"quiz_id"`
}

func NewCleanupResultsTask(quizID string) (*asynq.Task, error) {
	payload, err := json.Marshal(CleanupResultsPayload{QuizID: quizID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCleanupResults, payload), nil
}
