package controllers

import (
	"Backend-BrainBattle/src/models"
	"Backend-BrainBattle/src/services/results"
	"Backend-BrainBattle/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz godoc
// @Summary      Submit answers for a quiz
// @Description  Grades the submission server-side against the stored answer key and saves a result
// @Tags         results
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string               true  "Quiz id or join code"
// @Param        body body  models.SubmitRequest true  "Answers"
// @Success      200  {object}  models.SubmitResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quizzes/{id}/submit [post]
func SubmitQuiz(c *fiber.Ctx) error {
	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	userID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	resp, err := results.SubmitQuiz(c.Params("id"), userID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(resp)
}

// GetResults godoc
// @Summary      List results
// @Description  Admins see everything (optionally filtered); everyone else only their own results
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        quizId    query  string  false  "Filter by quiz"
// @Param        userId    query  string  false  "Filter by user (admin only)"
// @Param        minScore  query  int     false  "Inclusive lower score bound"
// @Param        maxScore  query  int     false  "Inclusive upper score bound"
// @Param        name      query  string  false  "Substring match on user name"
// @Param        email     query  string  false  "Substring match on user email"
// @Success      200  {array}   models.ResultWithRefs
// @Failure      500  {object}  models.ErrorResponse
// @Router       /quizzes/results [get]
func GetResults(c *fiber.Ctx) error {
	var filter models.ResultFilter
	if err := c.QueryParser(&filter); err != nil {
		return listError(c, fiber.StatusBadRequest, "Invalid filter: "+err.Error())
	}

	caller, err := callerID(c)
	if err != nil {
		return listError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}
	role, _ := c.Locals("role").(string)

	list, err := results.GetResults(caller, role, &filter)
	if err != nil {
		return listError(c, statusFor(err), err.Error())
	}

	return c.JSON(list)
}

// GetLeaderboard godoc
// @Summary      Leaderboard for a quiz
// @Description  Top 10 results by score, ties broken by earlier submission
// @Tags         results
// @Produce      json
// @Security     BearerAuth
// @Param        quizId  path  string  true  "Quiz id"
// @Success      200  {array}   models.ResultWithRefs
// @Failure      400  {object}  models.ErrorResponse
// @Router       /quizzes/leaderboard/{quizId} [get]
func GetLeaderboard(c *fiber.Ctx) error {
	list, err := results.GetLeaderboard(c.Params("quizId"), 10)
	if err != nil {
		return listError(c, statusFor(err), err.Error())
	}
	return c.JSON(list)
}

// listError keeps dashboards renderable: the reply always carries a results
// array, even on failure.
func listError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"results": []models.ResultWithRefs{},
	})
}

func statusFor(err error) int {
	if svcErr, ok := err.(*models.ServiceError); ok {
		switch svcErr.Kind {
		case models.ErrValidation:
			return fiber.StatusBadRequest
		case models.ErrForbidden:
			return fiber.StatusForbidden
		case models.ErrNotFound:
			return fiber.StatusNotFound
		}
	}
	return fiber.StatusInternalServerError
}
