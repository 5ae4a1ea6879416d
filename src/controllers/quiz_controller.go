package controllers

import (
	"Backend-BrainBattle/src/models"
	"Backend-BrainBattle/src/services/quizzes"
	"Backend-BrainBattle/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// callerID reads the authenticated user's id from the JWT claims.
func callerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	idStr, _ := c.Locals("userId").(string)
	return primitive.ObjectIDFromHex(idStr)
}

// CreateQuiz godoc
// @Summary      Create a new quiz
// @Description  Create a quiz with embedded questions; a unique 6-digit join code is generated
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body models.CreateQuizRequest true "Quiz"
// @Success      201  {object}  models.Quiz
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /quizzes [post]
func CreateQuiz(c *fiber.Ctx) error {
	var req models.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ownerID, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}

	quiz, err := quizzes.CreateQuiz(ownerID, &req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz created",
		"quiz":    quiz,
	})
}

// GetAllQuizzes godoc
// @Summary      List all quizzes
// @Description  All quizzes with createdBy expanded to name and email
// @Tags         quizzes
// @Produce      json
// @Success      200  {array}   models.QuizWithOwner
// @Failure      500  {object}  models.ErrorResponse
// @Router       /quizzes [get]
func GetAllQuizzes(c *fiber.Ctx) error {
	list, err := quizzes.GetAllQuizzes()
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(list)
}

// GetQuizByID godoc
// @Summary      Get a quiz by id or join code
// @Description  Resolves 24-hex identifiers as ids, anything else as a join code
// @Tags         quizzes
// @Produce      json
// @Param        id  path  string  true  "Quiz id or 6-digit join code"
// @Success      200  {object}  models.Quiz
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quizzes/{id} [get]
func GetQuizByID(c *fiber.Ctx) error {
	quiz, err := quizzes.GetQuizByIDOrCode(c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(quiz)
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Partial update of title, description, questions or time limit; owner only
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string                    true  "Quiz id"
// @Param        body body  models.UpdateQuizRequest  true  "Fields to update"
// @Success      200  {object}  models.Quiz
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quizzes/{id} [put]
func UpdateQuiz(c *fiber.Ctx) error {
	var patch models.UpdateQuizRequest
	if err := c.BodyParser(&patch); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	caller, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}
	role, _ := c.Locals("role").(string)

	quiz, err := quizzes.UpdateQuiz(c.Params("id"), caller, role, &patch)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Quiz updated successfully",
		"quiz":    quiz,
	})
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Deletes the quiz and cascades deletion of its results; owner only
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Quiz id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /quizzes/{id} [delete]
func DeleteQuiz(c *fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid token subject")
	}
	role, _ := c.Locals("role").(string)

	deletedResults, err := quizzes.DeleteQuiz(c.Params("id"), caller, role)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":        "Quiz and related results deleted successfully",
		"deletedResults": deletedResults,
	})
}
