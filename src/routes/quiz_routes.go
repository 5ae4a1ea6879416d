package routes

import (
	"Backend-BrainBattle/src/controllers"
	"Backend-BrainBattle/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// quizRoutes กำหนดเส้นทางสำหรับ Quiz API
// /results and /leaderboard must be registered before /:id so the param
// route doesn't swallow them.
func quizRoutes(app *fiber.App) {
	quizRoutes := app.Group("/quizzes")

	quizRoutes.Post("/", middleware.AuthJWT, middleware.AdminOnly, controllers.CreateQuiz)
	quizRoutes.Get("/", controllers.GetAllQuizzes)

	quizRoutes.Get("/results", middleware.AuthJWT, controllers.GetResults)
	quizRoutes.Get("/leaderboard/:quizId", middleware.AuthJWT, controllers.GetLeaderboard)

	quizRoutes.Get("/:id", controllers.GetQuizByID)
	quizRoutes.Post("/:id/submit", middleware.AuthJWT, controllers.SubmitQuiz)
	quizRoutes.Put("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.UpdateQuiz)
	quizRoutes.Delete("/:id", middleware.AuthJWT, middleware.AdminOnly, controllers.DeleteQuiz)
}
