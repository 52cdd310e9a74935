package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"triviaapp/config"
	"triviaapp/db"
	"triviaapp/handlers"
	"triviaapp/services"
	"triviaapp/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Could not load configuration:", err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Could not initialize database connection pool:", err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatal("Could not migrate database schema:", err)
	}

	questions := store.NewPostgresQuestionStore(pool)
	categories := store.NewPostgresCategoryStore(pool)

	questionHandler := handlers.NewQuestionHandler(questions, categories, cfg.QuestionsPerPage)
	categoryHandler := handlers.NewCategoryHandler(questions, categories, cfg.QuestionsPerPage)
	quizHandler := handlers.NewQuizHandler(services.NewQuizService(questions, categories))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", categoryHandler.GetCategories)
		r.Get("/categories/{id}/questions", categoryHandler.GetCategoryQuestions)

		r.Get("/questions", questionHandler.GetQuestions)
		r.Post("/questions", questionHandler.CreateQuestion)
		r.Delete("/questions/{id}", questionHandler.DeleteQuestion)
		r.Post("/questions/search", questionHandler.SearchQuestions)

		r.Post("/quizzes", quizHandler.PlayQuiz)
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Server error:", err)
	}
}
