package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/classroom-api/internal/config"
	"github.com/yourusername/classroom-api/internal/domain/entity"
	"github.com/yourusername/classroom-api/internal/handler"
	"github.com/yourusername/classroom-api/internal/middleware"
	postgresRepo "github.com/yourusername/classroom-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/classroom-api/internal/repository/redis"
	"github.com/yourusername/classroom-api/internal/service"
	"github.com/yourusername/classroom-api/pkg/auth"
	"github.com/yourusername/classroom-api/pkg/database"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Main] Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("[Main] Failed to connect to PostgreSQL: %v", err)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("[Main] Failed to apply migrations: %v", err)
	}

	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("[Main] Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Fatalf("[Main] Failed to initialize JWT service: %v", err)
	}

	// Repositories.
	profileRepo := postgresRepo.NewProfileRepo(db)
	studentRepo := postgresRepo.NewStudentRepo(db)
	classroomRepo := postgresRepo.NewClassroomRepo(db)
	subjectRepo := postgresRepo.NewSubjectRepo(db)
	activityRepo := postgresRepo.NewActivityRepo(db)
	submissionRepo := postgresRepo.NewSubmissionRepo(db)
	quizRepo := postgresRepo.NewQuizRepo(db)
	questionRepo := postgresRepo.NewQuestionRepo(db)
	answerRepo := postgresRepo.NewAnswerRepo(db)
	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Fatalf("[Main] Failed to initialize cache repository: %v", err)
	}

	// Outgoing mail is optional; without an API key grading still works,
	// notifications just land in the log.
	var emailSender service.EmailSender
	if cfg.Email.APIKey != "" {
		emailSender = service.NewResendEmailSender(cfg.Email.APIKey, cfg.Email.From)
	} else {
		log.Println("[Main] EMAIL_API_KEY not set, grade notifications disabled")
		emailSender = service.NoopEmailSender{}
	}

	// Services.
	authService := service.NewAuthService(profileRepo, jwtService)
	userService := service.NewUserService(profileRepo, studentRepo, classroomRepo)
	classroomService := service.NewClassroomService(classroomRepo, studentRepo)
	subjectService := service.NewSubjectService(subjectRepo, classroomRepo)
	activityService := service.NewActivityService(activityRepo, submissionRepo, subjectRepo, profileRepo, emailSender)
	gradebookService := service.NewGradebookService(subjectRepo, activityRepo, submissionRepo, studentRepo)
	quizService := service.NewQuizService(quizRepo, subjectRepo)
	questionService := service.NewQuestionService(quizRepo, questionRepo, answerRepo, cacheRepo)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, jwtService)
	classroomHandler := handler.NewClassroomHandler(classroomService, subjectService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	activityHandler := handler.NewActivityHandler(activityService, gradebookService)
	quizHandler := handler.NewQuizHandler(quizService, questionService)

	authMW := middleware.NewAuthMiddleware(jwtService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		users := api.Group("/users", authMW.RequireAuth())
		{
			users.GET("/me", userHandler.Me)
			users.POST("/me/onboarding", userHandler.CompleteOnboarding)
		}

		classrooms := api.Group("/classrooms", authMW.RequireAuth(), authMW.RequireOnboarded())
		{
			classrooms.POST("", authMW.RequireRole(entity.RoleStaff, entity.RoleAdmin), classroomHandler.Create)
			classrooms.GET("", classroomHandler.List)

			one := classrooms.Group("/:classroomID", middleware.ExtractUUIDParam("classroomID", "classroomID"))
			{
				one.GET("", classroomHandler.Get)
				one.GET("/students", classroomHandler.ListStudents)
				one.GET("/subjects", classroomHandler.ListSubjects)
			}
		}

		subjects := api.Group("/subjects", authMW.RequireAuth(), authMW.RequireOnboarded())
		{
			subjects.POST("", authMW.RequireRole(entity.RoleTeacher), subjectHandler.Create)
			subjects.GET("", authMW.RequireRole(entity.RoleTeacher), subjectHandler.ListMine)

			one := subjects.Group("/:subjectID", middleware.ExtractUUIDParam("subjectID", "subjectID"))
			{
				one.GET("", subjectHandler.Get)
				one.PUT("", authMW.RequireRole(entity.RoleTeacher), subjectHandler.Rename)

				one.POST("/activities", authMW.RequireRole(entity.RoleTeacher), activityHandler.Create)
				one.GET("/activities", activityHandler.ListBySubject)

				one.POST("/quizzes", authMW.RequireRole(entity.RoleTeacher), quizHandler.Create)
				one.GET("/quizzes", quizHandler.ListBySubject)

				one.GET("/gradebook/export", authMW.RequireRole(entity.RoleTeacher), activityHandler.ExportGradebook)
			}
		}

		activities := api.Group("/activities/:activityID",
			authMW.RequireAuth(), authMW.RequireOnboarded(),
			middleware.ExtractUUIDParam("activityID", "activityID"))
		{
			activities.GET("", activityHandler.Get)
			activities.POST("/submissions", authMW.RequireRole(entity.RoleStudent), activityHandler.Submit)
			activities.GET("/submissions", authMW.RequireRole(entity.RoleTeacher), activityHandler.ListSubmissions)
		}

		submissions := api.Group("/submissions/:submissionID",
			authMW.RequireAuth(), authMW.RequireOnboarded(),
			middleware.ExtractUintParam("submissionID", "submissionID"))
		{
			submissions.PUT("/grade", authMW.RequireRole(entity.RoleTeacher), activityHandler.Grade)
		}

		quizzes := api.Group("/quizzes/:quizID",
			authMW.RequireAuth(), authMW.RequireOnboarded(),
			middleware.ExtractUUIDParam("quizID", "quizID"))
		{
			quizzes.GET("", quizHandler.Get)
			quizzes.PUT("", authMW.RequireRole(entity.RoleTeacher), quizHandler.Update)
			quizzes.GET("/questions", quizHandler.ListQuestions)
			quizzes.POST("/questions", authMW.RequireRole(entity.RoleTeacher), quizHandler.AddQuestion)
			quizzes.GET("/next-ordinal", authMW.RequireRole(entity.RoleTeacher), quizHandler.NextOrdinal)
		}

		questions := api.Group("/questions/:questionID",
			authMW.RequireAuth(), authMW.RequireOnboarded(),
			authMW.RequireRole(entity.RoleTeacher),
			middleware.ExtractUUIDParam("questionID", "questionID"))
		{
			questions.POST("/answers", quizHandler.AttachAnswers)
			questions.DELETE("", quizHandler.DeleteQuestion)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[Main] Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Main] Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Main] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[Main] Forced shutdown: %v", err)
	}
	log.Println("[Main] Server stopped.")
}
