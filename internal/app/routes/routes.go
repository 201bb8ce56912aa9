package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/warit/schoolregis/internal/app/controllers"
	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	curriculumController *controllers.CurriculumController,
	registrationController *controllers.RegistrationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.PUT("/auth/password", authController.ChangePassword)

		// Subject catalog is readable by every authenticated user
		subjects := authenticated.Group("/subjects")
		{
			subjects.GET("", subjectController.GetSubjects)
			subjects.GET("/instructors", subjectController.GetInstructors)
			subjects.GET("/:subjectId", subjectController.GetSubject)
			subjects.GET("/:subjectId/stats", subjectController.GetSubjectStats)

			subjectsAdmin := subjects.Group("")
			subjectsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				subjectsAdmin.POST("", subjectController.CreateSubject)
				subjectsAdmin.PUT("/:subjectId", subjectController.UpdateSubject)
				subjectsAdmin.DELETE("/:subjectId", subjectController.DeleteSubject)
			}
		}

		// Curriculum structure is readable by every authenticated user
		curricula := authenticated.Group("/curricula")
		{
			curricula.GET("", curriculumController.GetCurricula)
			curricula.GET("/departments", curriculumController.GetDepartments)
			curricula.GET("/:curriculumId", curriculumController.GetStructure)
			curricula.GET("/:curriculumId/semesters", curriculumController.GetSemesterCounts)

			curriculaAdmin := curricula.Group("")
			curriculaAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				curriculaAdmin.POST("", curriculumController.CreateStructure)
				curriculaAdmin.PUT("/:curriculumId/:subjectId/:semester", curriculumController.UpdateStructure)
				curriculaAdmin.DELETE("/:curriculumId/:subjectId/:semester", curriculumController.DeleteStructure)
			}
		}

		// Student records and grading are admin territory, except that a
		// student may read their own record, registrations and transcript
		students := authenticated.Group("/students")
		{
			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdmin.GET("", studentController.GetStudents)
				studentsAdmin.GET("/schools", studentController.GetSchools)
				studentsAdmin.POST("", studentController.CreateStudent)
				studentsAdmin.PUT("/:studentId", studentController.UpdateStudent)
				studentsAdmin.DELETE("/:studentId", studentController.DeleteStudent)
			}

			studentsSelf := students.Group("")
			studentsSelf.Use(authMiddleware.StudentSelfOrAdmin("studentId"))
			{
				studentsSelf.GET("/:studentId", studentController.GetStudent)
				studentsSelf.GET("/:studentId/registrations", registrationController.GetStudentRegistrations)
				studentsSelf.GET("/:studentId/transcript", registrationController.GetTranscript)
			}
		}

		// Self-service registration for the authenticated student
		registrations := authenticated.Group("/registrations")
		registrations.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			registrations.GET("", registrationController.GetMyRegistrations)
			registrations.GET("/available", registrationController.GetAvailableSubjects)
			registrations.POST("", registrationController.Register)
			registrations.DELETE("/:subjectId", registrationController.Unregister)
		}

		// Grading is open to admins and teachers
		grades := authenticated.Group("/grades")
		grades.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleTeacher))
		{
			grades.PUT("", registrationController.SetGrade)
			grades.PUT("/subjects/:subjectId", registrationController.GradeSubject)
			grades.GET("/pending", registrationController.GetUngraded)
			grades.DELETE("/:studentId/:subjectId", registrationController.DeleteGrade)
		}
	}
}
