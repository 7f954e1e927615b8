package main

import (
	"school-leave/biz/adaptor/controller"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", controller.Ping)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controller.Login)
			auth.GET("/me", controller.GetMe)
		}

		classes := api.Group("/classes")
		{
			classes.GET("", controller.ListClasses)
			classes.POST("", controller.CreateClass)
			classes.DELETE("/:id", controller.DeleteClass)
			classes.PUT("/:id/teacher", controller.AssignTeacher)
			classes.POST("/:id/students", controller.AddStudent)
			classes.DELETE("/:id/students/:studentId", controller.RemoveStudent)
		}

		students := api.Group("/students")
		{
			students.GET("", controller.ListStudents)
			students.POST("", controller.CreateStudent)
			students.DELETE("/:id", controller.DeleteStudent)
		}

		users := api.Group("/users")
		{
			users.GET("/teachers", controller.ListTeachers)
			users.POST("/teachers", controller.CreateTeacher)
			users.DELETE("/teachers/:id", controller.DeleteTeacher)
		}

		messages := api.Group("/messages")
		{
			messages.GET("", controller.ListMessages)
			messages.POST("", controller.CreateMessage)
			messages.DELETE("/:id", controller.DeleteMessage)
		}
	}
}
