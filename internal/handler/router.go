package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// route binds one method and path to a handler. The table keeps the whole
// API surface visible in one place.
type route struct {
	method  string
	path    string
	handler gin.HandlerFunc
}

// Router owns the API route table and the static fallback.
type Router struct {
	auth    *AuthHandler
	student *StudentHandler
	teacher *TeacherHandler
	doubt   *DoubtHandler
	admin   *AdminHandler
	static  *StaticHandler
}

// NewRouter creates a Router over the given handlers.
func NewRouter(auth *AuthHandler, student *StudentHandler, teacher *TeacherHandler, doubt *DoubtHandler, admin *AdminHandler, static *StaticHandler) *Router {
	return &Router{auth: auth, student: student, teacher: teacher, doubt: doubt, admin: admin, static: static}
}

func (r *Router) routes() []route {
	return []route{
		{http.MethodPost, "/api/auth/login", r.auth.Login},
		{http.MethodPost, "/api/auth/register", r.auth.Register},
		{http.MethodGet, "/api/student/doubts", r.student.Doubts},
		{http.MethodGet, "/api/student/stats", r.student.Stats},
		{http.MethodGet, "/api/teacher/doubts", r.teacher.Doubts},
		{http.MethodGet, "/api/teacher/stats", r.teacher.Stats},
		{http.MethodGet, "/api/doubt/details", r.doubt.Details},
		{http.MethodPost, "/api/doubt/add", r.doubt.Add},
		{http.MethodPost, "/api/doubt/respond", r.doubt.Respond},
		{http.MethodGet, "/api/admin/stats", r.admin.Stats},
		{http.MethodGet, "/api/admin/teachers", r.admin.Teachers},
		{http.MethodGet, "/api/admin/students", r.admin.Students},
		{http.MethodPost, "/api/admin/teacher/add", r.admin.AddTeacher},
		{http.MethodPost, "/api/admin/teacher/delete", r.admin.DeleteTeacher},
		{http.MethodGet, "/api/admin/export/doubts", r.admin.ExportDoubts},
	}
}

// Register attaches every route and the NoRoute fallback to the engine.
func (r *Router) Register(engine *gin.Engine) {
	for _, rt := range r.routes() {
		engine.Handle(rt.method, rt.path, rt.handler)
	}
	engine.NoRoute(r.static.NoRoute)
}
