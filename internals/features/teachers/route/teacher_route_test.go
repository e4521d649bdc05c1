package route

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestTeacherRoutesRegistration(t *testing.T) {
	app := fiber.New()
	TeacherRoutes(app, nil)

	var getPaths []string
	for _, r := range app.GetRoutes() {
		if r.Method == fiber.MethodGet {
			getPaths = append(getPaths, r.Path)
		}
	}

	indexOf := func(path string) int {
		for i, p := range getPaths {
			if p == path {
				return i
			}
		}
		return -1
	}

	for _, path := range []string{
		"/api/teacher/",
		"/api/teacher/me",
		"/api/teacher/my-lessons",
		"/api/teacher/my-students",
		"/api/teacher/:id",
	} {
		if indexOf(path) == -1 {
			t.Errorf("route GET %s tidak terdaftar", path)
		}
	}

	// rute statis harus terdaftar sebelum wildcard :id supaya tidak tertelan
	idIdx := indexOf("/api/teacher/:id")
	for _, path := range []string{"/api/teacher/me", "/api/teacher/my-lessons", "/api/teacher/my-students"} {
		if idx := indexOf(path); idx > idIdx {
			t.Errorf("route %s terdaftar setelah /:id (index %d > %d)", path, idx, idIdx)
		}
	}
}
