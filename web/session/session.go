package session

import (
	"encoding/gob"

	"heart-haven/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func init() {
	gob.Register(model.Admin{})
	gob.Register(model.Student{})
}

// SetLoginUser stores the authenticated account in the session. Callers
// must also refresh it whenever the logged-in student's balance changes so
// subsequent reads observe the new value.
func SetLoginUser(c *gin.Context, user model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, user)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: maxAge,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) model.User {
	s := sessions.Default(c)
	obj := s.Get(loginUser)
	if obj == nil {
		return nil
	}
	switch u := obj.(type) {
	case model.Admin:
		return u
	case model.Student:
		return u
	}
	return nil
}

// GetLoginStudent returns the logged-in student, or nil when the session
// belongs to an admin or nobody.
func GetLoginStudent(c *gin.Context) *model.Student {
	if u := GetLoginUser(c); u != nil {
		if student, ok := u.(model.Student); ok {
			return &student
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie("heart-haven", "", -1, "/", "", false, true)
	return nil
}
