package controller

import (
	"errors"
	"net/http"

	"heart-haven/web/service"

	"github.com/gin-gonic/gin"
)

// HeartsForm is an admin-initiated balance adjustment. Op "add" grants,
// "remove" deducts (clamped at zero by the service).
type HeartsForm struct {
	Op     string `json:"op" form:"op"`
	Amount int    `json:"amount" form:"amount"`
	Reason string `json:"reason" form:"reason"`
}

// StudentController exposes the admin endpoints for student management.
type StudentController struct {
	userService   *service.UserService
	heartsService *service.HeartsService
	importService *service.ImportService
}

func NewStudentController(g *gin.RouterGroup, userService *service.UserService, heartsService *service.HeartsService, importService *service.ImportService) *StudentController {
	a := &StudentController{
		userService:   userService,
		heartsService: heartsService,
		importService: importService,
	}
	a.initRouter(g)
	return a
}

func (a *StudentController) initRouter(g *gin.RouterGroup) {
	g.GET("/students", a.list)
	g.GET("/students/:id", a.get)
	g.POST("/students/:id/hearts", a.adjustHearts)
	g.POST("/students/import", a.importStudents)
}

func (a *StudentController) list(c *gin.Context) {
	students, err := a.userService.AllStudents()
	jsonObj(c, students, err)
}

func (a *StudentController) get(c *gin.Context) {
	student, err := a.userService.GetStudent(c.Param("id"))
	if errors.Is(err, service.ErrStudentNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, err.Error())
		return
	}
	jsonObj(c, student, err)
}

// adjustHearts grants or deducts hearts. The amount must be positive; the
// direction comes from the op field, mirroring the admin dialog.
func (a *StudentController) adjustHearts(c *gin.Context) {
	var form HeartsForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid request data")
		return
	}
	if form.Amount <= 0 {
		jsonMsg(c, "adjust hearts", service.ErrInvalidAmount)
		return
	}
	if form.Reason == "" {
		pureJsonMsg(c, http.StatusOK, false, "a reason is required")
		return
	}

	delta := form.Amount
	if form.Op == "remove" {
		delta = -delta
	} else if form.Op != "add" {
		pureJsonMsg(c, http.StatusOK, false, "op must be add or remove")
		return
	}

	student, err := a.heartsService.Adjust(c.Param("id"), delta, form.Reason)
	if errors.Is(err, service.ErrStudentNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, err.Error())
		return
	}
	jsonMsgObj(c, "hearts updated", student, err)
}

// importStudents accepts already-parsed student records and reports the
// fate of every candidate.
func (a *StudentController) importStudents(c *gin.Context) {
	var records []service.StudentRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid import data")
		return
	}

	result, err := a.importService.ImportStudents(records)
	jsonObj(c, result, err)
}
