package controller

import (
	"errors"
	"net/http"

	"heart-haven/database/model"
	"heart-haven/web/service"
	"heart-haven/web/session"

	"github.com/gin-gonic/gin"
)

// StoreController exposes the reward catalog: CRUD for admins, listing and
// purchase for students.
type StoreController struct {
	storeService    *service.StoreService
	purchaseService *service.PurchaseService
}

func NewStoreController(g *gin.RouterGroup, adminGroup *gin.RouterGroup, studentGroup *gin.RouterGroup, storeService *service.StoreService, purchaseService *service.PurchaseService) *StoreController {
	a := &StoreController{
		storeService:    storeService,
		purchaseService: purchaseService,
	}

	g.GET("/store/items", a.list)
	g.GET("/store/items/:id", a.get)

	adminGroup.POST("/store/items", a.add)
	adminGroup.PUT("/store/items/:id", a.update)
	adminGroup.DELETE("/store/items/:id", a.delete)

	studentGroup.POST("/store/items/:id/purchase", a.purchase)

	return a
}

// list shows the whole catalog to admins and only available items to
// students.
func (a *StoreController) list(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil && user.UserRole() == model.RoleStudent {
		items, err := a.storeService.AvailableItems()
		jsonObj(c, items, err)
		return
	}
	items, err := a.storeService.AllItems()
	jsonObj(c, items, err)
}

func (a *StoreController) get(c *gin.Context) {
	item, err := a.storeService.GetItem(c.Param("id"))
	if errors.Is(err, service.ErrItemNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, err.Error())
		return
	}
	jsonObj(c, item, err)
}

func (a *StoreController) add(c *gin.Context) {
	var spec service.ItemSpec
	if err := c.ShouldBind(&spec); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid item data")
		return
	}
	if spec.Name == "" || spec.Description == "" {
		pureJsonMsg(c, http.StatusOK, false, "name and description are required")
		return
	}

	admin := session.GetLoginUser(c)
	id, err := a.storeService.AddItem(admin.UserId(), spec)
	jsonMsgObj(c, "item added", gin.H{"id": id}, err)
}

func (a *StoreController) update(c *gin.Context) {
	var upd service.ItemUpdate
	if err := c.ShouldBind(&upd); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid item data")
		return
	}

	admin := session.GetLoginUser(c)
	err := a.storeService.UpdateItem(admin.UserId(), c.Param("id"), upd)
	if errors.Is(err, service.ErrItemNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, err.Error())
		return
	}
	jsonMsg(c, "item updated", err)
}

func (a *StoreController) delete(c *gin.Context) {
	admin := session.GetLoginUser(c)
	err := a.storeService.DeleteItem(admin.UserId(), c.Param("id"))
	if errors.Is(err, service.ErrItemNotFound) {
		pureJsonMsg(c, http.StatusNotFound, false, err.Error())
		return
	}
	jsonMsg(c, "item removed", err)
}

// purchase debits the logged-in student and refreshes the session copy so
// the client immediately observes the new balance.
func (a *StoreController) purchase(c *gin.Context) {
	student := session.GetLoginStudent(c)
	if student == nil {
		pureJsonMsg(c, http.StatusForbidden, false, "only students can purchase items")
		return
	}

	updated, err := a.purchaseService.Purchase(student.Id, c.Param("id"))
	if err != nil {
		jsonMsg(c, "purchase", err)
		return
	}

	if err := session.SetLoginUser(c, *updated); err != nil {
		jsonMsg(c, "purchase", err)
		return
	}
	jsonMsgObj(c, "purchase successful", updated, nil)
}
