package http

import (
	"net/http"

	"github.com/Lexv0lk/storefront/internal/pkg/jwt"
	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/storefront/application"
	"github.com/Lexv0lk/storefront/internal/storefront/domain"
	"github.com/Lexv0lk/storefront/internal/storefront/infrastructure/backend"
	"github.com/gin-gonic/gin"
)

type searchRecipientBody struct {
	Query string `json:"query"`
}

type setModeBody struct {
	Mode domain.GiftMode `json:"mode" binding:"required"`
}

type setAmountBody struct {
	Amount string `json:"amount"`
}

type selectItemBody struct {
	ChestItemID string `json:"chestItemId" binding:"required"`
}

type GiftHandler struct {
	sessions *application.SessionRegistry
	pages    *application.GiftPageCase
	logger   logging.Logger
}

func NewGiftHandler(sessions *application.SessionRegistry, pages *application.GiftPageCase, logger logging.Logger) *GiftHandler {
	return &GiftHandler{
		sessions: sessions,
		pages:    pages,
		logger:   logger,
	}
}

func (h *GiftHandler) Register(group gin.IRoutes) {
	group.GET("/gift", h.GetPage)
	group.POST("/gift/recipient", h.SearchRecipient)
	group.DELETE("/gift/recipient", h.ClearRecipient)
	group.PUT("/gift/mode", h.SetMode)
	group.PUT("/gift/amount", h.SetAmount)
	group.GET("/gift/items", h.LoadItems)
	group.PUT("/gift/item", h.SelectItem)
	group.DELETE("/gift/item", h.ClearItem)
	group.POST("/gift/submit", h.Submit)
}

func (h *GiftHandler) GetPage(c *gin.Context) {
	session := h.session(c)
	websiteID, _ := backend.WebsiteIDFromContext(c.Request.Context())

	page, err := h.pages.LoadPage(c.Request.Context(), session, websiteID)
	if err != nil {
		handleWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *GiftHandler) SearchRecipient(c *gin.Context) {
	var body searchRecipientBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	session := h.identified(c)
	if _, err := session.Workflow.SearchRecipient(c.Request.Context(), body.Query); err != nil {
		handleWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Workflow.State())
}

func (h *GiftHandler) ClearRecipient(c *gin.Context) {
	session := h.session(c)
	session.Workflow.ClearRecipient()

	c.JSON(http.StatusOK, session.Workflow.State())
}

func (h *GiftHandler) SetMode(c *gin.Context) {
	var body setModeBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	session := h.identified(c)
	if err := session.Workflow.SetMode(c.Request.Context(), body.Mode); err != nil {
		handleWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Workflow.State())
}

func (h *GiftHandler) SetAmount(c *gin.Context) {
	var body setAmountBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	session := h.session(c)
	session.Workflow.SetAmount(body.Amount)

	c.JSON(http.StatusOK, session.Workflow.State())
}

func (h *GiftHandler) LoadItems(c *gin.Context) {
	session := h.identified(c)

	items, err := session.Workflow.LoadInventory(c.Request.Context())
	if err != nil {
		handleWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *GiftHandler) SelectItem(c *gin.Context) {
	var body selectItemBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	session := h.session(c)
	if _, err := session.Workflow.SelectItem(body.ChestItemID); err != nil {
		handleWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, session.Workflow.State())
}

func (h *GiftHandler) ClearItem(c *gin.Context) {
	session := h.session(c)
	session.Workflow.ClearItem()

	c.JSON(http.StatusOK, session.Workflow.State())
}

func (h *GiftHandler) Submit(c *gin.Context) {
	session := h.identified(c)

	result, err := session.Workflow.Submit(c.Request.Context())
	if err != nil {
		handleWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "gift": session.Workflow.State()})
}

func (h *GiftHandler) session(c *gin.Context) *application.GiftSession {
	token := c.GetString(jwt.TokenContextKey)

	claims, _ := c.Get(jwt.ClaimsContextKey)
	parsed, _ := claims.(*jwt.Claims)

	return h.sessions.Session(token, parsed.Expiry())
}

// identified returns the session after making sure its user is known. A failed lookup
// is left to the workflow, which reports it as not authenticated where it matters.
func (h *GiftHandler) identified(c *gin.Context) *application.GiftSession {
	session := h.session(c)

	if err := session.Identity.Ensure(c.Request.Context()); err != nil {
		h.logger.Debug("current user unavailable", "error", err.Error())
	}

	return session
}
