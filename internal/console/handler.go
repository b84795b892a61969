package console

import (
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storage-equipment/internal/shell"
	"storage-equipment/internal/views"
	"storage-equipment/pkg/eventbus"
)

// Handler — консоль: на каждый запрос создаются свежие представления,
// состояние между запросами не хранится.
type Handler struct {
	equipment views.EquipmentAPI
	orders    views.OrderAPI
	basePath  string
	bus       *eventbus.Bus
	logger    *zap.Logger
	now       func() time.Time
	pages     map[string]*template.Template
}

func New(equipment views.EquipmentAPI, orders views.OrderAPI, basePath string, bus *eventbus.Bus, logger *zap.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		equipment: equipment,
		orders:    orders,
		basePath:  shell.New(basePath).BasePath,
		bus:       bus,
		logger:    logger,
		now:       time.Now,
		pages:     pages,
	}, nil
}

// Register вешает маршруты консоли на e под basePath.
func (h *Handler) Register(e *echo.Echo) {
	g := e.Group(h.basePath)
	g.GET("/", h.Index)
	if h.basePath != "" {
		g.GET("", h.Index)
	}

	g.GET("/equipment", h.EquipmentList)
	g.GET("/equipment/new", h.EquipmentNew)
	g.GET("/equipment/export.xlsx", h.EquipmentExport)
	g.POST("/equipment", h.EquipmentCreate)
	g.GET("/equipment/:id", h.EquipmentDetail)
	g.GET("/equipment/:id/edit", h.EquipmentEdit)
	g.POST("/equipment/:id", h.EquipmentUpdate)
	g.GET("/equipment/:id/delete", h.EquipmentConfirmDelete)
	g.POST("/equipment/:id/delete", h.EquipmentDelete)

	g.GET("/orders", h.OrderList)
	g.GET("/orders/new", h.OrderNew)
	g.POST("/orders", h.OrderCreate)
	g.GET("/orders/:id", h.OrderDetail)
	g.GET("/orders/:id/edit", h.OrderEdit)
	g.POST("/orders/:id", h.OrderUpdate)
	g.GET("/orders/:id/delete", h.OrderConfirmCancel)
	g.POST("/orders/:id/delete", h.OrderCancel)
}

// redirect — history консоли: последний записанный адрес становится ответом 303.
type redirect struct {
	url string
}

func (r *redirect) Push(u string) { r.url = u }

type nav struct {
	shell    *shell.Shell
	history  *redirect
	dispatch views.Dispatch
}

func (h *Handler) navigate(c echo.Context) nav {
	sh := shell.New(h.basePath)
	sh.Parse(c.Request().URL.Path, c.QueryParams())
	history := &redirect{}
	return nav{shell: sh, history: history, dispatch: sh.Dispatch(history)}
}

// follow отвечает редиректом на адрес, который записала оболочка.
func (n nav) follow(c echo.Context) error {
	target := n.history.url
	if target == "" {
		target = n.shell.URL()
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// Index разбирает путь и старые параметры (?equipmentId=, ?orderID=) и
// перенаправляет на канонический адрес.
func (h *Handler) Index(c echo.Context) error {
	n := h.navigate(c)
	return c.Redirect(http.StatusFound, n.shell.URL())
}
