package console

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/forms"
	"storage-equipment/internal/shell"
	"storage-equipment/internal/views"
	apperrors "storage-equipment/pkg/errors"
)

func (h *Handler) orderList(c echo.Context, n nav) (*views.ListView[dto.OrderDTO], error) {
	lv := views.NewListView(views.OrderResource(h.orders), n.dispatch, h.bus)
	return lv, lv.Load(c.Request().Context())
}

func (h *Handler) renderOrderList(c echo.Context, code int, lv *views.ListView[dto.OrderDTO]) error {
	vm := listVM{
		Heading:    "Equipment Orders",
		Subheading: "Track equipment requests from hospital departments",
		AddLabel:   "Create New Order",
		Path:       h.basePath + "/orders",
		State:      string(lv.State()),
		Error:      lv.Error(),
		EmptyTitle: "No orders found",
		EmptyHint:  "Start by creating your first order",
	}
	for _, o := range lv.Items() {
		requested := "Requested by " + o.RequestedBy
		if o.RequestorDepartment != "" {
			requested += " (" + o.RequestorDepartment + ")"
		}
		vm.Rows = append(vm.Rows, rowVM{
			ID:        o.ID,
			Title:     "Order #" + shortID(o.ID),
			Subtitle:  requested,
			Trailing:  fmt.Sprintf("%d items • Total: $%s", len(o.Items), o.Total().Display()),
			Status:    statusLabel(o.Status),
			CanEdit:   lv.CanEdit(o),
			CanDelete: lv.CanDelete(o),
		})
	}
	return h.render(c, code, "list", page{Title: "Orders", Section: shell.SectionOrders, Content: vm})
}

func (h *Handler) OrderList(c echo.Context) error {
	n := h.navigate(c)
	lv, err := h.orderList(c, n)
	if err != nil {
		return h.renderOrderList(c, http.StatusBadGateway, lv)
	}
	return h.renderOrderList(c, http.StatusOK, lv)
}

func (h *Handler) orderDetail(c echo.Context, n nav) *views.DetailView[dto.OrderDTO] {
	dv := views.NewDetailView(views.OrderResource(h.orders), c.Param("id"), n.dispatch, h.bus)
	_ = dv.Load(c.Request().Context())
	return dv
}

func (h *Handler) renderOrderDetail(c echo.Context, dv *views.DetailView[dto.OrderDTO], banner string) error {
	code := http.StatusOK
	switch dv.State() {
	case views.DetailNotFound:
		code = http.StatusNotFound
	case views.DetailError:
		code = http.StatusBadGateway
	}
	return h.render(c, code, "order_detail", page{Title: "Order", Section: shell.SectionOrders, Banner: banner, Content: dv})
}

func (h *Handler) OrderDetail(c echo.Context) error {
	return h.renderOrderDetail(c, h.orderDetail(c, h.navigate(c)), "")
}

func (h *Handler) renderOrderForm(c echo.Context, code int, form *views.OrderForm) error {
	vm := orderFormVM{
		Editing:    form.Editing(),
		Action:     h.basePath + "/orders",
		Cancel:     h.basePath + "/orders",
		ItemsError: form.Errors.Get(forms.OrderItems),
		Total:      form.Data.Total().Display(),
		HasItems:   len(form.Data.Items) > 0,
	}
	if form.Editing() {
		vm.Action = h.basePath + "/orders/" + form.ID()
		vm.Cancel = vm.Action
	}
	vm.Fields = []fieldVM{
		{Key: forms.OrderRequestedBy.String(), Label: "Requested By", Type: "text", Required: true,
			Value: form.Data.Value(forms.OrderRequestedBy), Error: form.Errors.Get(forms.OrderRequestedBy)},
		{Key: forms.OrderRequestorDepartment.String(), Label: "Department", Type: "text",
			Value: form.Data.Value(forms.OrderRequestorDepartment), Error: form.Errors.Get(forms.OrderRequestorDepartment)},
		{Key: forms.OrderStatusField.String(), Label: "Status", Type: "select",
			Options: statusOptions(dto.OrderStatuses, form.Data.Status), Error: form.Errors.Get(forms.OrderStatusField)},
		{Key: forms.OrderNotes.String(), Label: "Notes", Type: "textarea",
			Value: form.Data.Value(forms.OrderNotes), Error: form.Errors.Get(forms.OrderNotes)},
	}
	for i, item := range form.Data.Items {
		row := orderItemVM{
			Index:         i,
			EquipmentName: item.EquipmentName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.String(),
			Total:         item.TotalPrice.Display(),
			Errors:        map[string]string{},
		}
		for _, f := range []forms.ItemField{forms.ItemEquipmentName, forms.ItemQuantity, forms.ItemUnitPrice} {
			if msg := form.Errors.Item(i, f); msg != "" {
				row.Errors[f.String()] = msg
			}
		}
		vm.Items = append(vm.Items, row)
	}
	title := "Create New Order"
	if form.Editing() {
		title = "Edit Order"
	}
	return h.render(c, code, "order_form", page{Title: title, Section: shell.SectionOrders, Banner: form.Banner, Content: vm})
}

func (h *Handler) OrderNew(c echo.Context) error {
	n := h.navigate(c)
	return h.renderOrderForm(c, http.StatusOK, views.NewOrderForm(h.orders, nil, n.dispatch, h.bus))
}

func (h *Handler) OrderEdit(c echo.Context) error {
	n := h.navigate(c)
	dv := h.orderDetail(c, n)
	if dv.State() != views.DetailLoaded {
		return h.renderOrderDetail(c, dv, "")
	}
	if err := dv.StartEdit(); err != nil {
		n.dispatch(views.RecordViewed{Kind: views.KindOrder, ID: dv.ID()})
		return n.follow(c)
	}
	return h.renderOrderForm(c, http.StatusOK, views.NewOrderForm(h.orders, dv.Record(), n.dispatch, h.bus))
}

func (h *Handler) OrderCreate(c echo.Context) error {
	n := h.navigate(c)
	return h.submitOrder(c, n, views.NewOrderForm(h.orders, nil, n.dispatch, h.bus), nil)
}

func (h *Handler) OrderUpdate(c echo.Context) error {
	n := h.navigate(c)
	dv := h.orderDetail(c, n)
	if dv.State() != views.DetailLoaded {
		return h.renderOrderDetail(c, dv, "")
	}
	if err := dv.StartEdit(); err != nil {
		return h.renderOrderDetail(c, dv, "Only pending orders can be edited")
	}
	return h.submitOrder(c, n, views.NewOrderForm(h.orders, dv.Record(), n.dispatch, h.bus), dv)
}

// submitOrder обрабатывает и кнопки строк позиций (_action=add-item / remove-item),
// и сохранение. Форма всегда присылает все строки, поэтому позиции берутся только из запроса.
func (h *Handler) submitOrder(c echo.Context, n nav, form *views.OrderForm, dv *views.DetailView[dto.OrderDTO]) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Неверный формат данных формы")
	}
	base := form.Data
	base.Items = nil
	form.Data = forms.BindOrder(base, values)

	switch values.Get("_action") {
	case "add-item":
		form.AddItem()
		return h.renderOrderForm(c, http.StatusOK, form)
	case "remove-item":
		if index, err := strconv.Atoi(values.Get("_index")); err == nil {
			form.RemoveItem(index)
		}
		return h.renderOrderForm(c, http.StatusOK, form)
	}

	rec, err := form.Submit(c.Request().Context())
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return h.renderOrderForm(c, http.StatusUnprocessableEntity, form)
	case err != nil:
		return h.renderOrderForm(c, http.StatusBadGateway, form)
	}
	if dv != nil {
		_ = dv.Updated(*rec)
	}
	return n.follow(c)
}

func (h *Handler) OrderConfirmCancel(c echo.Context) error {
	n := h.navigate(c)
	dv := h.orderDetail(c, n)
	if dv.State() != views.DetailLoaded {
		return h.renderOrderDetail(c, dv, "")
	}
	res := views.OrderResource(h.orders)
	if !res.CanDelete(*dv.Record()) {
		return h.renderOrderDetail(c, dv, "Only pending orders can be cancelled")
	}
	vm := confirmVM{
		Prompt: res.Texts.ConfirmDelete,
		Action: h.basePath + "/orders/" + dv.ID() + "/delete",
		Cancel: h.basePath + "/orders/" + dv.ID(),
	}
	return h.render(c, http.StatusOK, "confirm", page{Title: "Cancel Order", Section: shell.SectionOrders, Content: vm})
}

func (h *Handler) OrderCancel(c echo.Context) error {
	n := h.navigate(c)
	lv, err := h.orderList(c, n)
	if err != nil {
		return h.renderOrderList(c, http.StatusBadGateway, lv)
	}

	id := c.Param("id")
	err = lv.Delete(c.Request().Context(), id, confirmation(c))
	switch {
	case err == nil, errors.Is(err, views.ErrUnknownRecord):
		n.dispatch(views.NavigateBack{Kind: views.KindOrder})
		return n.follow(c)
	case errors.Is(err, views.ErrNotConfirmed), errors.Is(err, views.ErrActionDisabled):
		n.dispatch(views.RecordViewed{Kind: views.KindOrder, ID: id})
		return n.follow(c)
	}
	return h.renderOrderList(c, http.StatusBadGateway, lv)
}
