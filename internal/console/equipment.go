package console

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storage-equipment/internal/dto"
	"storage-equipment/internal/forms"
	"storage-equipment/internal/shell"
	"storage-equipment/internal/spreadsheet"
	"storage-equipment/internal/views"
	apperrors "storage-equipment/pkg/errors"
)

func (h *Handler) equipmentList(c echo.Context, n nav) (*views.ListView[dto.EquipmentDTO], error) {
	lv := views.NewListView(views.EquipmentResource(h.equipment), n.dispatch, h.bus)
	return lv, lv.Load(c.Request().Context())
}

func (h *Handler) renderEquipmentList(c echo.Context, code int, lv *views.ListView[dto.EquipmentDTO]) error {
	vm := listVM{
		Heading:    "Hospital Equipment Management",
		Subheading: "Manage your hospital's medical equipment inventory",
		AddLabel:   "Add New Equipment",
		Path:       h.basePath + "/equipment",
		State:      string(lv.State()),
		Error:      lv.Error(),
		EmptyTitle: "No equipment found",
		EmptyHint:  "Start by adding your first equipment",
		Export:     true,
	}
	for _, e := range lv.Items() {
		next := e.NextService
		if next == "" {
			next = "Not scheduled"
		} else {
			next = longDate(next)
		}
		vm.Rows = append(vm.Rows, rowVM{
			ID:        e.ID,
			Title:     e.Name,
			Subtitle:  strings.Join(strings.Fields(e.Manufacturer+" "+e.Model), " ") + " • " + e.Location,
			Trailing:  "Next service: " + next,
			Status:    statusLabel(e.Status),
			CanEdit:   lv.CanEdit(e),
			CanDelete: lv.CanDelete(e),
		})
	}
	return h.render(c, code, "list", page{Title: "Equipment", Section: shell.SectionEquipment, Content: vm})
}

func (h *Handler) EquipmentList(c echo.Context) error {
	n := h.navigate(c)
	lv, err := h.equipmentList(c, n)
	if err != nil {
		return h.renderEquipmentList(c, http.StatusBadGateway, lv)
	}
	return h.renderEquipmentList(c, http.StatusOK, lv)
}

// EquipmentExport отдаёт текущий список оборудования файлом xlsx.
func (h *Handler) EquipmentExport(c echo.Context) error {
	n := h.navigate(c)
	lv, err := h.equipmentList(c, n)
	if err != nil {
		return h.renderEquipmentList(c, http.StatusBadGateway, lv)
	}

	fileName := fmt.Sprintf("equipment_%s.xlsx", h.now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	if err := spreadsheet.WriteEquipment(c.Response().Writer, lv.Items()); err != nil {
		h.logger.Error("EquipmentExport: ошибка записи xlsx", zap.Error(err))
		return err
	}
	return nil
}

func (h *Handler) equipmentDetail(c echo.Context, n nav) *views.DetailView[dto.EquipmentDTO] {
	dv := views.NewDetailView(views.EquipmentResource(h.equipment), c.Param("id"), n.dispatch, h.bus)
	_ = dv.Load(c.Request().Context())
	return dv
}

// renderEquipmentDetail рисует карточку в любом состоянии; код ответа следует состоянию.
func (h *Handler) renderEquipmentDetail(c echo.Context, dv *views.DetailView[dto.EquipmentDTO]) error {
	code := http.StatusOK
	switch dv.State() {
	case views.DetailNotFound:
		code = http.StatusNotFound
	case views.DetailError:
		code = http.StatusBadGateway
	}
	return h.render(c, code, "equipment_detail", page{Title: "Equipment", Section: shell.SectionEquipment, Content: dv})
}

func (h *Handler) EquipmentDetail(c echo.Context) error {
	return h.renderEquipmentDetail(c, h.equipmentDetail(c, h.navigate(c)))
}

func (h *Handler) renderEquipmentForm(c echo.Context, code int, form *views.EquipmentForm) error {
	vm := equipmentFormVM{Editing: form.Editing(), Action: h.basePath + "/equipment", Cancel: h.basePath + "/equipment"}
	if form.Editing() {
		vm.Action = h.basePath + "/equipment/" + form.ID()
		vm.Cancel = vm.Action
	}
	for _, f := range forms.EquipmentFields {
		field := fieldVM{
			Key:      f.String(),
			Label:    equipmentLabels[f],
			Type:     equipmentFieldType(f),
			Value:    form.Data.Value(f),
			Error:    form.Errors.Get(f),
			Required: equipmentRequired(f),
		}
		if f == forms.EquipmentStatusField {
			field.Options = statusOptions(dto.EquipmentStatuses, form.Data.Status)
		}
		vm.Fields = append(vm.Fields, field)
	}
	title := "Add New Equipment"
	if form.Editing() {
		title = "Edit Equipment"
	}
	return h.render(c, code, "equipment_form", page{Title: title, Section: shell.SectionEquipment, Banner: form.Banner, Content: vm})
}

func (h *Handler) EquipmentNew(c echo.Context) error {
	n := h.navigate(c)
	form := views.NewEquipmentForm(h.equipment, nil, h.now(), n.dispatch, h.bus)
	return h.renderEquipmentForm(c, http.StatusOK, form)
}

func (h *Handler) EquipmentEdit(c echo.Context) error {
	n := h.navigate(c)
	dv := h.equipmentDetail(c, n)
	if dv.State() != views.DetailLoaded {
		return h.renderEquipmentDetail(c, dv)
	}
	if err := dv.StartEdit(); err != nil {
		n.dispatch(views.RecordViewed{Kind: views.KindEquipment, ID: dv.ID()})
		return n.follow(c)
	}
	form := views.NewEquipmentForm(h.equipment, dv.Record(), h.now(), n.dispatch, h.bus)
	return h.renderEquipmentForm(c, http.StatusOK, form)
}

func (h *Handler) EquipmentCreate(c echo.Context) error {
	n := h.navigate(c)
	form := views.NewEquipmentForm(h.equipment, nil, h.now(), n.dispatch, h.bus)
	return h.submitEquipment(c, n, form, nil)
}

func (h *Handler) EquipmentUpdate(c echo.Context) error {
	n := h.navigate(c)
	dv := h.equipmentDetail(c, n)
	if dv.State() != views.DetailLoaded {
		return h.renderEquipmentDetail(c, dv)
	}
	if err := dv.StartEdit(); err != nil {
		return h.renderEquipmentDetail(c, dv)
	}
	form := views.NewEquipmentForm(h.equipment, dv.Record(), h.now(), n.dispatch, h.bus)
	return h.submitEquipment(c, n, form, dv)
}

func (h *Handler) submitEquipment(c echo.Context, n nav, form *views.EquipmentForm, dv *views.DetailView[dto.EquipmentDTO]) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Неверный формат данных формы")
	}
	form.Data = forms.BindEquipment(form.Data, values)

	rec, err := form.Submit(c.Request().Context())
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return h.renderEquipmentForm(c, http.StatusUnprocessableEntity, form)
	case err != nil:
		return h.renderEquipmentForm(c, http.StatusBadGateway, form)
	}
	if dv != nil {
		_ = dv.Updated(*rec)
	}
	return n.follow(c)
}

func (h *Handler) EquipmentConfirmDelete(c echo.Context) error {
	n := h.navigate(c)
	dv := h.equipmentDetail(c, n)
	if dv.State() != views.DetailLoaded {
		return h.renderEquipmentDetail(c, dv)
	}
	res := views.EquipmentResource(h.equipment)
	vm := confirmVM{
		Prompt: res.Texts.ConfirmDelete,
		Action: h.basePath + "/equipment/" + dv.ID() + "/delete",
		Cancel: h.basePath + "/equipment/" + dv.ID(),
	}
	return h.render(c, http.StatusOK, "confirm", page{Title: "Delete Equipment", Section: shell.SectionEquipment, Content: vm})
}

func (h *Handler) EquipmentDelete(c echo.Context) error {
	n := h.navigate(c)
	lv, err := h.equipmentList(c, n)
	if err != nil {
		return h.renderEquipmentList(c, http.StatusBadGateway, lv)
	}

	id := c.Param("id")
	err = lv.Delete(c.Request().Context(), id, confirmation(c))
	switch {
	case err == nil, errors.Is(err, views.ErrUnknownRecord):
		n.dispatch(views.NavigateBack{Kind: views.KindEquipment})
		return n.follow(c)
	case errors.Is(err, views.ErrNotConfirmed):
		n.dispatch(views.RecordViewed{Kind: views.KindEquipment, ID: id})
		return n.follow(c)
	}
	return h.renderEquipmentList(c, http.StatusBadGateway, lv)
}

// confirmation: подтверждение приходит полем confirm=yes со страницы подтверждения.
func confirmation(c echo.Context) views.Confirmer {
	if c.FormValue("confirm") == "yes" {
		return views.Confirmed
	}
	return views.ConfirmFunc(func(string) bool { return false })
}
