package recordscreen

import (
	"fmt"
	"log"

	"studytimer/internal/core/history"
	"studytimer/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Screen lists session records with rename and delete actions.
type Screen struct {
	store  *history.Store
	window fyne.Window

	total *widget.Label
	empty *widget.Label
	list  *widget.List

	content fyne.CanvasObject
}

// New builds the records screen. window hosts the rename and error dialogs
// and may be nil, in which case those dialogs are skipped.
func New(store *history.Store, window fyne.Window) *Screen {
	screen := &Screen{
		store:  store,
		window: window,
	}

	screen.total = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	screen.empty = widget.NewLabel("No sessions recorded yet.")
	screen.list = widget.NewList(
		store.Len,
		func() fyne.CanvasObject {
			return newRecordRow()
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			screen.updateRow(id, object.(*recordRow))
		},
	)

	screen.content = container.NewBorder(
		container.NewVBox(screen.total, widget.NewSeparator()),
		nil, nil, nil,
		container.NewStack(screen.empty, screen.list),
	)

	store.OnChange(func() {
		fyne.Do(screen.Refresh)
	})
	screen.Refresh()
	return screen
}

// Content returns the root canvas object of the screen.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Refresh redraws the total and the list from the store.
func (screen *Screen) Refresh() {
	screen.total.SetText(fmt.Sprintf("Total focus: %s", model.FormatClock(screen.store.TotalElapsedSeconds())))
	if screen.store.Len() == 0 {
		screen.empty.Show()
	} else {
		screen.empty.Hide()
	}
	screen.list.Refresh()
}

func (screen *Screen) updateRow(id widget.ListItemID, row *recordRow) {
	record, ok := screen.store.At(id)
	if !ok {
		return
	}
	row.label.SetText(record.String())
	row.rename.OnTapped = func() { screen.rename(id) }
	row.remove.OnTapped = func() { screen.delete(id) }
}

func (screen *Screen) rename(index int) {
	record, ok := screen.store.At(index)
	if !ok || screen.window == nil {
		return
	}

	entry := widget.NewEntry()
	entry.SetText(record.Title)
	items := []*widget.FormItem{widget.NewFormItem("Title", entry)}
	dialog.ShowForm("Rename record", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		screen.applyRename(index, entry.Text)
	}, screen.window)
}

func (screen *Screen) applyRename(index int, title string) {
	if err := screen.store.Rename(index, title); err != nil {
		screen.showError(err)
	}
}

func (screen *Screen) delete(index int) {
	if err := screen.store.Delete(index); err != nil {
		screen.showError(err)
	}
}

func (screen *Screen) showError(err error) {
	if screen.window == nil {
		log.Printf("records: %v", err)
		return
	}
	dialog.ShowError(err, screen.window)
}

type recordRow struct {
	widget.BaseWidget

	label  *widget.Label
	rename *widget.Button
	remove *widget.Button
}

func newRecordRow() *recordRow {
	row := &recordRow{
		label:  widget.NewLabel(""),
		rename: widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil),
		remove: widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	}
	row.label.Truncation = fyne.TextTruncateEllipsis
	row.ExtendBaseWidget(row)
	return row
}

func (row *recordRow) CreateRenderer() fyne.WidgetRenderer {
	actions := container.NewHBox(row.rename, row.remove)
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, actions, row.label))
}
