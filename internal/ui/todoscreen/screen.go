package todoscreen

import (
	"fmt"
	"log"

	"studytimer/internal/core/todo"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Screen shows the daily pledge and the to-do list.
type Screen struct {
	list   *todo.List
	window fyne.Window

	pledgeEntry  *widget.Entry
	pledgeLabel  *widget.Label
	pledgeButton *widget.Button

	itemEntry *widget.Entry
	addButton *widget.Button
	items     *widget.List
	remaining *widget.Label

	content fyne.CanvasObject
}

// New builds the to-do screen. window hosts error dialogs and may be nil.
func New(list *todo.List, window fyne.Window) *Screen {
	screen := &Screen{
		list:   list,
		window: window,
	}

	screen.pledgeEntry = widget.NewEntry()
	screen.pledgeEntry.SetPlaceHolder("Today I will...")
	screen.pledgeEntry.OnSubmitted = func(string) { screen.savePledge() }
	screen.pledgeButton = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), screen.savePledge)
	screen.pledgeLabel = widget.NewLabel("")
	screen.pledgeLabel.Wrapping = fyne.TextWrapWord

	screen.itemEntry = widget.NewEntry()
	screen.itemEntry.SetPlaceHolder("New task")
	screen.itemEntry.OnSubmitted = func(string) { screen.addItem() }
	screen.addButton = widget.NewButtonWithIcon("Add", theme.ContentAddIcon(), screen.addItem)

	screen.remaining = widget.NewLabel("")
	screen.items = widget.NewList(
		func() int { return len(screen.list.Items()) },
		func() fyne.CanvasObject {
			return newItemRow()
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			screen.updateRow(id, object.(*itemRow))
		},
	)

	header := container.NewVBox(
		widget.NewLabelWithStyle("Daily pledge", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, screen.pledgeButton, screen.pledgeEntry),
		screen.pledgeLabel,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, screen.addButton, screen.itemEntry),
		screen.remaining,
	)
	screen.content = container.NewBorder(header, nil, nil, nil, screen.items)

	list.OnChange(func() {
		fyne.Do(screen.Refresh)
	})
	screen.Refresh()
	return screen
}

// Content returns the root canvas object of the screen.
func (screen *Screen) Content() fyne.CanvasObject {
	return screen.content
}

// Refresh redraws pledge, count and list from the model.
func (screen *Screen) Refresh() {
	if pledge := screen.list.Pledge(); pledge != "" {
		screen.pledgeLabel.SetText(fmt.Sprintf("“%s”", pledge))
	} else {
		screen.pledgeLabel.SetText("No pledge yet.")
	}
	screen.remaining.SetText(fmt.Sprintf("%d task(s) left", screen.list.Remaining()))
	screen.items.Refresh()
}

func (screen *Screen) savePledge() {
	screen.list.SetPledge(screen.pledgeEntry.Text)
	screen.pledgeEntry.SetText("")
}

func (screen *Screen) addItem() {
	if _, ok := screen.list.Add(screen.itemEntry.Text); ok {
		screen.itemEntry.SetText("")
	}
}

func (screen *Screen) updateRow(id widget.ListItemID, row *itemRow) {
	items := screen.list.Items()
	if id < 0 || id >= len(items) {
		return
	}
	item := items[id]

	row.check.OnChanged = nil
	row.check.Text = item.Text
	row.check.SetChecked(item.Done)
	row.check.Refresh()
	row.check.OnChanged = func(bool) { screen.toggle(id) }
	row.remove.OnTapped = func() { screen.remove(id) }
}

func (screen *Screen) toggle(index int) {
	if err := screen.list.Toggle(index); err != nil {
		screen.showError(err)
	}
}

func (screen *Screen) remove(index int) {
	if err := screen.list.Remove(index); err != nil {
		screen.showError(err)
	}
}

func (screen *Screen) showError(err error) {
	if screen.window == nil {
		log.Printf("todo: %v", err)
		return
	}
	dialog.ShowError(err, screen.window)
}

type itemRow struct {
	widget.BaseWidget

	check  *widget.Check
	remove *widget.Button
}

func newItemRow() *itemRow {
	row := &itemRow{
		check:  widget.NewCheck("", nil),
		remove: widget.NewButtonWithIcon("", theme.DeleteIcon(), nil),
	}
	row.ExtendBaseWidget(row)
	return row
}

func (row *itemRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, nil, row.remove, row.check))
}
