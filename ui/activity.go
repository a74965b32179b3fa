package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// newActivityView is the read-only audit trail for admin roles, newest
// first as the backend returns it.
func (a *App) newActivityView(ctx context.Context) fyne.CanvasObject {
	var all []types.AuditEntry
	search := ""

	listBox := container.NewVBox()
	empty := widget.NewLabel("No activity recorded yet.")
	empty.Hide()
	loading := widget.NewProgressBarInfinite()

	render := func() {
		listBox.Objects = nil
		visible := core.FilterAudit(all, search)
		for i := range visible {
			e := visible[i]
			action := widget.NewLabelWithStyle(e.Action, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			detail := e.Details
			if detail == "" {
				detail = fmt.Sprintf("%s %s", e.EntityType, e.EntityID)
			}
			row := container.NewBorder(nil, nil, nil, widget.NewLabel(e.Timestamp),
				container.NewVBox(action, widget.NewLabel(detail)))
			listBox.Add(row)
			listBox.Add(widget.NewSeparator())
		}
		if len(visible) == 0 {
			empty.Show()
		} else {
			empty.Hide()
		}
		listBox.Refresh()
	}

	go func() {
		entries, err := a.audit.List()
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			if err != nil {
				logrus.WithError(err).Warn("activity sync failed")
				empty.Show()
				return
			}
			all = entries
			render()
		})
	}()

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search activity...")
	searchEntry.OnChanged = func(s string) {
		search = s
		render()
	}

	return container.NewBorder(container.NewVBox(searchEntry, loading), nil, nil, nil,
		container.NewVScroll(container.NewVBox(empty, listBox)))
}
