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

var taskStatusOptions = []string{core.FilterAll, types.TaskTodo, types.TaskInProgress, types.TaskCompleted}

// newTasksView is the cross-project task list for admin roles.
func (a *App) newTasksView(ctx context.Context) fyne.CanvasObject {
	var all []types.Task
	filter := core.TaskFilter{Status: core.FilterAll, Priority: core.FilterAll}

	listBox := container.NewVBox()
	empty := widget.NewLabel("No tasks match the current filters.")
	empty.Hide()
	loading := widget.NewProgressBarInfinite()

	render := func() {
		listBox.Objects = nil
		visible := core.FilterTasks(all, filter)
		for i := range visible {
			t := visible[i]
			project := t.ProjectName
			if project == "" {
				project = "—"
			}
			detail := widget.NewLabel(fmt.Sprintf("%s · %s · %s", project, t.Priority, t.Status))
			row := container.NewBorder(nil, nil, nil, detail,
				widget.NewLabelWithStyle(t.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
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
		tasks, err := a.tasks.List()
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			if err != nil {
				logrus.WithError(err).Warn("tasks sync failed")
				empty.Show()
				return
			}
			all = tasks
			render()
		})
	}()

	search := widget.NewEntry()
	search.SetPlaceHolder("Search tasks...")
	search.OnChanged = func(s string) {
		filter.Search = s
		render()
	}
	status := widget.NewSelect(taskStatusOptions, func(s string) {
		filter.Status = s
		render()
	})
	status.SetSelected(core.FilterAll)
	priority := widget.NewSelect(priorityOptions, func(s string) {
		filter.Priority = s
		render()
	})
	priority.SetSelected(core.FilterAll)

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(status, priority), search)

	return container.NewBorder(container.NewVBox(toolbar, loading), nil, nil, nil,
		container.NewVScroll(container.NewVBox(empty, listBox)))
}
