package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/types"
	"github.com/sirinethikonda/saas-core-project/services"
)

var (
	laneTitles = map[string]string{
		types.TaskTodo:       "To Do",
		types.TaskInProgress: "In Progress",
		types.TaskCompleted:  "Completed",
	}
	priorityOptions = []string{core.FilterAll, types.PriorityLow, types.PriorityMedium, types.PriorityHigh}
)

// newBoardView renders one project's tasks as three fixed lanes. Status moves
// and deletes mutate the local slice only after the server confirmed them.
func (a *App) newBoardView(ctx context.Context, projectID types.ID) fyne.CanvasObject {
	var all []types.Task
	filter := core.TaskFilter{Status: core.FilterAll, Priority: core.FilterAll}

	title := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	lanesRow := container.NewGridWithColumns(len(core.BoardLanes))
	loading := widget.NewProgressBarInfinite()

	var render func()
	render = func() {
		lanesRow.Objects = nil
		grouped := core.GroupByLane(core.FilterTasks(all, filter))
		for _, lane := range core.BoardLanes {
			laneBox := container.NewVBox()
			tasks := grouped[lane]
			for i := range tasks {
				t := tasks[i]
				laneBox.Add(a.taskCard(ctx, t, func(updated []types.Task) {
					all = updated
					render()
				}, func() []types.Task { return all }))
			}
			if len(tasks) == 0 {
				laneBox.Add(widget.NewLabel("No tasks"))
			}
			header := widget.NewLabelWithStyle(
				fmt.Sprintf("%s (%d)", laneTitles[lane], len(tasks)),
				fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
			lanesRow.Add(container.NewBorder(header, nil, nil, nil, container.NewVScroll(laneBox)))
		}
		lanesRow.Refresh()
	}

	refresh := func() error {
		tasks, err := a.projects.Tasks(projectID)
		if err != nil {
			return err
		}
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			all = tasks
			render()
		})
		return nil
	}

	load := func() {
		go func() {
			if err := refresh(); err != nil {
				logrus.WithError(err).WithField("project", projectID).Warn("board sync failed")
				fyne.Do(func() {
					if ctx.Err() != nil {
						return
					}
					loading.Hide()
					loading.Stop()
					render()
				})
			}
		}()
	}

	go func() {
		project, err := a.projects.Get(projectID)
		fyne.Do(func() {
			if ctx.Err() != nil || err != nil {
				return
			}
			title.SetText(project.Name)
		})
	}()

	priority := widget.NewSelect(priorityOptions, func(s string) {
		filter.Priority = s
		render()
	})
	priority.SetSelected(core.FilterAll)

	back := widget.NewButtonWithIcon("Projects", theme.NavigateBackIcon(), func() {
		a.ShowView(core.ViewProjects)
	})
	create := widget.NewButtonWithIcon("New Task", theme.ContentAddIcon(), func() {
		a.showTaskModal(projectID, refresh)
	})

	toolbar := container.NewBorder(nil, nil, container.NewHBox(back, title), container.NewHBox(priority, create))

	load()

	return container.NewBorder(container.NewVBox(toolbar, loading), nil, nil, nil, lanesRow)
}

// taskCard renders one board entry with an inline status select and a delete
// action. current hands back the latest task slice so overlapping mutations
// compose; apply installs the post-mutation slice and re-renders.
func (a *App) taskCard(ctx context.Context, t types.Task, apply func([]types.Task), current func() []types.Task) fyne.CanvasObject {
	meta := widget.NewLabel(t.Priority)
	if t.DueDate != "" {
		meta.SetText(fmt.Sprintf("%s · due %s", t.Priority, t.DueDate))
	}
	assignee := widget.NewLabel("Unassigned")
	if t.AssignedUser != nil {
		assignee.SetText(t.AssignedUser.FullName)
	}

	status := widget.NewSelect(core.BoardLanes, nil)
	status.SetSelected(t.Status)
	status.OnChanged = func(next string) {
		if next == t.Status {
			return
		}
		go func() {
			err := a.tasks.UpdateStatus(t.ID, next)
			fyne.Do(func() {
				if ctx.Err() != nil {
					return
				}
				if err != nil {
					status.SetSelected(t.Status)
					dialog.ShowError(fmt.Errorf("%s", services.DisplayMessage(err, "Status update failed")), a.win)
					return
				}
				apply(core.SetTaskStatus(current(), t.ID, next))
			})
		}()
	}

	del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Delete task", "Permanently delete this task?", func(ok bool) {
			if !ok {
				return
			}
			go func() {
				err := a.tasks.Delete(t.ID)
				fyne.Do(func() {
					if ctx.Err() != nil {
						return
					}
					if err != nil {
						dialog.ShowError(fmt.Errorf("%s", services.DisplayMessage(err, "Delete operation failed")), a.win)
						return
					}
					apply(core.RemoveTask(current(), t.ID))
				})
			}()
		}, a.win)
	})

	return widget.NewCard(t.Title, "", container.NewVBox(
		meta,
		assignee,
		container.NewBorder(nil, nil, nil, del, status),
	))
}

// showTaskModal opens the create-task dialog scoped to a project. refresh is
// the board's synchronous re-fetch, awaited before the dialog closes.
func (a *App) showTaskModal(projectID types.ID, refresh func() error) {
	form := core.NewTaskForm()

	titleEntry := widget.NewEntry()
	priority := widget.NewSelect([]string{types.PriorityLow, types.PriorityMedium, types.PriorityHigh}, nil)
	priority.SetSelected(form.Priority)
	status := widget.NewSelect(core.BoardLanes, nil)
	status.SetSelected(form.Status)
	due := widget.NewEntry()
	due.SetPlaceHolder("YYYY-MM-DD")

	message := widget.NewLabel("")
	message.Importance = widget.DangerImportance
	message.Hide()

	var d dialog.Dialog
	submit := widget.NewButton("Save", nil)
	cancel := widget.NewButton("Cancel", func() { d.Hide() })

	submit.OnTapped = func() {
		form.Title = titleEntry.Text
		form.Priority = priority.Selected
		form.Status = status.Selected
		form.DueDate = due.Text
		submit.Disable()
		go func() {
			call := func() error { return a.projects.CreateTask(projectID, form.Payload()) }
			msg, ok := core.Submit(form.Validate, call, refresh, "Failed to create task.")
			fyne.Do(func() {
				submit.Enable()
				if !ok {
					if msg != "" {
						message.SetText(msg)
						message.Show()
					}
					return
				}
				d.Hide()
			})
		}()
	}

	body := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Title", titleEntry),
			widget.NewFormItem("Priority", priority),
			widget.NewFormItem("Status", status),
			widget.NewFormItem("Due date", due),
		),
		message,
		container.NewHBox(cancel, submit),
	)
	d = dialog.NewCustomWithoutButtons("New Task", body, a.win)
	d.Resize(fyne.NewSize(420, 380))
	d.Show()
}
