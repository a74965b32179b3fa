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

var projectStatusOptions = []string{core.FilterAll, types.ProjectActive, types.ProjectCompleted, types.ProjectArchived}

func (a *App) newProjectsView(ctx context.Context) fyne.CanvasObject {
	var all []types.Project
	filter := core.ProjectFilter{Status: core.FilterAll}

	grid := container.NewGridWrap(fyne.NewSize(320, 170))
	empty := widget.NewLabel("No projects found in this workspace.")
	empty.Hide()
	loading := widget.NewProgressBarInfinite()

	var render func()
	var refresh func() error

	render = func() {
		grid.Objects = nil
		visible := core.FilterProjects(all, filter)
		for i := range visible {
			p := visible[i]
			grid.Add(a.projectCard(ctx, p, refresh))
		}
		if len(visible) == 0 {
			empty.Show()
		} else {
			empty.Hide()
		}
		grid.Refresh()
	}

	// refresh is the synchronous re-fetch; callers run it off the UI thread
	// and the result is applied back through fyne.Do.
	refresh = func() error {
		projects, err := a.projects.List()
		if err != nil {
			return err
		}
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			all = projects
			render()
		})
		return nil
	}

	load := func() {
		go func() {
			if err := refresh(); err != nil {
				logrus.WithError(err).Warn("projects sync failed")
				fyne.Do(func() {
					if ctx.Err() != nil {
						return
					}
					loading.Hide()
					loading.Stop()
					empty.Show()
				})
			}
		}()
	}

	search := widget.NewEntry()
	search.SetPlaceHolder("Search projects...")
	search.OnChanged = func(s string) {
		filter.Search = s
		render()
	}
	status := widget.NewSelect(projectStatusOptions, func(s string) {
		filter.Status = s
		render()
	})
	status.SetSelected(core.FilterAll)

	create := widget.NewButtonWithIcon("New Project", theme.ContentAddIcon(), func() {
		a.showProjectModal(nil, refresh)
	})

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(status, create), search)

	load()

	return container.NewBorder(toolbar, nil, nil, nil,
		container.NewVScroll(container.NewVBox(loading, empty, grid)))
}

func (a *App) projectCard(ctx context.Context, p types.Project, refresh func() error) fyne.CanvasObject {
	progress := widget.NewLabel(fmt.Sprintf("%s · %d/%d tasks done", p.Status, p.CompletedTaskCount, p.TaskCount))

	open := widget.NewButtonWithIcon("Open", theme.NavigateNextIcon(), func() {
		a.ShowBoard(p.ID)
	})
	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		project := p
		a.showProjectModal(&project, refresh)
	})
	del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Delete project",
			fmt.Sprintf("Are you sure you want to delete %q?", p.Name),
			func(ok bool) {
				if !ok {
					return
				}
				go func() {
					if err := a.projects.Delete(p.ID); err != nil {
						fyne.Do(func() {
							if ctx.Err() != nil {
								return
							}
							dialog.ShowError(fmt.Errorf("%s", services.DisplayMessage(err, "Error deleting project.")), a.win)
						})
						return
					}
					if err := refresh(); err != nil {
						logrus.WithError(err).Warn("projects sync failed")
					}
				}()
			}, a.win)
	})

	return widget.NewCard(p.Name, p.Description,
		container.NewVBox(progress, container.NewHBox(open, edit, del)))
}

// showProjectModal opens the create/edit project dialog. A nil project means
// create mode. refresh is the owning view's synchronous re-fetch; the dialog
// closes only after the server confirmed the write and refresh returned.
func (a *App) showProjectModal(p *types.Project, refresh func() error) {
	form := core.NewProjectForm(p)

	name := widget.NewEntry()
	name.SetText(form.Name)
	desc := widget.NewMultiLineEntry()
	desc.SetText(form.Description)
	status := widget.NewSelect([]string{types.ProjectActive, types.ProjectCompleted, types.ProjectArchived}, nil)
	status.SetSelected(form.Status)

	message := widget.NewLabel("")
	message.Importance = widget.DangerImportance
	message.Hide()

	title := "New Project"
	if p != nil {
		title = "Edit Project"
	}

	var d dialog.Dialog
	submit := widget.NewButton("Save", nil)
	cancel := widget.NewButton("Cancel", func() { d.Hide() })

	submit.OnTapped = func() {
		form.Name = name.Text
		form.Description = desc.Text
		form.Status = status.Selected
		submit.Disable()
		go func() {
			call := func() error {
				if p != nil {
					return a.projects.Update(p.ID, form.Payload())
				}
				return a.projects.Create(form.Payload())
			}
			msg, ok := core.Submit(form.Validate, call, refresh,
				"Failed to save project. Check your plan limits or connection.")
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
			widget.NewFormItem("Name", name),
			widget.NewFormItem("Description", desc),
			widget.NewFormItem("Status", status),
		),
		message,
		container.NewHBox(cancel, submit),
	)
	d = dialog.NewCustomWithoutButtons(title, body, a.win)
	d.Resize(fyne.NewSize(420, 360))
	d.Show()
}
