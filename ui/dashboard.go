package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

const activePreviewLimit = 5

func statCard(title string, value *widget.Label) fyne.CanvasObject {
	value.TextStyle = fyne.TextStyle{Bold: true}
	value.Alignment = fyne.TextAlignCenter
	return widget.NewCard(title, "", value)
}

// newDashboardView derives the summary counters and the active-project
// preview from one projects fetch; no server-side aggregation is assumed.
func (a *App) newDashboardView(ctx context.Context, user types.User) fyne.CanvasObject {
	welcome := widget.NewLabelWithStyle(
		fmt.Sprintf("Welcome back, %s", user.FullName),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	projectsVal := widget.NewLabel("0")
	tasksVal := widget.NewLabel("0")
	completedVal := widget.NewLabel("0")
	pendingVal := widget.NewLabel("0")
	statsRow := container.NewGridWithColumns(4,
		statCard("Total Projects", projectsVal),
		statCard("Total Tasks", tasksVal),
		statCard("Completed", completedVal),
		statCard("Pending", pendingVal),
	)

	previewBox := container.NewVBox()
	emptyLabel := widget.NewLabel("No projects found in this workspace.")
	emptyLabel.Hide()

	loading := widget.NewProgressBarInfinite()

	apply := func(projects []types.Project) {
		stats := core.Summarize(projects)
		projectsVal.SetText(strconv.Itoa(stats.Projects))
		tasksVal.SetText(strconv.Itoa(stats.Tasks))
		completedVal.SetText(strconv.Itoa(stats.Completed))
		pendingVal.SetText(strconv.Itoa(stats.Pending))

		previewBox.Objects = nil
		preview := core.ActiveProjects(projects, activePreviewLimit)
		for _, p := range preview {
			project := p
			open := widget.NewButtonWithIcon(project.Name, theme.FolderOpenIcon(), func() {
				a.ShowBoard(project.ID)
			})
			open.Alignment = widget.ButtonAlignLeading
			previewBox.Add(open)
		}
		if len(preview) == 0 {
			emptyLabel.Show()
		} else {
			emptyLabel.Hide()
		}
		previewBox.Refresh()
	}

	go func() {
		projects, err := a.projects.List()
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			if err != nil {
				logrus.WithError(err).Warn("dashboard sync failed")
				projects = nil
			}
			apply(projects)
		})
	}()

	previewHeader := widget.NewLabelWithStyle("Active Workspaces", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	return container.NewVScroll(container.NewVBox(
		welcome,
		statsRow,
		loading,
		previewHeader,
		emptyLabel,
		previewBox,
	))
}
