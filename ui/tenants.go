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

var tenantStatusOptions = []string{core.FilterAll, types.TenantActive, types.TenantInactive, types.TenantSuspended}

// newTenantsView is the read-only platform tenant directory for super
// admins. Tenant lifecycle changes happen out of band.
func (a *App) newTenantsView(ctx context.Context) fyne.CanvasObject {
	var all []types.Tenant
	filter := core.TenantFilter{Status: core.FilterAll}

	grid := container.NewGridWrap(fyne.NewSize(320, 150))
	empty := widget.NewLabel("No tenants registered.")
	empty.Hide()
	loading := widget.NewProgressBarInfinite()

	render := func() {
		grid.Objects = nil
		visible := core.FilterTenants(all, filter)
		for i := range visible {
			t := visible[i]
			limits := widget.NewLabel(fmt.Sprintf("%s plan · %d users · %d projects",
				t.SubscriptionPlan, t.MaxUsers, t.MaxProjects))
			status := widget.NewLabel(fmt.Sprintf("%s · %s", t.Subdomain, t.Status))
			grid.Add(widget.NewCard(t.Name, "", container.NewVBox(status, limits)))
		}
		if len(visible) == 0 {
			empty.Show()
		} else {
			empty.Hide()
		}
		grid.Refresh()
	}

	go func() {
		tenants, err := a.tenants.List()
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			if err != nil {
				logrus.WithError(err).Warn("tenants sync failed")
				empty.Show()
				return
			}
			all = tenants
			render()
		})
	}()

	search := widget.NewEntry()
	search.SetPlaceHolder("Search by name or subdomain...")
	search.OnChanged = func(s string) {
		filter.Search = s
		render()
	}
	status := widget.NewSelect(tenantStatusOptions, func(s string) {
		filter.Status = s
		render()
	})
	status.SetSelected(core.FilterAll)

	toolbar := container.NewBorder(nil, nil, nil, status, search)

	return container.NewBorder(container.NewVBox(toolbar, loading), nil, nil, nil,
		container.NewVScroll(container.NewVBox(empty, grid)))
}
