// Package ui renders the client with Fyne: one window whose content swaps
// between the login/registration views and the authenticated shell (navbar
// plus the active view). Network work runs on goroutines and re-enters the
// UI through fyne.Do; every view owns a context cancelled on navigation so a
// replaced view never applies a late response.
package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/session"
	"github.com/sirinethikonda/saas-core-project/internal/types"
	"github.com/sirinethikonda/saas-core-project/services"
)

const appTitle = "SAAS.CORE"

// App owns the window and the services the views call.
type App struct {
	fapp fyne.App
	win  fyne.Window

	sessions *session.Store
	auth     *services.AuthService
	projects *services.ProjectService
	tasks    *services.TaskService
	tenants  *services.TenantService
	audit    *services.AuditService

	shellBody  *fyne.Container
	viewCancel context.CancelFunc

	// pendingView remembers the destination the guard bounced to login, so
	// a successful login can return there.
	pendingView string
}

func New(fapp fyne.App, sessions *session.Store, api *services.Client) *App {
	a := &App{
		fapp:     fapp,
		sessions: sessions,
		auth:     services.NewAuthService(api),
		projects: services.NewProjectService(api),
		tasks:    services.NewTaskService(api),
		tenants:  services.NewTenantService(api),
		audit:    services.NewAuditService(api),
	}

	a.win = fapp.NewWindow(appTitle)
	a.win.Resize(fyne.NewSize(1000, 660))
	a.win.CenterOnScreen()

	// Any 401 anywhere: the session is already cleared, force the login view.
	api.OnUnauthorized(func() {
		fyne.Do(a.ShowLogin)
	})

	// Every identity change, whatever triggered it, is reflected in the
	// window title.
	sessions.Subscribe(func(sess *types.Session) {
		fyne.Do(func() {
			if sess == nil {
				a.win.SetTitle(appTitle)
				return
			}
			a.win.SetTitle(sess.User.FullName + " · " + appTitle)
		})
	})

	return a
}

// Run shows the window on the right view for the rehydrated session state
// and enters the event loop.
func (a *App) Run() {
	if a.sessions.Current() != nil {
		a.ShowView(core.ViewDashboard)
	} else {
		a.ShowLogin()
	}
	a.win.Show()
	a.fapp.Run()
}

// cancelView disposes the active view's lifecycle context.
func (a *App) cancelView() {
	if a.viewCancel != nil {
		a.viewCancel()
		a.viewCancel = nil
	}
}

func (a *App) newViewContext() context.Context {
	a.cancelView()
	ctx, cancel := context.WithCancel(context.Background())
	a.viewCancel = cancel
	return ctx
}

// ShowLogin swaps the window to the unauthenticated login view.
func (a *App) ShowLogin() {
	a.cancelView()
	a.shellBody = nil
	a.win.SetContent(a.loginContent())
}

// ShowRegister swaps the window to the tenant registration view.
func (a *App) ShowRegister() {
	a.cancelView()
	a.shellBody = nil
	a.win.SetContent(a.registerContent())
}

// ShowView is the navigation entry point for every protected view. It
// re-evaluates the session on each call: no identity sends the user to
// login remembering the destination, and a view the role may not see falls
// back to the dashboard (the users list redirect, generalized).
func (a *App) ShowView(view string) {
	sess := a.sessions.Current()
	if sess == nil {
		a.pendingView = view
		a.ShowLogin()
		return
	}
	if !core.ViewVisible(view, sess.User.Role) {
		view = core.ViewDashboard
	}

	ctx := a.newViewContext()
	a.ensureShell(*sess)

	var body fyne.CanvasObject
	switch view {
	case core.ViewProjects:
		body = a.newProjectsView(ctx)
	case core.ViewTasks:
		body = a.newTasksView(ctx)
	case core.ViewUsers:
		body = a.newUsersView(ctx)
	case core.ViewTenants:
		body = a.newTenantsView(ctx)
	case core.ViewActivity:
		body = a.newActivityView(ctx)
	case core.ViewSettings:
		body = a.newSettingsView(sess.User)
	default:
		body = a.newDashboardView(ctx, sess.User)
	}
	a.setBody(body)
}

// ShowBoard opens the per-project task board. Reached from the projects and
// dashboard views, not from the navbar.
func (a *App) ShowBoard(projectID types.ID) {
	sess := a.sessions.Current()
	if sess == nil {
		a.pendingView = core.ViewProjects
		a.ShowLogin()
		return
	}
	ctx := a.newViewContext()
	a.ensureShell(*sess)
	a.setBody(a.newBoardView(ctx, projectID))
}

// onLoggedIn persists the session and navigates to the remembered
// destination, or the dashboard.
func (a *App) onLoggedIn(sess types.Session) {
	if err := a.sessions.Login(sess); err != nil {
		logrus.WithError(err).Error("persisting session")
	}
	view := core.ViewDashboard
	if a.pendingView != "" && core.ViewVisible(a.pendingView, sess.User.Role) {
		view = a.pendingView
	}
	a.pendingView = ""
	a.shellBody = nil
	a.ShowView(view)
}

func (a *App) logout() {
	if err := a.sessions.Logout(); err != nil {
		logrus.WithError(err).Error("clearing session")
	}
	a.ShowLogin()
}

// ensureShell builds the navbar and body container when the window is not
// already showing the authenticated shell.
func (a *App) ensureShell(sess types.Session) {
	if a.shellBody != nil {
		return
	}
	a.shellBody = container.NewStack()
	navbar := a.buildNavbar(sess.User)
	a.win.SetContent(container.NewBorder(navbar, nil, nil, nil, a.shellBody))
}

func (a *App) setBody(body fyne.CanvasObject) {
	a.shellBody.Objects = []fyne.CanvasObject{body}
	a.shellBody.Refresh()
}

var navIcons = map[string]fyne.Resource{
	"home":     theme.HomeIcon(),
	"folder":   theme.FolderIcon(),
	"list":     theme.ListIcon(),
	"account":  theme.AccountIcon(),
	"computer": theme.ComputerIcon(),
	"history":  theme.HistoryIcon(),
	"settings": theme.SettingsIcon(),
}

// buildNavbar renders the fixed-order entries visible to the user's role,
// the identity summary, and the sign-out action. It is rebuilt from the live
// session on every shell construction, never cached.
func (a *App) buildNavbar(user types.User) fyne.CanvasObject {
	entries := core.VisibleNav(user.Role)

	buttons := make([]fyne.CanvasObject, 0, len(entries)+3)
	for _, e := range entries {
		entry := e
		buttons = append(buttons, widget.NewButtonWithIcon(entry.Label, navIcons[entry.Icon], func() {
			a.ShowView(entry.View)
		}))
	}

	identity := widget.NewLabel(user.FullName)
	identity.TextStyle = fyne.TextStyle{Bold: true}
	signOut := widget.NewButtonWithIcon("Sign out", theme.LogoutIcon(), a.logout)

	bar := container.NewHBox(buttons...)
	right := container.NewHBox(identity, signOut)
	return container.NewVBox(
		container.NewBorder(nil, nil, bar, right),
		widget.NewSeparator(),
	)
}
