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

var memberRoleOptions = []string{core.FilterAll, types.RoleUser, types.RoleTenantAdmin}

// newUsersView is the tenant member directory, reachable by tenant admins
// only; the shell guard redirects everyone else before this is built.
func (a *App) newUsersView(ctx context.Context) fyne.CanvasObject {
	sess := a.sessions.Current()
	if sess == nil {
		return widget.NewLabel("")
	}
	tenantID := sess.TenantID
	selfID := sess.User.ID

	var all []types.User
	filter := core.MemberFilter{Role: core.FilterAll}

	listBox := container.NewVBox()
	empty := widget.NewLabel("No members found.")
	empty.Hide()
	loading := widget.NewProgressBarInfinite()

	var render func()
	var refresh func() error

	render = func() {
		listBox.Objects = nil
		visible := core.FilterMembers(all, filter)
		for i := range visible {
			m := visible[i]
			listBox.Add(a.memberRow(ctx, m, selfID, refresh))
			listBox.Add(widget.NewSeparator())
		}
		if len(visible) == 0 {
			empty.Show()
		} else {
			empty.Hide()
		}
		listBox.Refresh()
	}

	refresh = func() error {
		members, err := a.tenants.Members(tenantID)
		if err != nil {
			return err
		}
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			loading.Hide()
			loading.Stop()
			all = members
			render()
		})
		return nil
	}

	load := func() {
		go func() {
			if err := refresh(); err != nil {
				logrus.WithError(err).Warn("members sync failed")
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
	search.SetPlaceHolder("Search by name or email...")
	search.OnChanged = func(s string) {
		filter.Search = s
		render()
	}
	role := widget.NewSelect(memberRoleOptions, func(s string) {
		filter.Role = s
		render()
	})
	role.SetSelected(core.FilterAll)

	invite := widget.NewButtonWithIcon("Add Member", theme.AccountIcon(), func() {
		a.showMemberModal(tenantID, nil, refresh)
	})

	toolbar := container.NewBorder(nil, nil, nil, container.NewHBox(role, invite), search)

	load()

	return container.NewBorder(container.NewVBox(toolbar, loading), nil, nil, nil,
		container.NewVScroll(container.NewVBox(empty, listBox)))
}

func (a *App) memberRow(ctx context.Context, m types.User, selfID types.ID, refresh func() error) fyne.CanvasObject {
	name := widget.NewLabelWithStyle(m.FullName, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	detail := widget.NewLabel(fmt.Sprintf("%s · %s", m.Email, m.Role))

	edit := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		member := m
		tenantID := m.TenantID.String()
		a.showMemberModal(tenantID, &member, refresh)
	})
	del := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		if m.ID == selfID {
			dialog.ShowError(fmt.Errorf("You cannot delete your own admin account."), a.win)
			return
		}
		dialog.ShowConfirm("Remove member",
			fmt.Sprintf("Remove %s from this workspace?", m.FullName),
			func(ok bool) {
				if !ok {
					return
				}
				go func() {
					if err := a.tenants.DeleteMember(m.ID); err != nil {
						fyne.Do(func() {
							if ctx.Err() != nil {
								return
							}
							dialog.ShowError(fmt.Errorf("%s", services.DisplayMessage(err,
								"Deletion failed. User may have active project assignments.")), a.win)
						})
						return
					}
					if err := refresh(); err != nil {
						logrus.WithError(err).Warn("members sync failed")
					}
				}()
			}, a.win)
	})

	return container.NewBorder(nil, nil, nil, container.NewHBox(edit, del),
		container.NewVBox(name, detail))
}

// showMemberModal opens the create/edit member dialog. On edit a blank
// password leaves the stored password untouched. refresh is the directory's
// synchronous re-fetch, awaited before the dialog closes.
func (a *App) showMemberModal(tenantID string, m *types.User, refresh func() error) {
	form := core.NewMemberForm(m)

	name := widget.NewEntry()
	name.SetText(form.FullName)
	email := widget.NewEntry()
	email.SetText(form.Email)
	password := widget.NewPasswordEntry()
	if form.Editing {
		password.SetPlaceHolder("Leave blank to keep current password")
	}
	role := widget.NewSelect([]string{types.RoleUser, types.RoleTenantAdmin}, nil)
	role.SetSelected(form.Role)

	message := widget.NewLabel("")
	message.Importance = widget.DangerImportance
	message.Hide()

	title := "Add Member"
	if form.Editing {
		title = "Edit Member"
	}

	var d dialog.Dialog
	submit := widget.NewButton("Save", nil)
	cancel := widget.NewButton("Cancel", func() { d.Hide() })

	submit.OnTapped = func() {
		form.FullName = name.Text
		form.Email = email.Text
		form.Password = password.Text
		form.Role = role.Selected
		submit.Disable()
		go func() {
			call := func() error {
				if m != nil {
					return a.tenants.UpdateMember(m.ID, form.Payload())
				}
				return a.tenants.CreateMember(tenantID, form.Payload())
			}
			msg, ok := core.Submit(form.Validate, call, refresh, "Error saving member")
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
			widget.NewFormItem("Full name", name),
			widget.NewFormItem("Email", email),
			widget.NewFormItem("Password", password),
			widget.NewFormItem("Role", role),
		),
		message,
		container.NewHBox(cancel, submit),
	)
	d = dialog.NewCustomWithoutButtons(title, body, a.win)
	d.Resize(fyne.NewSize(420, 380))
	d.Show()
}
