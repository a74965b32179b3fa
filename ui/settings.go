package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// newSettingsView shows the signed-in profile. Profile edits are not
// exposed by the backend yet, so every field is read-only.
func (a *App) newSettingsView(user types.User) fyne.CanvasObject {
	roleNames := map[string]string{
		types.RoleUser:        "Member",
		types.RoleTenantAdmin: "Workspace Admin",
		types.RoleSuperAdmin:  "Platform Admin",
	}
	role := roleNames[user.Role]
	if role == "" {
		role = user.Role
	}

	profile := widget.NewForm(
		widget.NewFormItem("Full name", widget.NewLabel(user.FullName)),
		widget.NewFormItem("Email", widget.NewLabel(user.Email)),
		widget.NewFormItem("Role", widget.NewLabel(role)),
		widget.NewFormItem("Workspace", widget.NewLabel(user.TenantID.String())),
	)

	return container.NewCenter(container.NewGridWrap(fyne.NewSize(420, 260),
		widget.NewCard("Profile", "", profile)))
}
