package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/core"
)

func (a *App) registerContent() fyne.CanvasObject {
	tenantNameEntry := widget.NewEntry()
	subdomainEntry := widget.NewEntry()
	subdomainEntry.SetPlaceHolder("subdomain")
	adminNameEntry := widget.NewEntry()
	adminEmailEntry := widget.NewEntry()
	passwordEntry := widget.NewPasswordEntry()
	confirmEntry := widget.NewPasswordEntry()

	errorLabel := widget.NewLabel("")
	errorLabel.Wrapping = fyne.TextWrapWord
	errorLabel.Hide()

	var submit *widget.Button
	submit = widget.NewButton("Register Organization", func() {
		errorLabel.Hide()

		form := core.RegistrationForm{
			TenantName:      tenantNameEntry.Text,
			Subdomain:       subdomainEntry.Text,
			AdminFullName:   adminNameEntry.Text,
			AdminEmail:      adminEmailEntry.Text,
			AdminPassword:   passwordEntry.Text,
			ConfirmPassword: confirmEntry.Text,
		}

		submit.Disable()
		go func() {
			msg, ok := core.Submit(form.Validate, func() error {
				return a.auth.RegisterTenant(form.Payload())
			}, nil, "Registration failed. Try a different subdomain.")
			fyne.Do(func() {
				submit.Enable()
				if !ok {
					if msg != "" {
						errorLabel.SetText(msg)
						errorLabel.Show()
					}
					return
				}
				logrus.WithField("subdomain", form.Subdomain).Info("tenant registered")
				a.ShowLogin()
			})
		}()
	})
	submit.Importance = widget.HighImportance

	backLink := widget.NewButton("Already have an account? Login", a.ShowLogin)
	backLink.Importance = widget.LowImportance

	form := widget.NewForm(
		widget.NewFormItem("Organization Name", tenantNameEntry),
		widget.NewFormItem("Subdomain", subdomainEntry),
		widget.NewFormItem("Admin Name", adminNameEntry),
		widget.NewFormItem("Admin Email", adminEmailEntry),
		widget.NewFormItem("Password", passwordEntry),
		widget.NewFormItem("Confirm Password", confirmEntry),
	)

	title := widget.NewLabelWithStyle("Create your organization account", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	card := widget.NewCard("", "", container.NewVBox(
		title,
		errorLabel,
		form,
		submit,
		backLink,
	))

	return container.NewCenter(container.NewGridWrap(fyne.NewSize(460, 480), card))
}
