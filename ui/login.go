package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/sirinethikonda/saas-core-project/services"
)

func (a *App) loginContent() fyne.CanvasObject {
	subdomainEntry := widget.NewEntry()
	subdomainEntry.SetPlaceHolder("company-name")

	emailEntry := widget.NewEntry()
	emailEntry.SetPlaceHolder("admin@company.com")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")

	errorLabel := widget.NewLabel("")
	errorLabel.Wrapping = fyne.TextWrapWord
	errorLabel.Hide()

	showError := func(msg string) {
		errorLabel.SetText(msg)
		errorLabel.Show()
	}

	var signIn *widget.Button
	signIn = widget.NewButton("Sign In to Dashboard", func() {
		errorLabel.Hide()

		subdomain := subdomainEntry.Text
		email := emailEntry.Text
		password := passwordEntry.Text
		if subdomain == "" || email == "" || password == "" {
			showError("Subdomain, email and password are required.")
			return
		}

		signIn.Disable()
		go func() {
			sess, err := a.auth.Login(email, password, subdomain)
			fyne.Do(func() {
				signIn.Enable()
				if err != nil {
					logrus.WithError(err).Warn("login failed")
					showError(services.DisplayMessage(err, "Invalid credentials or subdomain"))
					return
				}
				a.onLoggedIn(*sess)
			})
		}()
	})
	signIn.Importance = widget.HighImportance

	registerLink := widget.NewButton("New organization? Register Tenant", a.ShowRegister)
	registerLink.Importance = widget.LowImportance

	form := widget.NewForm(
		widget.NewFormItem("Organization Subdomain", subdomainEntry),
		widget.NewFormItem("Email Address", emailEntry),
		widget.NewFormItem("Password", passwordEntry),
	)

	title := widget.NewLabelWithStyle("Welcome Back", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Sign in to your organization dashboard", fyne.TextAlignCenter, fyne.TextStyle{})

	card := widget.NewCard("", "", container.NewVBox(
		title,
		subtitle,
		errorLabel,
		form,
		signIn,
		registerLink,
	))

	return container.NewCenter(container.NewGridWrap(fyne.NewSize(420, 400), card))
}
