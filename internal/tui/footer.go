package tui

// renderFooter renders the key binding hint line at full terminal width.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	return StyleDim.Width(width).Render(footerHint)
}
