package registry

import "github.com/shaharia-lab/vstyle/internal/color"

// registerVSCodeDefaults installs the workbench color roles of VSCode's
// default themes, plus the derived roles the stylesheet template needs for
// disabled and pressed widget states.
//
// Some VSCode defaults of nil were replaced by "transparent" or a concrete
// color so that the stylesheet always gets a value.
func registerVSCodeDefaults(b *Base) {
	white := Lit(color.White())
	black := Lit(color.Black())
	lit := func(hex string, alpha float64) Expr {
		return Lit(color.MustParseHex(hex).Transparent(alpha))
	}

	// base colors
	foreground := b.MustRegister("foreground", Defaults{Dark: Hex("#CCCCCC"), Light: Hex("#616161"), HC: Hex("#FFFFFF")})
	b.MustRegister("errorForeground", Defaults{Dark: Hex("#F48771"), Light: Hex("#A1260D"), HC: Hex("#F48771")})
	iconForeground := b.MustRegister("icon.foreground", Defaults{Dark: Hex("#C5C5C5"), Light: Hex("#424242"), HC: Hex("#FFFFFF")})
	focusBorder := b.MustRegister("focusBorder", Defaults{Dark: Hex("#007FD4"), Light: Hex("#0090F1"), HC: Hex("#F38518")})
	contrastBorder := b.MustRegister("contrastBorder", Defaults{Dark: TransparentColor, Light: TransparentColor, HC: Hex("#6FC3DF")})
	activeContrastBorder := b.MustRegister("contrastActiveBorder", Defaults{HC: focusBorder})
	b.MustRegister("selection.background", Defaults{Dark: Hex("#5b89b4"), Light: Hex("#a9d8ff"), HC: Hex("#a9d8ff")})

	// text colors
	b.MustRegister("textLink.foreground", Defaults{Dark: Hex("#3794FF"), Light: Hex("#006AB1"), HC: Hex("#3794FF")})
	b.MustRegister("textLink.activeForeground", Defaults{Dark: Hex("#3794FF"), Light: Hex("#006AB1"), HC: Hex("#3794FF")})

	// widgets
	inputBackground := b.MustRegister("input.background", Defaults{Dark: Hex("#3C3C3C"), Light: white, HC: black})
	inputForeground := b.MustRegister("input.foreground", Same(foreground))
	inputBorder := b.MustRegister("input.border", Defaults{Dark: TransparentColor, Light: Hex("#CECECE"), HC: contrastBorder})
	inputValidationWarningBorder := b.MustRegister("inputValidation.warningBorder", Defaults{Dark: Hex("#B89500"), Light: Hex("#B89500"), HC: contrastBorder})
	inputValidationErrorBorder := b.MustRegister("inputValidation.errorBorder", Defaults{Dark: Hex("#BE1100"), Light: Hex("#BE1100"), HC: contrastBorder})
	b.MustRegister("input.placeholderForeground", Defaults{
		Dark:  Transparent(foreground, 0.5),
		Light: Transparent(foreground, 0.5),
		HC:    Transparent(foreground, 0.7),
	})

	selectBackground := b.MustRegister("dropdown.background", Defaults{Dark: Hex("#3C3C3C"), Light: white, HC: black})
	b.MustRegister("dropdown.listBackground", Defaults{HC: black})
	selectForeground := b.MustRegister("dropdown.foreground", Defaults{Dark: Hex("#F0F0F0"), HC: white})
	selectBorder := b.MustRegister("dropdown.border", Defaults{Dark: selectBackground, Light: Hex("#CECECE"), HC: contrastBorder})

	checkboxBackground := b.MustRegister("checkbox.background", Same(selectBackground))
	checkboxForeground := b.MustRegister("checkbox.foreground", Same(selectForeground))
	checkboxBorder := b.MustRegister("checkbox.border", Same(selectBorder))

	b.MustRegister("button.foreground", Same(white))
	buttonBackground := b.MustRegister("button.background", Defaults{Dark: Hex("#0E639C"), Light: Hex("#007ACC")})
	b.MustRegister("button.hoverBackground", Defaults{Dark: Lighten(buttonBackground, 0.2), Light: Darken(buttonBackground, 0.2)})
	b.MustRegister("button.border", Same(contrastBorder))
	b.MustRegister("button.secondaryForeground", Same(white))
	buttonSecondaryBackground := b.MustRegister("button.secondaryBackground", Defaults{Dark: Hex("#3A3D41"), Light: Hex("#5F6A79")})
	b.MustRegister("button.secondaryHoverBackground", Defaults{
		Dark:  Lighten(buttonSecondaryBackground, 0.2),
		Light: Darken(buttonSecondaryBackground, 0.2),
	})

	b.MustRegister("scrollbarSlider.background", Defaults{
		Dark:  lit("#797979", 0.4),
		Light: lit("#646464", 0.4),
		HC:    Transparent(contrastBorder, 0.6),
	})
	b.MustRegister("scrollbarSlider.hoverBackground", Defaults{
		Dark:  lit("#646464", 0.7),
		Light: lit("#646464", 0.7),
		HC:    Transparent(contrastBorder, 0.8),
	})
	b.MustRegister("scrollbarSlider.activeBackground", Defaults{
		Dark:  lit("#BFBFBF", 0.4),
		Light: lit("#000000", 0.6),
		HC:    contrastBorder,
	})
	progressBarBackground := b.MustRegister("progressBar.background", Defaults{Dark: Hex("#0E70C0"), Light: Hex("#0E70C0"), HC: contrastBorder})

	// editor; light is not pure white because of a VSCode rendering bug
	editorBackground := b.MustRegister("editor.background", Defaults{Dark: Hex("#1E1E1E"), Light: Hex("#fffffe"), HC: black})
	b.MustRegister("editor.foreground", Defaults{Dark: Hex("#BBBBBB"), Light: Hex("#333333"), HC: white})
	editorWidgetBackground := b.MustRegister("editorWidget.background", Defaults{Dark: Hex("#252526"), Light: Hex("#F3F3F3"), HC: Hex("#0C141F")})
	editorWidgetForeground := b.MustRegister("editorWidget.foreground", Same(foreground))
	editorWidgetBorder := b.MustRegister("editorWidget.border", Defaults{Dark: Hex("#454545"), Light: Hex("#C8C8C8"), HC: contrastBorder})
	b.MustRegister("editorWidget.resizeBorder", Defaults{})

	editorSelectionBackground := b.MustRegister("editor.selectionBackground", Defaults{Dark: Hex("#264F78"), Light: Hex("#ADD6FF"), HC: Hex("#f3f518")})
	b.MustRegister("editor.selectionForeground", Defaults{HC: Hex("#000000")})
	b.MustRegister("editor.inactiveSelectionBackground", Same(Transparent(editorSelectionBackground, 0.5)))
	b.MustRegister("editor.selectionHighlightBackground", Defaults{
		Dark:  LessProminent(editorSelectionBackground, editorBackground, 0.3, 0.6),
		Light: LessProminent(editorSelectionBackground, editorBackground, 0.3, 0.6),
	})
	b.MustRegister("editor.selectionHighlightBorder", Defaults{HC: activeContrastBorder})

	b.MustRegister("editorHoverWidget.background", Same(editorWidgetBackground))
	b.MustRegister("editorHoverWidget.foreground", Same(editorWidgetForeground))
	b.MustRegister("editorHoverWidget.border", Same(editorWidgetBorder))

	// lists and trees
	listFocusBackground := b.MustRegister("list.focusBackground", Defaults{})
	b.MustRegister("list.focusForeground", Defaults{})
	b.MustRegister("list.focusOutline", Defaults{Dark: focusBorder, Light: focusBorder, HC: activeContrastBorder})
	listActiveSelectionBackground := b.MustRegister("list.activeSelectionBackground", Defaults{Dark: Hex("#094771"), Light: Hex("#0060C0"), HC: editorBackground})
	listActiveSelectionForeground := b.MustRegister("list.activeSelectionForeground", Defaults{Dark: white, Light: white, HC: foreground})
	b.MustRegister("list.activeSelectionIconForeground", Same(white))
	b.MustRegister("list.inactiveSelectionBackground", Defaults{Dark: Hex("#37373D"), Light: Hex("#E4E6F1"), HC: editorBackground})
	b.MustRegister("list.inactiveSelectionForeground", Defaults{})
	b.MustRegister("list.inactiveFocusBackground", Defaults{})
	b.MustRegister("list.inactiveFocusOutline", Defaults{})
	b.MustRegister("list.hoverBackground", Defaults{Dark: Hex("#2A2D2E"), Light: Hex("#F0F0F0"), HC: TransparentColor})
	b.MustRegister("list.hoverForeground", Defaults{})
	b.MustRegister("list.dropBackground", Defaults{Dark: Hex("#062F4A"), Light: Hex("#D6EBFF")})
	listHighlightForeground := b.MustRegister("list.highlightForeground", Defaults{Dark: Hex("#18A3FF"), Light: Hex("#0066BF"), HC: focusBorder})
	b.MustRegister("list.focusHighlightForeground", Defaults{
		Dark:  listHighlightForeground,
		Light: IfDefinedThenElse(listActiveSelectionBackground, listHighlightForeground, Hex("#9DDDFF")),
		HC:    listHighlightForeground,
	})
	treeIndentGuidesStroke := b.MustRegister("tree.indentGuidesStroke", Defaults{Dark: Hex("#585858"), Light: Hex("#a9a9a9"), HC: Hex("#a9a9a9")})

	// menus
	b.MustRegister("menu.border", Defaults{Dark: TransparentColor, Light: TransparentColor, HC: contrastBorder})
	b.MustRegister("menu.foreground", Defaults{Dark: selectForeground, Light: foreground, HC: selectForeground})
	b.MustRegister("menu.background", Same(selectBackground))
	b.MustRegister("menu.selectionForeground", Same(listActiveSelectionForeground))
	b.MustRegister("menu.selectionBackground", Same(listActiveSelectionBackground))
	b.MustRegister("menu.selectionBorder", Defaults{Dark: TransparentColor, Light: TransparentColor, HC: activeContrastBorder})
	b.MustRegister("menu.separatorBackground", Defaults{Dark: Hex("#BBBBBB"), Light: Hex("#888888"), HC: contrastBorder})

	// toolbar
	toolbarHoverBackground := b.MustRegister("toolbar.hoverBackground", Defaults{Dark: Hex("#5a5d5e50"), Light: Hex("#b8b8b850")})
	b.MustRegister("toolbar.hoverOutline", Defaults{Dark: TransparentColor, Light: TransparentColor, HC: activeContrastBorder})
	b.MustRegister("toolbar.activeBackground", Defaults{
		Dark:  Lighten(toolbarHoverBackground, 0.1),
		Light: Darken(toolbarHoverBackground, 0.1),
	})

	// tabs
	tabActiveBackground := b.MustRegister("tab.activeBackground", Same(editorBackground))
	b.MustRegister("tab.unfocusedActiveBackground", Same(tabActiveBackground))
	tabInactiveBackground := b.MustRegister("tab.inactiveBackground", Defaults{Dark: Hex("#2D2D2D"), Light: Hex("#ECECEC")})
	b.MustRegister("tab.unfocusedInactiveBackground", Same(tabInactiveBackground))

	tabActiveForeground := b.MustRegister("tab.activeForeground", Defaults{Dark: white, Light: Hex("#333333"), HC: white})
	tabInactiveForeground := b.MustRegister("tab.inactiveForeground", Defaults{
		Dark:  Transparent(tabActiveForeground, 0.5),
		Light: Transparent(tabActiveForeground, 0.7),
		HC:    white,
	})
	b.MustRegister("tab.unfocusedActiveForeground", Defaults{
		Dark:  Transparent(tabActiveForeground, 0.5),
		Light: Transparent(tabActiveForeground, 0.7),
		HC:    white,
	})
	b.MustRegister("tab.unfocusedInactiveForeground", Defaults{
		Dark:  Transparent(tabInactiveForeground, 0.5),
		Light: Transparent(tabInactiveForeground, 0.5),
		HC:    white,
	})

	tabHoverBackground := b.MustRegister("tab.hoverBackground", Defaults{})
	b.MustRegister("tab.unfocusedHoverBackground", Defaults{
		Dark:  Transparent(tabHoverBackground, 0.5),
		Light: Transparent(tabHoverBackground, 0.7),
	})
	tabHoverForeground := b.MustRegister("tab.hoverForeground", Defaults{})
	b.MustRegister("tab.unfocusedHoverForeground", Defaults{
		Dark:  Transparent(tabHoverForeground, 0.5),
		Light: Transparent(tabHoverForeground, 0.5),
	})

	b.MustRegister("tab.border", Defaults{Dark: Hex("#252526"), Light: Hex("#F3F3F3"), HC: contrastBorder})
	tabActiveBorder := b.MustRegister("tab.activeBorder", Defaults{})
	b.MustRegister("tab.unfocusedActiveBorder", Defaults{
		Dark:  Transparent(tabActiveBorder, 0.5),
		Light: Transparent(tabActiveBorder, 0.7),
	})
	tabActiveBorderTop := b.MustRegister("tab.activeBorderTop", Defaults{})
	b.MustRegister("tab.unfocusedActiveBorderTop", Defaults{
		Dark:  Transparent(tabActiveBorderTop, 0.5),
		Light: Transparent(tabActiveBorderTop, 0.7),
	})
	tabHoverBorder := b.MustRegister("tab.hoverBorder", Defaults{})
	b.MustRegister("tab.unfocusedHoverBorder", Defaults{
		Dark:  Transparent(tabHoverBorder, 0.5),
		Light: Transparent(tabHoverBorder, 0.7),
	})

	// editor groups
	b.MustRegister("editorGroupHeader.tabsBackground", Defaults{Dark: Hex("#252526"), Light: Hex("#F3F3F3")})
	b.MustRegister("editorGroupHeader.tabsBorder", Defaults{})
	b.MustRegister("editorGroupHeader.noTabsBackground", Same(editorBackground))
	b.MustRegister("editorGroupHeader.border", Defaults{HC: contrastBorder})
	b.MustRegister("editorGroup.border", Defaults{Dark: Hex("#444444"), Light: Hex("#E7E7E7"), HC: contrastBorder})

	// status bar
	b.MustRegister("statusBar.foreground", Same(Hex("#FFFFFF")))
	statusBarBackground := b.MustRegister("statusBar.background", Defaults{Dark: Hex("#007ACC"), Light: Hex("#007ACC")})
	b.MustRegister("statusBar.border", Same(contrastBorder))
	b.MustRegister("statusBarItem.activeBackground", Same(Lit(color.White().Transparent(0.18))))
	b.MustRegister("statusBarItem.hoverBackground", Same(Lit(color.White().Transparent(0.12))))

	// activity bar
	b.MustRegister("activityBar.background", Defaults{Dark: Hex("#333333"), Light: Hex("#2C2C2C"), HC: Hex("#000000")})
	activityBarForeground := b.MustRegister("activityBar.foreground", Same(white))
	b.MustRegister("activityBar.inactiveForeground", Defaults{
		Dark:  Transparent(activityBarForeground, 0.4),
		Light: Transparent(activityBarForeground, 0.4),
		HC:    white,
	})
	b.MustRegister("activityBar.border", Same(contrastBorder))
	b.MustRegister("activityBar.activeBorder", Defaults{Dark: activityBarForeground, Light: activityBarForeground})
	b.MustRegister("activityBar.activeFocusBorder", Defaults{})
	b.MustRegister("activityBar.activeBackground", Defaults{})

	// side bar
	b.MustRegister("sideBar.background", Defaults{Dark: Hex("#252526"), Light: Hex("#F3F3F3"), HC: Hex("#000000")})
	b.MustRegister("sideBar.foreground", Defaults{})
	b.MustRegister("sideBar.border", Defaults{HC: contrastBorder})

	// title bar
	titleBarActiveForeground := b.MustRegister("titleBar.activeForeground", Defaults{Dark: Hex("#CCCCCC"), Light: Hex("#333333"), HC: Hex("#FFFFFF")})
	b.MustRegister("titleBar.inactiveForeground", Defaults{
		Dark:  Transparent(titleBarActiveForeground, 0.6),
		Light: Transparent(titleBarActiveForeground, 0.6),
	})
	titleBarActiveBackground := b.MustRegister("titleBar.activeBackground", Defaults{Dark: Hex("#3C3C3C"), Light: Hex("#DDDDDD"), HC: Hex("#000000")})
	b.MustRegister("titleBar.inactiveBackground", Defaults{
		Dark:  Transparent(titleBarActiveBackground, 0.6),
		Light: Transparent(titleBarActiveBackground, 0.6),
	})
	b.MustRegister("titleBar.border", Defaults{Dark: TransparentColor, Light: TransparentColor, HC: contrastBorder})

	// menubar
	b.MustRegister("menubar.selectionForeground", Same(titleBarActiveForeground))
	b.MustRegister("menubar.selectionBackground", Defaults{
		Dark:  Transparent(white, 0.1),
		Light: Transparent(black, 0.1),
	})
	b.MustRegister("menubar.selectionBorder", Defaults{Dark: TransparentColor, Light: TransparentColor, HC: activeContrastBorder})

	// editor lines
	b.MustRegister("editor.lineHighlightBackground", Defaults{})
	b.MustRegister("editor.lineHighlightBorder", Defaults{Dark: Hex("#282828"), Light: Hex("#eeeeee"), HC: Hex("#f38518")})

	// debug toolbar
	b.MustRegister("debugToolBar.background", Defaults{Dark: Hex("#333333"), Light: Hex("#F3F3F3"), HC: Hex("#000000")})
	b.MustRegister("debugToolBar.border", Same(contrastBorder))

	// settings editor
	b.MustRegister("settings.headerForeground", Defaults{Dark: Hex("#e7e7e7"), Light: Hex("#444444"), HC: Hex("#ffffff")})
	b.MustRegister("settings.modifiedItemIndicator", Defaults{
		Dark:  Lit(color.RGB(12, 125, 157)),
		Light: Lit(color.RGB(102, 175, 224)),
		HC:    Lit(color.RGB(0, 73, 122)),
	})
	b.MustRegister("settings.dropdownBackground", Same(selectBackground))
	b.MustRegister("settings.dropdownForeground", Same(selectForeground))
	b.MustRegister("settings.dropdownBorder", Same(selectBorder))
	b.MustRegister("settings.dropdownListBorder", Same(editorWidgetBorder))
	b.MustRegister("settings.checkboxBackground", Same(checkboxBackground))
	b.MustRegister("settings.checkboxForeground", Same(checkboxForeground))
	b.MustRegister("settings.checkboxBorder", Same(checkboxBorder))
	b.MustRegister("settings.textInputBackground", Same(inputBackground))
	b.MustRegister("settings.textInputForeground", Same(inputForeground))
	b.MustRegister("settings.textInputBorder", Same(inputBorder))
	b.MustRegister("settings.numberInputBackground", Same(inputBackground))
	b.MustRegister("settings.numberInputForeground", Same(inputForeground))
	b.MustRegister("settings.numberInputBorder", Same(inputBorder))
	focusedRowBackground := b.MustRegister("settings.focusedRowBackground", Defaults{
		Dark:  lit("#808080", 0.14),
		Light: Transparent(listFocusBackground, 0.4),
	})
	b.MustRegister("settings.rowHoverBackground", Defaults{
		Dark:  Transparent(focusedRowBackground, 0.5),
		Light: Transparent(focusedRowBackground, 0.7),
	})
	b.MustRegister("settings.focusedRowBorder", Defaults{
		Dark:  Lit(color.White().Transparent(0.12)),
		Light: Lit(color.Black().Transparent(0.12)),
		HC:    focusBorder,
	})

	// widget states used by the stylesheet template
	b.MustRegister("focusBorder.disabled", Same(Transparent(focusBorder, 0.4)))
	b.MustRegister("foreground.disabled", Same(Transparent(foreground, 0.4)))
	b.MustRegister("icon.foreground.disabled", Same(Transparent(iconForeground, 0.4)))
	b.MustRegister("checkbox.foreground.disabled", Same(Transparent(iconForeground, 0.4)))
	b.MustRegister("checkbox.border.inActive", Defaults{
		Dark:  checkboxBorder,
		Light: checkboxBorder,
		HC:    Transparent(checkboxBorder, 0.6),
	})
	b.MustRegister("checkbox.border.active", Same(checkboxBorder))
	b.MustRegister("titleBar.activeForeground.disabled", Same(Transparent(titleBarActiveForeground, 0.4)))
	b.MustRegister("statusBarItem.hoverBackground.disabled", Defaults{
		Dark:  Darken(statusBarBackground, 0.4),
		Light: Lighten(statusBarBackground, 0.4),
		HC:    statusBarBackground,
	})
	b.MustRegister("progressBar.background.disabled", Defaults{
		Dark:  Transparent(progressBarBackground, 0.3),
		Light: Transparent(progressBarBackground, 0.3),
		HC:    progressBarBackground,
	})
	b.MustRegister("button.background.active", Defaults{
		Dark:  Lighten(buttonBackground, 0.5),
		Light: Lighten(buttonBackground, 0.4),
		HC:    buttonBackground,
	})
	b.MustRegister("button.background.disabled", Defaults{
		Dark:  Transparent(buttonBackground, 0.4),
		Light: Transparent(buttonBackground, 0.4),
		HC:    buttonBackground,
	})
	b.MustRegister("button.secondaryBackground.active", Defaults{
		Dark:  Lighten(buttonSecondaryBackground, 0.7),
		Light: Darken(buttonSecondaryBackground, 0.7),
		HC:    buttonSecondaryBackground,
	})
	b.MustRegister("button.secondaryBackground.disabled", Defaults{
		Dark:  Transparent(buttonSecondaryBackground, 0.3),
		Light: Transparent(buttonSecondaryBackground, 0.3),
		HC:    buttonSecondaryBackground,
	})
	b.MustRegister("button.flatBackground.hover", Defaults{
		Dark:  Lit(color.White().Transparent(0.1)),
		Light: Lit(color.Black().Transparent(0.1)),
	})
	b.MustRegister("button.flatBackground.active", Defaults{
		Dark:  Lit(color.White().Transparent(0.2)),
		Light: Lit(color.Black().Transparent(0.2)),
	})
	b.MustRegister("tree.indentGuidesStroke.inActive", Same(Transparent(treeIndentGuidesStroke, 0.6)))
	b.MustRegister("tree.indentGuidesStroke.disabled", Same(Transparent(treeIndentGuidesStroke, 0.3)))
	b.MustRegister("inputValidation.warningBorder.disabled", Same(Transparent(inputValidationWarningBorder, 0.3)))
	b.MustRegister("inputValidation.errorBorder.disabled", Same(Transparent(inputValidationErrorBorder, 0.3)))
}
