package vscode

import "github.com/primary-theme/primary-vscode/internal/palette"

// SourceKind says how a Surface derives its color.
type SourceKind int

const (
	// FromRole copies one palette role.
	FromRole SourceKind = iota
	// FromRoleAlpha appends a two digit hex alpha to a palette role.
	FromRoleAlpha
	// FromVariantLiteral picks one of two fixed colors by variant.
	FromVariantLiteral
	// FromVariantRole picks one of two palette roles by variant.
	FromVariantRole
)

// Surface is one entry of the workbench color table.
type Surface struct {
	Key  string
	Kind SourceKind

	Role     palette.Role // light role for FromVariantRole
	DarkRole palette.Role
	Alpha    string

	LightLiteral string
	DarkLiteral  string
}

// Resolve computes the surface color for p rendered as variant v.
func (s Surface) Resolve(p palette.Palette, v Variant) string {
	switch s.Kind {
	case FromRoleAlpha:
		return p.Color(s.Role) + s.Alpha
	case FromVariantLiteral:
		if v.IsLight() {
			return s.LightLiteral
		}
		return s.DarkLiteral
	case FromVariantRole:
		if v.IsLight() {
			return p.Color(s.Role)
		}
		return p.Color(s.DarkRole)
	default:
		return p.Color(s.Role)
	}
}

func role(key string, r palette.Role) Surface {
	return Surface{Key: key, Kind: FromRole, Role: r}
}

func alpha(key string, r palette.Role, suffix string) Surface {
	return Surface{Key: key, Kind: FromRoleAlpha, Role: r, Alpha: suffix}
}

func literal(key, light, dark string) Surface {
	return Surface{Key: key, Kind: FromVariantLiteral, LightLiteral: light, DarkLiteral: dark}
}

func byVariant(key string, light, dark palette.Role) Surface {
	return Surface{Key: key, Kind: FromVariantRole, Role: light, DarkRole: dark}
}

// Surfaces returns a copy of the workbench color table in output order.
func Surfaces() []Surface {
	out := make([]Surface, len(surfaces))
	copy(out, surfaces)
	return out
}

// SurfaceKeys returns the fixed key set every composed theme carries.
func SurfaceKeys() []string {
	keys := make([]string, 0, len(surfaces))
	for _, s := range surfaces {
		keys = append(keys, s.Key)
	}
	return keys
}

var surfaces = []Surface{
	// Base colors
	role("focusBorder", palette.Accent),
	role("foreground", palette.Foreground),
	literal("widget.shadow", "#00000010", "#00000030"),
	role("selection.background", palette.Selection),
	role("descriptionForeground", palette.ForegroundMuted),
	role("errorForeground", palette.Error),

	// Text colors
	role("textLink.foreground", palette.Info),
	role("textLink.activeForeground", palette.Info),
	role("textPreformat.foreground", palette.Constant),

	// Button
	role("button.background", palette.ButtonBackground),
	role("button.foreground", palette.ButtonForeground),
	role("button.hoverBackground", palette.ButtonHover),
	role("button.secondaryBackground", palette.BackgroundAlt),
	role("button.secondaryForeground", palette.Foreground),
	role("button.secondaryHoverBackground", palette.ButtonHover),

	// Dropdown
	role("dropdown.background", palette.BackgroundAlt),
	role("dropdown.border", palette.Border),
	role("dropdown.foreground", palette.Foreground),

	// Input
	role("input.background", palette.BackgroundAlt),
	role("input.border", palette.Border),
	role("input.foreground", palette.Foreground),
	role("input.placeholderForeground", palette.ForegroundFaint),
	role("inputOption.activeBorder", palette.Accent),
	role("inputValidation.errorBackground", palette.Error),
	role("inputValidation.errorBorder", palette.Error),
	role("inputValidation.infoBackground", palette.Info),
	role("inputValidation.infoBorder", palette.Info),
	role("inputValidation.warningBackground", palette.Warning),
	role("inputValidation.warningBorder", palette.Warning),

	// Scrollbar
	literal("scrollbar.shadow", "#00000020", "#00000040"),
	alpha("scrollbarSlider.background", palette.Border, "80"),
	alpha("scrollbarSlider.hoverBackground", palette.BorderHover, "80"),
	alpha("scrollbarSlider.activeBackground", palette.BorderHover, "A0"),

	// Badge
	role("badge.background", palette.Accent),
	byVariant("badge.foreground", palette.Background, palette.Foreground),

	// Progress bar
	role("progressBar.background", palette.Accent),

	// Lists and trees
	alpha("list.activeSelectionBackground", palette.Accent, "40"),
	role("list.activeSelectionForeground", palette.Foreground),
	alpha("list.dropBackground", palette.Accent, "20"),
	alpha("list.focusBackground", palette.Accent, "30"),
	role("list.focusForeground", palette.Foreground),
	role("list.highlightForeground", palette.Info),
	role("list.hoverBackground", palette.BackgroundAlt),
	role("list.hoverForeground", palette.Foreground),
	alpha("list.inactiveSelectionBackground", palette.Accent, "20"),
	role("list.inactiveSelectionForeground", palette.Foreground),
	role("list.warningForeground", palette.Warning),
	role("list.errorForeground", palette.Error),

	// Activity Bar
	role("activityBar.background", palette.BackgroundSecondary),
	role("activityBar.foreground", palette.Foreground),
	role("activityBar.inactiveForeground", palette.ForegroundFaint),
	role("activityBar.border", palette.Border),
	role("activityBarBadge.background", palette.Accent),
	byVariant("activityBarBadge.foreground", palette.Background, palette.Foreground),

	// Side Bar
	role("sideBar.background", palette.BackgroundAlt),
	role("sideBar.foreground", palette.ForegroundMuted),
	role("sideBar.border", palette.Border),
	role("sideBarTitle.foreground", palette.Foreground),
	role("sideBarSectionHeader.background", palette.BackgroundSecondary),
	role("sideBarSectionHeader.foreground", palette.Foreground),

	// Editor
	role("editor.background", palette.Background),
	role("editor.foreground", palette.Foreground),
	role("editorLineNumber.foreground", palette.ForegroundFaint),
	role("editorLineNumber.activeForeground", palette.ForegroundMuted),
	role("editorCursor.foreground", palette.CursorColor),
	role("editor.selectionBackground", palette.Selection),
	alpha("editor.inactiveSelectionBackground", palette.Selection, "80"),
	alpha("editor.selectionHighlightBackground", palette.FindMatch, "20"),
	alpha("editor.wordHighlightBackground", palette.FindMatch, "20"),
	alpha("editor.wordHighlightStrongBackground", palette.FindMatch, "30"),
	alpha("editor.findMatchBackground", palette.FindMatch, "40"),
	alpha("editor.findMatchHighlightBackground", palette.FindMatch, "25"),
	alpha("editor.findRangeHighlightBackground", palette.FindMatch, "15"),
	alpha("editor.hoverHighlightBackground", palette.FindMatch, "15"),
	role("editor.lineHighlightBackground", palette.LineHighlight),
	role("editor.lineHighlightBorder", palette.LineHighlight),
	role("editorLink.activeForeground", palette.Info),
	role("editor.rangeHighlightBackground", palette.Selection),

	// Editor Widget
	role("editorWidget.background", palette.BackgroundAlt),
	role("editorWidget.border", palette.Border),
	role("editorSuggestWidget.background", palette.BackgroundAlt),
	role("editorSuggestWidget.border", palette.Border),
	role("editorSuggestWidget.foreground", palette.Foreground),
	role("editorSuggestWidget.highlightForeground", palette.Info),
	alpha("editorSuggestWidget.selectedBackground", palette.Accent, "30"),

	// Editor Gutter
	role("editorGutter.background", palette.Background),
	role("editorGutter.modifiedBackground", palette.Info),
	role("editorGutter.addedBackground", palette.Success),
	role("editorGutter.deletedBackground", palette.Error),

	// Diff Editor
	alpha("diffEditor.insertedTextBackground", palette.Success, "20"),
	alpha("diffEditor.removedTextBackground", palette.Error, "20"),

	// Editor Overview Ruler
	role("editorOverviewRuler.border", palette.Border),
	role("editorOverviewRuler.modifiedForeground", palette.Info),
	role("editorOverviewRuler.addedForeground", palette.Success),
	role("editorOverviewRuler.deletedForeground", palette.Error),
	role("editorOverviewRuler.errorForeground", palette.Error),
	role("editorOverviewRuler.warningForeground", palette.Warning),
	role("editorOverviewRuler.infoForeground", palette.Info),
	role("editorOverviewRuler.bracketMatchForeground", palette.Accent),

	// Editor Brackets
	alpha("editorBracketMatch.background", palette.FindMatch, "30"),
	role("editorBracketMatch.border", palette.Accent),

	// Peek View
	role("peekView.border", palette.Accent),
	role("peekViewEditor.background", palette.BackgroundAlt),
	role("peekViewEditor.matchHighlightBackground", palette.FindMatch),
	role("peekViewResult.background", palette.BackgroundSecondary),
	role("peekViewResult.matchHighlightBackground", palette.FindMatch),
	alpha("peekViewResult.selectionBackground", palette.Accent, "40"),
	role("peekViewTitle.background", palette.BackgroundSecondary),
	role("peekViewTitleDescription.foreground", palette.ForegroundMuted),
	role("peekViewTitleLabel.foreground", palette.Foreground),

	// Merge Conflicts
	alpha("merge.currentHeaderBackground", palette.Info, "40"),
	alpha("merge.incomingHeaderBackground", palette.Success, "40"),
	alpha("merge.currentContentBackground", palette.Info, "20"),
	alpha("merge.incomingContentBackground", palette.Success, "20"),

	// Panel
	role("panel.background", palette.BackgroundAlt),
	role("panel.border", palette.Border),
	role("panelTitle.activeBorder", palette.Accent),
	role("panelTitle.activeForeground", palette.Foreground),
	role("panelTitle.inactiveForeground", palette.ForegroundMuted),

	// Status Bar
	role("statusBar.background", palette.BackgroundSecondary),
	role("statusBar.foreground", palette.ForegroundMuted),
	role("statusBar.border", palette.Border),
	role("statusBar.debuggingBackground", palette.Warning),
	byVariant("statusBar.debuggingForeground", palette.Background, palette.Foreground),
	role("statusBar.noFolderBackground", palette.BackgroundSecondary),
	alpha("statusBarItem.activeBackground", palette.Accent, "40"),
	alpha("statusBarItem.hoverBackground", palette.Accent, "20"),

	// Title Bar
	role("titleBar.activeBackground", palette.BackgroundSecondary),
	role("titleBar.activeForeground", palette.Foreground),
	role("titleBar.inactiveBackground", palette.BackgroundSecondary),
	role("titleBar.inactiveForeground", palette.ForegroundFaint),
	role("titleBar.border", palette.Border),

	// Menu Bar
	role("menubar.selectionForeground", palette.Foreground),
	alpha("menubar.selectionBackground", palette.Accent, "30"),
	role("menu.foreground", palette.Foreground),
	role("menu.background", palette.BackgroundAlt),
	role("menu.selectionForeground", palette.Foreground),
	alpha("menu.selectionBackground", palette.Accent, "30"),
	role("menu.separatorBackground", palette.Border),

	// Notification
	role("notificationCenter.border", palette.Border),
	role("notificationCenterHeader.foreground", palette.Foreground),
	role("notificationCenterHeader.background", palette.BackgroundSecondary),
	role("notificationToast.border", palette.Border),
	role("notifications.foreground", palette.Foreground),
	role("notifications.background", palette.BackgroundAlt),
	role("notifications.border", palette.Border),
	role("notificationLink.foreground", palette.Info),

	// Extensions
	role("extensionButton.prominentBackground", palette.Accent),
	byVariant("extensionButton.prominentForeground", palette.Background, palette.Foreground),
	role("extensionButton.prominentHoverBackground", palette.AccentHover),

	// Quick Picker
	role("pickerGroup.border", palette.Border),
	role("pickerGroup.foreground", palette.Accent),

	// Integrated Terminal
	role("terminal.foreground", palette.Foreground),
	byVariant("terminal.ansiBlack", palette.BackgroundSecondary, palette.Background),
	role("terminal.ansiRed", palette.Error),
	role("terminal.ansiGreen", palette.Success),
	role("terminal.ansiYellow", palette.Warning),
	role("terminal.ansiBlue", palette.Info),
	role("terminal.ansiMagenta", palette.Constant),
	role("terminal.ansiCyan", palette.Function),
	role("terminal.ansiWhite", palette.Foreground),
	role("terminal.ansiBrightBlack", palette.ForegroundFaint),
	role("terminal.ansiBrightRed", palette.Error),
	role("terminal.ansiBrightGreen", palette.Success),
	role("terminal.ansiBrightYellow", palette.Warning),
	role("terminal.ansiBrightBlue", palette.Info),
	role("terminal.ansiBrightMagenta", palette.Constant),
	role("terminal.ansiBrightCyan", palette.Function),
	role("terminal.ansiBrightWhite", palette.Foreground),

	// Debug
	role("debugToolBar.background", palette.BackgroundAlt),
	role("debugToolBar.border", palette.Border),

	// Welcome Page
	role("welcomePage.buttonBackground", palette.BackgroundAlt),
	role("welcomePage.buttonHoverBackground", palette.ButtonHover),

	// Git
	role("gitDecoration.modifiedResourceForeground", palette.Info),
	role("gitDecoration.deletedResourceForeground", palette.Error),
	role("gitDecoration.untrackedResourceForeground", palette.Success),
	role("gitDecoration.ignoredResourceForeground", palette.ForegroundFaint),
	role("gitDecoration.conflictingResourceForeground", palette.Warning),

	// Settings Editor
	role("settings.headerForeground", palette.Foreground),
	role("settings.modifiedItemIndicator", palette.Info),

	// Breadcrumbs
	role("breadcrumb.foreground", palette.ForegroundMuted),
	role("breadcrumb.background", palette.Background),
	role("breadcrumb.focusForeground", palette.Foreground),
	role("breadcrumb.activeSelectionForeground", palette.Foreground),
	role("breadcrumbPicker.background", palette.BackgroundAlt),

	// Tabs
	role("tab.activeBackground", palette.Background),
	role("tab.activeForeground", palette.Foreground),
	role("tab.activeBorder", palette.Accent),
	role("tab.activeBorderTop", palette.Accent),
	role("tab.inactiveBackground", palette.BackgroundAlt),
	role("tab.inactiveForeground", palette.ForegroundMuted),
	role("tab.border", palette.Border),
	role("tab.hoverBackground", palette.ButtonHover),
	role("tab.hoverForeground", palette.Foreground),

	// Editor Group
	role("editorGroup.border", palette.Border),
	role("editorGroupHeader.noTabsBackground", palette.BackgroundAlt),
	role("editorGroupHeader.tabsBackground", palette.BackgroundAlt),
	role("editorGroupHeader.tabsBorder", palette.Border),
	alpha("editorGroup.dropBackground", palette.Accent, "20"),

	// Symbol Icons
	role("symbolIcon.arrayForeground", palette.Foreground),
	role("symbolIcon.booleanForeground", palette.Constant),
	role("symbolIcon.classForeground", palette.Type),
	role("symbolIcon.colorForeground", palette.Constant),
	role("symbolIcon.constantForeground", palette.Constant),
	role("symbolIcon.constructorForeground", palette.Function),
	role("symbolIcon.enumeratorForeground", palette.Type),
	role("symbolIcon.enumeratorMemberForeground", palette.Constant),
	role("symbolIcon.eventForeground", palette.Warning),
	role("symbolIcon.fieldForeground", palette.Variable),
	role("symbolIcon.fileForeground", palette.Foreground),
	role("symbolIcon.folderForeground", palette.Foreground),
	role("symbolIcon.functionForeground", palette.Function),
	role("symbolIcon.interfaceForeground", palette.Type),
	role("symbolIcon.keyForeground", palette.Constant),
	role("symbolIcon.keywordForeground", palette.Keyword),
	role("symbolIcon.methodForeground", palette.Function),
	role("symbolIcon.moduleForeground", palette.Type),
	role("symbolIcon.namespaceForeground", palette.Type),
	role("symbolIcon.nullForeground", palette.Constant),
	role("symbolIcon.numberForeground", palette.Number),
	role("symbolIcon.objectForeground", palette.Variable),
	role("symbolIcon.operatorForeground", palette.Operator),
	role("symbolIcon.packageForeground", palette.Type),
	role("symbolIcon.propertyForeground", palette.Variable),
	role("symbolIcon.referenceForeground", palette.Info),
	role("symbolIcon.snippetForeground", palette.String),
	role("symbolIcon.stringForeground", palette.String),
	role("symbolIcon.structForeground", palette.Type),
	role("symbolIcon.textForeground", palette.Foreground),
	role("symbolIcon.typeParameterForeground", palette.Type),
	role("symbolIcon.unitForeground", palette.Constant),
	role("symbolIcon.variableForeground", palette.Variable),

	// Chart colors
	role("charts.foreground", palette.Foreground),
	role("charts.lines", palette.Border),
	role("charts.red", palette.Error),
	role("charts.blue", palette.Info),
	role("charts.yellow", palette.Warning),
	role("charts.orange", palette.Warning),
	role("charts.green", palette.Success),
	role("charts.purple", palette.Constant),
}
