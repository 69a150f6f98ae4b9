package vscode

import "github.com/primary-theme/primary-vscode/internal/palette"

// noForeground marks a rule that only sets a font style.
const noForeground = palette.Role(-1)

type syntaxRule struct {
	name      string
	scope     []string
	fg        palette.Role
	fontStyle string
}

// Order matters: later rules win for overlapping scopes in the editor.
var syntaxRules = []syntaxRule{
	{name: "Comment", scope: []string{"comment", "punctuation.definition.comment"}, fg: palette.Comment, fontStyle: "italic"},
	{name: "String", scope: []string{"string", "string.quoted", "string.template"}, fg: palette.String},
	{name: "Number", scope: []string{"constant.numeric"}, fg: palette.Number},
	{name: "Built-in constant", scope: []string{"constant.language", "constant.character", "constant.other"}, fg: palette.Constant},
	{name: "User-defined constant", scope: []string{"variable.other.constant"}, fg: palette.Constant},
	{name: "Variable", scope: []string{"variable", "variable.other"}, fg: palette.Variable},
	{name: "Keyword", scope: []string{"keyword", "keyword.control", "keyword.operator.new"}, fg: palette.Keyword},
	{name: "Storage", scope: []string{"storage", "storage.type", "storage.modifier"}, fg: palette.Keyword},
	{name: "Operator", scope: []string{"keyword.operator"}, fg: palette.Operator},
	{name: "Punctuation", scope: []string{"punctuation", "punctuation.separator", "punctuation.terminator"}, fg: palette.Punctuation},
	{name: "Function", scope: []string{"entity.name.function", "support.function", "meta.function-call"}, fg: palette.Function},
	{name: "Class", scope: []string{"entity.name.class", "entity.name.type", "support.class", "support.type"}, fg: palette.Type},
	{name: "Type", scope: []string{"entity.name.type", "entity.other.inherited-class", "support.type"}, fg: palette.Type},
	{name: "Tag", scope: []string{"entity.name.tag", "meta.tag"}, fg: palette.Constant},
	{name: "Attribute", scope: []string{"entity.other.attribute-name"}, fg: palette.Function},
	{name: "Property", scope: []string{"variable.other.property", "support.type.property-name"}, fg: palette.Variable},
	{name: "Import/Export", scope: []string{"keyword.control.import", "keyword.control.export", "keyword.control.from"}, fg: palette.Keyword},
	{name: "Module/Package", scope: []string{"entity.name.namespace", "entity.name.module"}, fg: palette.Type},
	{name: "Invalid", scope: []string{"invalid", "invalid.illegal"}, fg: palette.Error},
	{name: "Markdown - Heading", scope: []string{"markup.heading", "entity.name.section"}, fg: palette.Function, fontStyle: "bold"},
	{name: "Markdown - Bold", scope: []string{"markup.bold"}, fg: noForeground, fontStyle: "bold"},
	{name: "Markdown - Italic", scope: []string{"markup.italic"}, fg: noForeground, fontStyle: "italic"},
	{name: "Markdown - Link", scope: []string{"markup.underline.link", "string.other.link"}, fg: palette.Info},
	{name: "Markdown - Code", scope: []string{"markup.inline.raw", "markup.fenced_code"}, fg: palette.Constant},
	{name: "JSON - Key", scope: []string{"support.type.property-name.json", "string.json support.type.property-name.json"}, fg: palette.Function},
	{name: "CSS - Property", scope: []string{"support.type.property-name.css"}, fg: palette.Variable},
	{name: "CSS - Class/ID", scope: []string{"entity.other.attribute-name.class.css", "entity.other.attribute-name.id.css"}, fg: palette.Function},
}

func tokenColors(p palette.Palette) []TokenColor {
	out := make([]TokenColor, 0, len(syntaxRules))
	for _, r := range syntaxRules {
		scope := make([]string, len(r.scope))
		copy(scope, r.scope)

		settings := TokenSetting{FontStyle: r.fontStyle}
		if r.fg != noForeground {
			settings.Foreground = p.Color(r.fg)
		}
		out = append(out, TokenColor{Name: r.name, Scope: scope, Settings: settings})
	}
	return out
}
