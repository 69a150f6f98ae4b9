package palette

// BaseColors is the raw Primary palette a role-set is assembled from.
// Steps run from lightest to darkest in the light variant and the other way
// round in the dark variant.
type BaseColors struct {
	Gray10, Gray20, Gray30, Gray40, Gray50, Gray60, Gray70      string
	Gray80, Gray90, Gray100, Gray110, Gray120, Gray130, Gray140 string

	Red10, Red20, Red30, Red40             string
	Orange10, Orange20, Orange30, Orange40 string
	Yellow10, Yellow20, Yellow30, Yellow40 string
	Green10, Green20, Green30, Green40     string
	Blue10, Blue20, Blue30, Blue40         string
	Purple10, Purple20, Purple30, Purple40 string

	// Syntax accents
	SpecialRed, SpecialOrange, SpecialYellow, SpecialGreen string
	SpecialCyan, SpecialBlue, SpecialPurple, SpecialPink   string
}

// Primary palette for Obsidian, © Cecilia May
var lightBase = BaseColors{
	Gray10:  "#faf9f7",
	Gray20:  "#f6f5f2",
	Gray30:  "#eeece7",
	Gray40:  "#e8e6e1",
	Gray50:  "#e3e1db",
	Gray60:  "#d6d2ca",
	Gray70:  "#b6afa6",
	Gray80:  "#9a9189",
	Gray90:  "#7f7364",
	Gray100: "#66604f",
	Gray110: "#5e5848",
	Gray120: "#4d4838",
	Gray130: "#3a3022",
	Gray140: "#2b2117",

	Red10: "#c86565",
	Red20: "#c54646",
	Red30: "#ae3b3b",
	Red40: "#8c2525",

	Orange10: "#d88e5f",
	Orange20: "#e47939",
	Orange30: "#c8652a",
	Orange40: "#9d4511",

	Yellow10: "#e5c654",
	Yellow20: "#e8c72f",
	Yellow30: "#c7a511",
	Yellow40: "#9d7e03",

	Green10: "#73a77c",
	Green20: "#4b9764",
	Green30: "#3b8151",
	Green40: "#1d6338",

	Blue10: "#6a9ab3",
	Blue20: "#2f93c0",
	Blue30: "#25779a",
	Blue40: "#0f5875",

	Purple10: "#b7a0ce",
	Purple20: "#957bb1",
	Purple30: "#715699",
	Purple40: "#45367e",

	SpecialRed:    "#df5a5a",
	SpecialOrange: "#e7823f",
	SpecialYellow: "#f8c52e",
	SpecialGreen:  "#57b984",
	SpecialCyan:   "#7cb4ce",
	SpecialBlue:   "#63a4c6",
	SpecialPurple: "#876ac1",
	SpecialPink:   "#d9667a",
}

var darkBase = BaseColors{
	Gray10:  "#e4d2c1",
	Gray20:  "#c9af96",
	Gray30:  "#b9a399",
	Gray40:  "#968575",
	Gray50:  "#7a6856",
	Gray60:  "#544333",
	Gray70:  "#3f3126",
	Gray80:  "#312822",
	Gray90:  "#2b251d",
	Gray100: "#27241f",
	Gray110: "#25231e",
	Gray120: "#24221d",
	Gray130: "#1e1c17",
	Gray140: "#171410",

	Red10: "#f6aba9",
	Red20: "#f38f8d",
	Red30: "#ef7976",
	Red40: "#d44941",

	Orange10: "#e0a471",
	Orange20: "#e1912e",
	Orange30: "#d18128",
	Orange40: "#b46c1d",

	Yellow10: "#ead080",
	Yellow20: "#e7c344",
	Yellow30: "#caaa2f",
	Yellow40: "#ae9120",

	Green10: "#57ce76",
	Green20: "#37c058",
	Green30: "#1eb83a",
	Green40: "#17ab31",

	Blue10: "#73c2d6",
	Blue20: "#59bdd8",
	Blue30: "#3ca3bc",
	Blue40: "#2c8ca7",

	Purple10: "#9f93d3",
	Purple20: "#877ac7",
	Purple30: "#756fc2",
	Purple40: "#6d66bf",

	SpecialRed:    "#e45742",
	SpecialOrange: "#eea359",
	SpecialYellow: "#f9cf51",
	SpecialGreen:  "#64c271",
	SpecialCyan:   "#5bafb7",
	SpecialBlue:   "#6389bf",
	SpecialPurple: "#8b71b9",
	SpecialPink:   "#e06c8a",
}

// LightBase returns the raw light palette.
func LightBase() BaseColors { return lightBase }

// DarkBase returns the raw dark palette.
func DarkBase() BaseColors { return darkBase }
