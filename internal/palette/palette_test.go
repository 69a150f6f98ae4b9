package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalettesComplete(t *testing.T) {
	tests := []struct {
		name    string
		palette Palette
	}{
		{name: "light", palette: Light()},
		{name: "dark", palette: Dark()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.palette.Validate())
			for _, r := range Roles() {
				assert.NotEmpty(t, tt.palette.Color(r), "role %s", r)
			}
		})
	}
}

func TestRoleAssignments(t *testing.T) {
	light := Light()
	dark := Dark()

	assert.Equal(t, "#2f93c0", light.Accent)
	assert.Equal(t, "#d6d2ca", light.Border)
	assert.Equal(t, "#f6f5f2", light.Background)
	assert.Equal(t, "#d6d2ca50", light.Selection)
	assert.Equal(t, "#27241f", dark.Background)
	assert.Equal(t, "#24221d", dark.BackgroundSecondary)
	assert.Equal(t, "#54433350", dark.Selection)
	assert.Equal(t, "#544333", dark.BorderHover)
}

func TestRolesClosedSet(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, 31)

	seen := make(map[string]bool)
	for _, r := range roles {
		name := r.String()
		assert.False(t, seen[name], "duplicate role name %s", name)
		seen[name] = true

		parsed, err := ParseRole(name)
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	assert.Equal(t, "accent", Accent.String())
	assert.Equal(t, "cursorColor", CursorColor.String())
	assert.Equal(t, "Role(99)", Role(99).String())
}

func TestParseRoleUnknown(t *testing.T) {
	_, err := ParseRole("shadow")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestWith(t *testing.T) {
	p := Light()
	q := p.With(Accent, "#000000")

	assert.Equal(t, "#2f93c0", p.Accent, "With must not mutate the receiver")
	assert.Equal(t, "#000000", q.Accent)
	assert.Equal(t, p, p.With(Role(-1), "#ffffff"))
}

func TestValidateMissingRole(t *testing.T) {
	for _, r := range Roles() {
		t.Run(r.String(), func(t *testing.T) {
			err := Light().With(r, "").Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIncompletePalette))
			assert.Contains(t, err.Error(), r.String())
		})
	}
}

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "rgb", input: "#2f93c0"},
		{name: "rgba", input: "#d6d2ca50"},
		{name: "uppercase alpha", input: "#d6d2caA0"},
		{name: "no hash", input: "2f93c0a", wantErr: true},
		{name: "short", input: "#fff", wantErr: true},
		{name: "bad digits", input: "#zz93c0", wantErr: true},
		{name: "bad alpha", input: "#2f93c0zz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInvalidColorNamesRole(t *testing.T) {
	err := Dark().With(Comment, "grey").Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Contains(t, err.Error(), "comment")
}

func TestForVariant(t *testing.T) {
	assert.Equal(t, Light(), ForVariant(true))
	assert.Equal(t, Dark(), ForVariant(false))
}

func TestBaseColorsValid(t *testing.T) {
	for _, base := range []BaseColors{LightBase(), DarkBase()} {
		for _, c := range []string{
			base.Gray10, base.Gray140, base.Red10, base.Orange40, base.Yellow20,
			base.Green30, base.Blue20, base.Purple40, base.SpecialPink, base.SpecialCyan,
		} {
			assert.NoError(t, ValidateColor(c))
		}
	}
}
