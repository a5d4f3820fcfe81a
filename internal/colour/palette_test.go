package colour

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "six digits with hash",
			input: "#3A86FF",
			want:  RGB{R: 58, G: 134, B: 255},
		},
		{
			name:  "six digits without hash",
			input: "3a86ff",
			want:  RGB{R: 58, G: 134, B: 255},
		},
		{
			name:  "shorthand",
			input: "#fa0",
			want:  RGB{R: 255, G: 170, B: 0},
		},
		{
			name:  "shorthand without hash",
			input: "FFF",
			want:  White,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "four digits",
			input:   "#1234",
			wantErr: true,
		},
		{
			name:    "non hex digit",
			input:   "#12345g",
			wantErr: true,
		},
		{
			name:    "double hash",
			input:   "##123456",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFormat), "expected ErrInvalidFormat, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "scenario", rgb: RGB{R: 58, G: 134, B: 255}, want: "#3a86ff"},
		{name: "black", rgb: Black, want: "#000000"},
		{name: "white", rgb: White, want: "#ffffff"},
		{name: "zero padded", rgb: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rgb.Hex())
		})
	}
}

func TestHexNormalisationIsIdempotent(t *testing.T) {
	for _, input := range []string{"#3A86FF", "abc", "#ABC", "000000", "#fFfFfF"} {
		c, err := ParseHex(input)
		require.NoError(t, err)

		once := c.Hex()
		assert.Regexp(t, `^#[0-9a-f]{6}$`, once)

		again, err := ParseHex(once)
		require.NoError(t, err)
		assert.Equal(t, once, again.Hex(), "input %s", input)
	}
}

func TestRGBImplementsColor(t *testing.T) {
	r, g, b, a := RGB{R: 255, G: 0, B: 128}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "primary", RoleName(0))
	assert.Equal(t, "secondary", RoleName(1))
	assert.Equal(t, "accent", RoleName(2))
	assert.Equal(t, "color-4", RoleName(3))
	assert.Equal(t, "color-10", RoleName(9))
}

func TestRoleIndexInvertsRoleName(t *testing.T) {
	for i := range 12 {
		got, ok := RoleIndex(RoleName(i))
		require.True(t, ok, RoleName(i))
		assert.Equal(t, i, got)
	}

	for _, name := range []string{"", "background", "color-3", "color-x", "color-"} {
		_, ok := RoleIndex(name)
		assert.False(t, ok, name)
	}
}

func TestPaletteByRole(t *testing.T) {
	p := NewPalette([]RGB{{R: 255}, {G: 255}, {B: 255}, White})

	c, ok := p.ByRole("accent")
	require.True(t, ok)
	assert.Equal(t, RGB{B: 255}, c)

	c, ok = p.ByRole("color-4")
	require.True(t, ok)
	assert.Equal(t, White, c)

	_, ok = p.ByRole("color-5")
	assert.False(t, ok)
}

func TestPaletteRoles(t *testing.T) {
	p := NewPalette([]RGB{{R: 255}, {G: 255}, {B: 255}, White})
	roles := p.Roles()

	require.Len(t, roles, 4)
	assert.Equal(t, NamedColour{Role: "primary", RGB: RGB{R: 255}}, roles[0])
	assert.Equal(t, "color-4", roles[3].Role)
}

func TestPaletteGet(t *testing.T) {
	p := NewPalette([]RGB{{R: 255}, {G: 255}})

	c, err := p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, RGB{G: 255}, c)

	_, err = p.Get(2)
	assert.Error(t, err)
	_, err = p.Get(-1)
	assert.Error(t, err)
}

func TestPaletteAll(t *testing.T) {
	p := NewPalette([]RGB{{R: 1}, {R: 2}, {R: 3}})

	var seen []uint8
	for i, c := range p.All() {
		seen = append(seen, c.R)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []uint8{1, 2}, seen)
}

func TestPaletteToHex(t *testing.T) {
	p := NewPalette([]RGB{{R: 255}, {G: 255}, {B: 255}})
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, p.ToHex())
}

func TestPaletteToJSON(t *testing.T) {
	p := NewPalette([]RGB{{R: 255}, {G: 255}})

	data, err := p.ToJSON()
	require.NoError(t, err)

	out := string(data)
	for _, want := range []string{
		`"count": 2`,
		`"name": "primary"`,
		`"name": "secondary"`,
		`"hex": "#ff0000"`,
		`"hex": "#00ff00"`,
		`"h": 120`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestPaletteString(t *testing.T) {
	assert.Equal(t, "Empty palette", NewPalette(nil).String())

	s := NewPalette([]RGB{{R: 58, G: 134, B: 255}}).String()
	assert.True(t, strings.HasPrefix(s, "Palette with 1 colors:"))
	assert.Contains(t, s, "#3a86ff")
	assert.Contains(t, s, "primary")
}
