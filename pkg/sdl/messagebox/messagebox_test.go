package messagebox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		buttons []Button
		ok      bool
	}{
		{"none", nil, false},
		{"single", []Button{{ID: 1, Text: "OK"}}, true},
		{"duplicate id", []Button{{ID: 1, Text: "A"}, {ID: 1, Text: "B"}}, false},
		{"one of each default", []Button{
			{ID: 1, Text: "OK", Flags: ReturnKeyDefault},
			{ID: 2, Text: "Cancel", Flags: EscapeKeyDefault},
		}, true},
		{"two return defaults", []Button{
			{ID: 1, Text: "A", Flags: ReturnKeyDefault},
			{ID: 2, Text: "B", Flags: ReturnKeyDefault},
		}, false},
		{"two escape defaults", []Button{
			{ID: 1, Text: "A", Flags: EscapeKeyDefault | ReturnKeyDefault},
			{ID: 2, Text: "B", Flags: EscapeKeyDefault},
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Data{Title: "t", Buttons: tt.buttons}
			err := d.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
			}
		})
	}
}

func TestValidateRejectsEmbeddedNUL(t *testing.T) {
	ok := []Button{{ID: 1, Text: "OK"}}
	for name, d := range map[string]Data{
		"title":   {Title: "a\x00b", Buttons: ok},
		"message": {Title: "t", Message: "line\x00hidden", Buttons: ok},
		"button":  {Title: "t", Buttons: []Button{{ID: 3, Text: "O\x00K"}}},
	} {
		t.Run(name, func(t *testing.T) {
			err := d.Validate()
			assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
			assert.ErrorContains(t, err, "NUL")
		})
	}

	assert.ErrorIs(t, ShowSimple(Information, "t", "a\x00b", nil), sdl.ErrInvalidArgument)
}

func TestShowRejectsBeforeNative(t *testing.T) {
	_, err := Show(Data{Title: "t", Message: "m"})
	assert.ErrorIs(t, err, sdl.ErrInvalidArgument)
}

func TestNative(t *testing.T) {
	d := Data{
		Flags:   Warning,
		Title:   "title",
		Message: "body",
		Buttons: []Button{{ID: 7, Text: "Go", Flags: ReturnKeyDefault}},
		Colors:  &ColorScheme{Text: Color{R: 1, G: 2, B: 3}},
	}
	n := d.native()
	assert.Equal(t, uint32(Warning), n.Flags)
	assert.Nil(t, n.Window)
	require.Len(t, n.Buttons, 1)
	assert.Equal(t, 7, n.Buttons[0].ID)
	assert.Equal(t, uint32(ReturnKeyDefault), n.Buttons[0].Flags)
	require.NotNil(t, n.Colors)
	assert.Equal(t, [3]uint8{1, 2, 3}, n.Colors[1])
}
