package sdl

import (
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Properties is a native property group ID. Zero is invalid.
type Properties uint32

// PropertyType mirrors SDL_PropertyType.
type PropertyType int

const (
	PropertyInvalid PropertyType = iota
	PropertyPointer
	PropertyString
	PropertyNumber
	PropertyFloat
	PropertyBoolean
)

func (t PropertyType) String() string {
	switch t {
	case PropertyPointer:
		return "pointer"
	case PropertyString:
		return "string"
	case PropertyNumber:
		return "number"
	case PropertyFloat:
		return "float"
	case PropertyBoolean:
		return "boolean"
	default:
		return "invalid"
	}
}

// NewProperties creates an empty property group; release it with Destroy.
func NewProperties() (Properties, error) {
	id, err := backend.CreateProperties()
	if err != nil {
		return 0, RemapError(err)
	}
	return Properties(id), nil
}

// GlobalProperties returns the process-wide group. It must not be destroyed.
func GlobalProperties() (Properties, error) {
	id, err := backend.GlobalProperties()
	if err != nil {
		return 0, RemapError(err)
	}
	return Properties(id), nil
}

func (p Properties) check(name string) error {
	if p == 0 {
		return ErrInvalidHandle
	}
	if name == "" {
		return fmt.Errorf("%w: empty property name", ErrInvalidArgument)
	}
	return nil
}

// Destroy releases the group. Destroying the zero group is a no-op.
func (p Properties) Destroy() {
	if p == 0 {
		return
	}
	backend.DestroyProperties(uint32(p))
}

func (p Properties) SetString(name, value string) error {
	if err := p.check(name); err != nil {
		return err
	}
	return RemapError(backend.SetStringProperty(uint32(p), name, value))
}

// String returns the named value, or def when it is missing or of another
// type.
func (p Properties) String(name, def string) string {
	if p.check(name) != nil {
		return def
	}
	return backend.GetStringProperty(uint32(p), name, def)
}

func (p Properties) SetNumber(name string, value int64) error {
	if err := p.check(name); err != nil {
		return err
	}
	return RemapError(backend.SetNumberProperty(uint32(p), name, value))
}

func (p Properties) Number(name string, def int64) int64 {
	if p.check(name) != nil {
		return def
	}
	return backend.GetNumberProperty(uint32(p), name, def)
}

func (p Properties) SetFloat(name string, value float32) error {
	if err := p.check(name); err != nil {
		return err
	}
	return RemapError(backend.SetFloatProperty(uint32(p), name, value))
}

func (p Properties) Float(name string, def float32) float32 {
	if p.check(name) != nil {
		return def
	}
	return backend.GetFloatProperty(uint32(p), name, def)
}

func (p Properties) SetBoolean(name string, value bool) error {
	if err := p.check(name); err != nil {
		return err
	}
	return RemapError(backend.SetBooleanProperty(uint32(p), name, value))
}

func (p Properties) Boolean(name string, def bool) bool {
	if p.check(name) != nil {
		return def
	}
	return backend.GetBooleanProperty(uint32(p), name, def)
}

func (p Properties) Has(name string) bool {
	if p.check(name) != nil {
		return false
	}
	return backend.HasProperty(uint32(p), name)
}

func (p Properties) Clear(name string) error {
	if err := p.check(name); err != nil {
		return err
	}
	return RemapError(backend.ClearProperty(uint32(p), name))
}

func (p Properties) Type(name string) PropertyType {
	if p.check(name) != nil {
		return PropertyInvalid
	}
	return PropertyType(backend.GetPropertyType(uint32(p), name))
}
