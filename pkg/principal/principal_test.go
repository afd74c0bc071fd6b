package principal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// component is a test helper view of one accessor result.
type component struct {
	value   string
	present bool
}

func comp(value string, present bool) component { return component{value, present} }

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		seps     Separators
		primary  component
		instance component
		realm    component
	}{
		{
			name:     "user principal",
			input:    "jennifer@ATHENA.MIT.EDU",
			seps:     DefaultSeparators(),
			primary:  comp("jennifer", true),
			instance: comp("", false),
			realm:    comp("ATHENA.MIT.EDU", true),
		},
		{
			name:     "admin instance",
			input:    "jennifer/admin@ATHENA.MIT.EDU",
			seps:     DefaultSeparators(),
			primary:  comp("jennifer", true),
			instance: comp("admin", true),
			realm:    comp("ATHENA.MIT.EDU", true),
		},
		{
			name:     "host principal",
			input:    "host/daffodil.mit.edu@EXAMPLE.COM",
			seps:     DefaultSeparators(),
			primary:  comp("host", true),
			instance: comp("daffodil.mit.edu", true),
			realm:    comp("EXAMPLE.COM", true),
		},
		{
			name:     "no realm separator is realm only",
			input:    "justarealm",
			seps:     DefaultSeparators(),
			primary:  comp("", false),
			instance: comp("", false),
			realm:    comp("justarealm", true),
		},
		{
			name:     "multi-component instance stays intact",
			input:    "p/i1/i2@R",
			seps:     DefaultSeparators(),
			primary:  comp("p", true),
			instance: comp("i1/i2", true),
			realm:    comp("R", true),
		},
		{
			name:     "custom separators",
			input:    "p:i#r",
			seps:     Separators{Realm: "#", Component: ":"},
			primary:  comp("p", true),
			instance: comp("i", true),
			realm:    comp("r", true),
		},
		{
			name:     "component separator only after realm separator",
			input:    "jennifer@EXAMPLE.COM/extra",
			seps:     DefaultSeparators(),
			primary:  comp("jennifer", true),
			instance: comp("", false),
			realm:    comp("EXAMPLE.COM/extra", true),
		},
		{
			name:     "identical separators follow index order",
			input:    "p@i@r",
			seps:     Separators{Realm: "@", Component: "@"},
			primary:  comp("p", true),
			instance: comp("", false),
			realm:    comp("i@r", true),
		},
		{
			name:     "empty name",
			input:    "",
			seps:     DefaultSeparators(),
			primary:  comp("", false),
			instance: comp("", false),
			realm:    comp("", true),
		},
		{
			name:     "empty realm after separator",
			input:    "jennifer@",
			seps:     DefaultSeparators(),
			primary:  comp("jennifer", true),
			instance: comp("", false),
			realm:    comp("", true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(tt.input, tt.seps)

			primary, ok := p.Primary()
			assert.Equal(t, tt.primary.present, ok, "primary presence")
			assert.Equal(t, tt.primary.value, primary, "primary value")

			instance, ok := p.Instance()
			assert.Equal(t, tt.instance.present, ok, "instance presence")
			assert.Equal(t, tt.instance.value, instance, "instance value")

			realm, ok := p.Realm()
			assert.Equal(t, tt.realm.present, ok, "realm presence")
			assert.Equal(t, tt.realm.value, realm, "realm value")

			assert.Equal(t, tt.input, p.Name())
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	seps := DefaultSeparators()
	first := Parse("host/daffodil.mit.edu@EXAMPLE.COM", seps)
	second := Parse("host/daffodil.mit.edu@EXAMPLE.COM", seps)
	assert.Equal(t, first, second)
}

func TestSeparatorsFromEnv(t *testing.T) {
	t.Run("overrides applied", func(t *testing.T) {
		t.Setenv(EnvRealmSeparator, "#")
		t.Setenv(EnvComponentSeparator, ":")

		seps := SeparatorsFromEnv(DefaultSeparators())
		assert.Equal(t, "#", seps.Realm)
		assert.Equal(t, ":", seps.Component)
	})

	t.Run("unset keeps base", func(t *testing.T) {
		t.Setenv(EnvRealmSeparator, "")
		t.Setenv(EnvComponentSeparator, "")

		seps := SeparatorsFromEnv(DefaultSeparators())
		assert.Equal(t, DefaultSeparators(), seps)
	})
}
