package bindings_test

import (
	"strings"
	"testing"

	"github.com/edgectl/edgectl/pkg/bindings"
	fcolor "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMain(m *testing.M) {
	// Keep rendered markers free of escape codes regardless of the test
	// environment's terminal.
	fcolor.NoColor = true

	m.Run()
}

func localDevContext() bindings.RenderContext {
	return bindings.RenderContext{LocalDev: true}
}

func verdictOf(v bindings.Verdict) *bindings.Verdict {
	return &v
}

func TestDecorate_VerdictMarkers(t *testing.T) {
	t.Parallel()

	ctx := localDevContext()

	assert.Equal(t, "svc [connected]",
		bindings.Decorate("svc", verdictOf(bindings.VerdictConnected), false, ctx))
	assert.Equal(t, "svc [not connected]",
		bindings.Decorate("svc", verdictOf(bindings.VerdictNotConnected), false, ctx))
	assert.Equal(t, "svc",
		bindings.Decorate("svc", verdictOf(bindings.VerdictUnknown), false, ctx))
}

func TestDecorate_ResourceSuffixes(t *testing.T) {
	t.Parallel()

	ctx := localDevContext()

	assert.Equal(t, "db [simulated locally]", bindings.Decorate("db", nil, true, ctx))
	assert.Equal(t, "db [connected to remote resource]", bindings.Decorate("db", nil, false, ctx))
}

func TestDecorate_NoSuffixOutsideLocalDev(t *testing.T) {
	t.Parallel()

	ctx := bindings.RenderContext{LocalDev: false}

	assert.Equal(t, "db", bindings.Decorate("db", nil, true, ctx))
	assert.Equal(t, "db", bindings.Decorate("db", nil, false, ctx))
}

func TestDecorate_ProvisioningSuppressesSuffixes(t *testing.T) {
	t.Parallel()

	// Provisioning never renders resource-identity suffixes, for every
	// combination of the remaining flags.
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.String().Draw(t, "value")
		simulated := rapid.Bool().Draw(t, "simulated")
		localDev := rapid.Bool().Draw(t, "localDev")

		ctx := bindings.RenderContext{LocalDev: localDev, Provisioning: true}

		assert.Equal(t, value, bindings.Decorate(value, nil, simulated, ctx))
	})
}

func TestDecorate_VerdictExcludesResourceSuffixes(t *testing.T) {
	t.Parallel()

	// When a verdict is present the resource-identity suffixes must never
	// appear, whatever the other inputs are.
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.StringMatching(`[a-z0-9-]{0,20}`).Draw(t, "value")
		simulated := rapid.Bool().Draw(t, "simulated")
		verdict := bindings.Verdict(rapid.IntRange(0, 2).Draw(t, "verdict"))

		ctx := bindings.RenderContext{
			LocalDev:     rapid.Bool().Draw(t, "localDev"),
			Provisioning: rapid.Bool().Draw(t, "provisioning"),
		}

		decorated := bindings.Decorate(value, verdictOf(verdict), simulated, ctx)

		assert.NotContains(t, decorated, "[simulated locally]")
		assert.NotContains(t, decorated, "[connected to remote resource]")
	})
}

func TestDecorate_EmptyValue(t *testing.T) {
	t.Parallel()

	decorated := bindings.Decorate("", nil, true, localDevContext())

	assert.True(t, strings.HasSuffix(decorated, "[simulated locally]"))
}
