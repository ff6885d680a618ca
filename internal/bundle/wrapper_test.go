package bundle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOnWrapperFiveParts(t *testing.T) {
	w := addOnWrapper("Argus", "Integrations")

	require.Equal(t, "(function (__window) {", w.Banner)
	require.Equal(t, "var exports = {};", w.Intro)
	require.Equal(t, "}(window));", w.Footer)
	require.NotNil(t, w.Outro)

	outro := w.Outro()
	require.Contains(t, outro, "for (var key in exports)")
	require.Contains(t, outro, "Object.prototype.hasOwnProperty.call(exports, key)")
	require.Contains(t, outro, "__window.Argus = __window.Argus || {};")
	require.Contains(t, outro, "__window.Argus.Integrations = __window.Argus.Integrations || {};")
	require.Contains(t, outro, "__window.Argus.Integrations[key] = exports[key];")
}

func TestNamespaceCopyCreatesIntermediateObjects(t *testing.T) {
	out := namespaceCopy("A", "B", "C")

	// each namespace level is initialised before the deepest one is assigned
	first := strings.Index(out, "__window.A = __window.A || {};")
	second := strings.Index(out, "__window.A.B = __window.A.B || {};")
	third := strings.Index(out, "__window.A.B.C = __window.A.B.C || {};")
	assign := strings.Index(out, "__window.A.B.C[key] = exports[key];")

	require.True(t, first >= 0 && second > first && third > second && assign > third)
}

func TestOutroIsRegeneratedPerInvocation(t *testing.T) {
	w := addOnWrapper("Argus", "Integrations")

	require.Equal(t, w.Outro(), w.Outro())
}
