package bundle

import (
	"fmt"
	"strings"
)

// addOnWrapper builds the shape preset for add-on bundles. The wrapped code
// runs inside a function scoped to an injected global-like reference and
// writes its exports into a local container; the outro then copies every own
// key of that container onto the nested namespace path on the real global,
// creating intermediate namespace objects as needed.
func addOnWrapper(path ...string) Config {
	return Config{
		Format: FormatWrapper,
		Banner: "(function (__window) {",
		Intro:  "var exports = {};",
		Outro:  func() string { return namespaceCopy(path...) },
		Footer: "}(window));",
	}
}

// namespaceCopy generates the loop that installs the local exports onto
// __window.<path[0]>.<path[1]>..., e.g. __window.Argus.Integrations.
func namespaceCopy(path ...string) string {
	var b strings.Builder

	b.WriteString("for (var key in exports) {\n")
	b.WriteString("  if (Object.prototype.hasOwnProperty.call(exports, key)) {\n")

	ref := "__window"
	for _, part := range path {
		ref = ref + "." + part
		fmt.Fprintf(&b, "    %s = %s || {};\n", ref, ref)
	}

	fmt.Fprintf(&b, "    %s[key] = exports[key];\n", ref)
	b.WriteString("  }\n")
	b.WriteString("}")

	return b.String()
}
