package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/appengine-ltd/hearthstead/internal/chem"
)

// EmptySignature is the sentinel for mixtures that normalize to nothing.
const EmptySignature = "empty"

const signatureSeparator = "|"

// SignatureOf encodes the normalized mixture as a canonical string: entries
// sorted by substance name, quantized to three decimals, pipe-joined.
// Equivalent mixtures produce identical signatures regardless of insertion
// order, and scalar multiples collapse to the same signature. Recipe memory
// depends on both properties for equality matching.
func SignatureOf(mix chem.Mixture) string {
	normalized := Normalize(mix)
	if len(normalized) == 0 {
		return EmptySignature
	}

	names := make([]string, 0, len(normalized))
	for sub := range normalized {
		names = append(names, string(sub))
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s:%.3f", name, normalized[chem.Substance(name)])
	}
	return strings.Join(parts, signatureSeparator)
}
