package bindings

import "github.com/edgectl/edgectl/pkg/devregistry"

// Verdict is the resolved answer to "is the peer worker referenced by this
// binding reachable right now." Verdicts are recomputed on every render and
// never cached.
type Verdict int

const (
	// VerdictUnknown means the registry was unavailable; no verdict is rendered.
	VerdictUnknown Verdict = iota
	// VerdictConnected means the peer worker is running and exposes the
	// required capability.
	VerdictConnected
	// VerdictNotConnected means the peer worker is not running, or is running
	// without the required capability.
	VerdictNotConnected
)

// Resolve decides connectivity for a single peer-worker reference against a
// registry snapshot. A nil registry yields VerdictUnknown. When
// requiredClassName is set, the worker must expose that Durable Object class;
// when requiredEntrypoint is set, the worker must serve that entrypoint;
// otherwise presence in the registry alone is sufficient.
func Resolve(
	serviceName string,
	registry devregistry.Snapshot,
	requiredClassName string,
	requiredEntrypoint string,
) Verdict {
	if registry == nil {
		return VerdictUnknown
	}

	definition, found := registry.Lookup(serviceName)
	if !found {
		return VerdictNotConnected
	}

	if requiredClassName != "" {
		for _, durableObject := range definition.DurableObjects {
			if durableObject.ClassName == requiredClassName {
				return VerdictConnected
			}
		}

		return VerdictNotConnected
	}

	if requiredEntrypoint != "" {
		if _, ok := definition.EntrypointAddresses[requiredEntrypoint]; ok {
			return VerdictConnected
		}

		return VerdictNotConnected
	}

	return VerdictConnected
}
