package bindings

import fcolor "github.com/fatih/color"

// Display suffixes for resource-identity bindings under local dev.
const (
	simulatedSuffix = " [simulated locally]"
	remoteSuffix    = " [connected to remote resource]"
)

// connectivity markers appended to peer-worker binding values. Styled at
// call time so color enablement reflects the current terminal.
func connectedMarker() string {
	return fcolor.New(fcolor.FgGreen).Sprint("[connected]")
}

func notConnectedMarker() string {
	return fcolor.New(fcolor.FgRed).Sprint("[not connected]")
}

// Decorate appends the status suffix for one display value.
//
// A non-nil verdict takes precedence: Connected and NotConnected render their
// markers, Unknown renders nothing, and the resource-identity suffixes never
// apply. Without a verdict, values pass through unchanged outside local dev
// and in provisioning mode; otherwise the simulated-locally or
// remote-resource suffix is appended.
func Decorate(value string, verdict *Verdict, simulatedLocally bool, ctx RenderContext) string {
	if verdict != nil {
		switch *verdict {
		case VerdictConnected:
			return value + " " + connectedMarker()
		case VerdictNotConnected:
			return value + " " + notConnectedMarker()
		case VerdictUnknown:
			return value
		default:
			return value
		}
	}

	if ctx.Provisioning || !ctx.LocalDev {
		return value
	}

	if simulatedLocally {
		return value + simulatedSuffix
	}

	return value + remoteSuffix
}
