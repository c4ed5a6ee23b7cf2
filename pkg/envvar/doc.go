// Package envvar resolves configuration values from the process environment.
//
// It provides two facilities:
//   - [Expand] for ${VAR} and ${VAR:-default} placeholder expansion in
//     configuration content.
//   - [Resolver.Resolve] for looking up a variable by its canonical name with
//     a deprecated alias fallback and a computed default, emitting a one-time
//     deprecation notice when the alias is the value source.
package envvar
