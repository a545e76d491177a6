// Package cli provides the interactive profile dashboard client.
//
// It wires configuration, the local session store, the GraphQL client and
// an interactive REPL. Typical flow: resume or prompt for credentials,
// aggregate the six profile queries into one view model, and render it as
// text tables or exported SVG charts.
//
// Key commands:
//   - login / logout — session management against the signin endpoint
//   - profile, xp, projects, skills — sections of the aggregated view
//   - refresh — re-fetch, keeping the previous view on failure
//   - export — write the charts as SVG files
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
