// Package filtergraph renders the JSON filter descriptions from a
// project config into ffmpeg filter-graph expressions.
//
// A filter unit is an object with exactly one member, {"name": args},
// and renders as name=args. A chain is an array mixing verbatim strings
// with {istream, func, ostream} stages; stages concatenate their parts
// and the chain joins fragments with ";". Values are emitted untouched:
// no quoting or escaping is applied, the config author writes exactly
// what ffmpeg should see.
package filtergraph
