// Package app wires application dependencies for the CLI.
//
// It builds the profile store, the XML-RPC transport, the metaWeblog client
// and the publish service from a resolved config.Config, so commands only
// deal with domain types.
package app
