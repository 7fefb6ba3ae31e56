// Package commands defines the metaweblog CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login          Save credentials encrypted under a passphrase
//   - whoami         Show the resolved account and endpoint
//   - blogs          List the blogs of the account
//   - categories     List the categories of the blog
//   - new-category   Create a category
//   - recent         List recent posts
//   - get            Show one post
//   - publish        Render a Markdown file and create or update a post
//   - delete         Delete a post
//
// # Implementation
//
// The root command resolves configuration (flags, METAWEBLOG_* environment,
// .env, config.yaml), builds the logger and the app context, and merges the
// saved profile when a passphrase is given, before any subcommand runs.
package commands
