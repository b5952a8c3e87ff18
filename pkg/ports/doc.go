/*
Package ports defines the driven ports (interfaces) of the swml servers.

These interfaces decouple the HTTP and MCP adapters from where documents are
kept, so the same handlers can serve a directory on disk or an in-memory set.

# Key Interfaces

  - DocumentStore: saves, loads and lists raw SWML documents by name.
*/
package ports
