// Command stepvault is the CLI for the sidecar-driven dance video library:
// scanning the vault, querying and editing step metadata, and organizing
// media files into the library folder.
package main
