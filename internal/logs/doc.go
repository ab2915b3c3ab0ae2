// Package logs reads back the stepvault log file: the most recent lines
// for a quick look, and a polling follow mode for watching operations as
// they run.
package logs
