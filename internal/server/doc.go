// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown. The server is only constructed
// after the startup resolution step has completed, so it never serves a
// directory whose generated artifact is missing.
package server
