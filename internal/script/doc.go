// Package script runs Lua-defined command actions.
//
// A script declares a global run(ctx) function. The engine hands it a
// context table (text, cursor, nodeType) and maps the returned table back
// onto a command result. States are sandboxed: only the base, table,
// string, and math libraries are opened.
package script
