// Package app is the composition root for vitrine.
//
// Run wires the pieces together in this order:
//
//  1. Open the log file and build the zerolog logger
//  2. Load the showcase (explicit path, default path or built-in demo)
//  3. Load preferences, degrading to defaults when the file is unreadable
//  4. Build the image loader and the ticker scheduler bound to ctx
//  5. Start the TUI and block until the user quits or ctx is cancelled
//
// Follow implements `vitrine logs -f`: it polls the log file and prints
// appended lines, backing off while the file is missing.
package app
