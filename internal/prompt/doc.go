// Package prompt reads lines and secrets from the terminal.
//
// Input reads one line of plain text. Password switches the terminal into
// raw mode, reads one key at a time and echoes a mask instead of the key:
//
//	name, err := prompt.Input("Name: ")
//	secret, err := prompt.Password("Password: ", prompt.PasswordOptions{Mask: "-"})
//
// The mask never grows past five symbols. Set NoMask to echo nothing.
//
// Raw mode is held by a session that restores cooked mode on Enter, end of
// input, Ctrl-C/Ctrl-D and SIGINT/SIGTERM/SIGHUP.
package prompt
