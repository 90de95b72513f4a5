// Package configs loads and saves the konsole configuration file.
//
// Settings are stored in TOML at <UserConfigDir>/konsole/config.toml
// (for example ~/.config/konsole/config.toml on Linux):
//
//	[logger]
//	level = 0
//	format = "%s"
//	new_line = true
//
//	[prompt]
//	mask = "*"
//	no_mask = false
//	color = "grey"
//
// A missing file means defaults. Keys not listed above, a level outside
// 0-3 or a color other than cyan, green or grey make the file invalid
// (errors.ErrInvalidConfig). Command-line flags override file values.
package configs
