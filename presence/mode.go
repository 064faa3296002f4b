package presence

// Mode selects how an option's "presence" is interpreted when lowering a
// tristate to a boolean: ModeBuiltin only counts the option as present when
// it is built directly in, ModeModule counts both module and built-in
// selection.
type Mode string

const (
	ModeBuiltin Mode = "y"
	ModeModule  Mode = "m"
)
