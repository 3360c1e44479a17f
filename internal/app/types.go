package app

const (
	appName = "towezterm"
	envHome = "TOWEZTERM_HOME"

	defaultITerm2Repo = "https://github.com/mbadolato/iTerm2-Color-Schemes.git"
	defaultITerm2Dir  = "schemes"
	defaultKittyRepo  = "https://github.com/kovidgoyal/kitty-themes.git"
	defaultKittyDir   = "themes"

	defaultOutITerm2 = "color-schemes-iterm2.json"
	defaultOutKitty  = "color-schemes-kitty.json"
	defaultOutAll    = "color-schemes.json"
)

// Config keys, as they appear in config.yaml and (upper-cased, dots
// replaced by underscores, TOWEZTERM_ prefixed) in the environment.
const (
	keyGit        = "git"
	keyITerm2Repo = "iterm2.repo"
	keyITerm2Dir  = "iterm2.dir"
	keyKittyRepo  = "kitty.repo"
	keyKittyDir   = "kitty.dir"
	keyOutITerm2  = "output.iterm2"
	keyOutKitty   = "output.kitty"
	keyOutAll     = "output.all"
	keyNoColor    = "no_color"
)

// Mode selects which theme sources a run converts.
type Mode string

const (
	ModeNone   Mode = ""
	ModeITerm2 Mode = "iterm2"
	ModeKitty  Mode = "kitty"
	ModeAll    Mode = "all"
)

// SourceConfig locates a theme repository and the directory inside it that
// holds the theme files.
type SourceConfig struct {
	Repo string
	Dir  string
}

type Config struct {
	Git     string
	ITerm2  SourceConfig
	Kitty   SourceConfig
	NoColor bool

	OutITerm2 string
	OutKitty  string
	OutAll    string
}
