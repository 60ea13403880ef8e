package content

import _ "embed"

// DefaultCatalog is the project catalog shipped with the binary. It is used
// when no PROJECTS_FILE is configured and the database is empty.
//
//go:embed projects.yaml
var DefaultCatalog []byte

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a
	different language, experimenting with tools, or solving tricky problems.
	When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends,
	or chasing down a new challenge outside the screen.`

	Tagline = "Software developer building tools for the terminal and the web."
)
