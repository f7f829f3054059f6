// Package viewmodel holds the render-facing data shapes sent to the
// presentation layer. The browser client consumes these as JSON; templ
// pages use them for the initial shell.
package viewmodel

// Snapshot is the per-frame view of a game session.
type Snapshot struct {
	Screen           string   `json:"screen"`
	Done             bool     `json:"done"`
	Overlay          float64  `json:"overlay"`
	TransitionActive bool     `json:"transitionActive"`
	HoldActive       bool     `json:"holdActive"`
	Answer           string   `json:"answer"`
	ShakeTicks       int      `json:"shakeTicks"`
	Session          *Session `json:"session,omitempty"`
	Round            *Round   `json:"round,omitempty"`
	Effects          []Effect `json:"effects,omitempty"`
	Difficulties     []string `json:"difficulties"`
}

// Session is the stats panel for the active play-through.
type Session struct {
	Difficulty    string  `json:"difficulty"`
	Score         int     `json:"score"`
	RoundsTotal   int     `json:"roundsTotal"`
	RoundsPlayed  int     `json:"roundsPlayed"`
	Correct       int     `json:"correct"`
	Incorrect     int     `json:"incorrect"`
	CurrentStreak int     `json:"currentStreak"`
	BestStreak    int     `json:"bestStreak"`
	Accuracy      float64 `json:"accuracy"`
}

// Round is the current round: scrambled letter tiles only, never the
// solution.
type Round struct {
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	Length  int      `json:"length"`
	Letters []Letter `json:"letters"`
}

// Letter is one scrambled-letter tile with its animation state.
type Letter struct {
	Char  string `json:"char"`
	State string `json:"state"`
}

// Effect is an active visual-effect request with a normalized origin.
type Effect struct {
	Kind     string  `json:"kind"`
	Word     string  `json:"word,omitempty"`
	OriginX  float64 `json:"originX"`
	OriginY  float64 `json:"originY"`
	Strength float64 `json:"strength"`
}

// GamePage holds data for the game page shell.
type GamePage struct {
	Title     string
	SessionID string
}
