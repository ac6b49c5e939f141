package roster

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical column names. Raw header labels from the source document are
// normalized to these during extraction; anything unrecognized passes
// through verbatim.
const (
	FieldNumber    = "Number"
	FieldPosition  = "Position"
	FieldPlayer    = "Player"
	FieldBirthDate = "Date_of_Birth"
	FieldCaps      = "Caps"
	FieldGoals     = "Goals"
	FieldClub      = "Club"
	FieldBirthYear = "Birth_Year"
	FieldAge       = "Age"
	FieldGoalRatio = "Goal_Ratio"
)

// ErrNoData indicates that a located table produced zero usable rows.
var ErrNoData = errors.New("no roster data after filtering")

// Player represents one roster entry. Numeric fields are pointers so that
// "value failed to parse" stays distinguishable from zero; a nil field is
// exported as JSON null and an empty CSV cell.
type Player struct {
	Number    *int              `json:"Number"`
	Position  string            `json:"Position"`
	Name      string            `json:"Player"`
	BirthDate string            `json:"Date_of_Birth"`
	BirthYear *int              `json:"Birth_Year"`
	Age       *int              `json:"Age"`
	Caps      *int              `json:"Caps"`
	Goals     *int              `json:"Goals"`
	GoalRatio float64           `json:"Goal_Ratio"`
	Club      string            `json:"Club"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Roster is the full ordered set of players from one fetch. It is rebuilt
// from scratch on every fetch; rows are never merged or deduplicated.
type Roster struct {
	Players   []*Player `json:"players"`
	Columns   []string  `json:"columns"`
	SourceURL string    `json:"source_url,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

var yearPattern = regexp.MustCompile(`\d{4}`)

// Assemble builds a Roster from extracted header labels and row cells.
// Rows whose Player cell is empty are dropped; Number, Caps and Goals that
// fail integer parsing become nil rather than zero. Age is computed against
// the current calendar year. Returns ErrNoData if no rows survive.
func Assemble(headers []string, rows [][]string) (*Roster, error) {
	return assemble(headers, rows, time.Now().Year())
}

func assemble(headers []string, rows [][]string, year int) (*Roster, error) {
	players := make([]*Player, 0, len(rows))

	for _, cells := range rows {
		p := buildPlayer(headers, cells)
		if p.Name == "" {
			continue
		}
		derive(p, headers, year)
		players = append(players, p)
	}

	if len(players) == 0 {
		return nil, ErrNoData
	}

	return &Roster{
		Players:   players,
		Columns:   columnsFor(headers),
		FetchedAt: time.Now().UTC(),
	}, nil
}

// buildPlayer maps one row's cells onto a Player by header position.
// Duplicate header labels resolve to the first occurrence.
func buildPlayer(headers []string, cells []string) *Player {
	p := &Player{}
	seen := make(map[string]bool, len(headers))

	for i, label := range headers {
		if i >= len(cells) || seen[label] {
			continue
		}
		seen[label] = true
		value := strings.TrimSpace(cells[i])

		switch label {
		case FieldNumber:
			p.Number = parseInt(value)
		case FieldPosition:
			p.Position = value
		case FieldPlayer:
			p.Name = value
		case FieldBirthDate:
			p.BirthDate = value
		case FieldCaps:
			p.Caps = parseInt(value)
		case FieldGoals:
			p.Goals = parseInt(value)
		case FieldClub:
			p.Club = value
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[label] = value
		}
	}

	return p
}

// derive fills in Birth_Year, Age and Goal_Ratio where the source columns
// allow it.
func derive(p *Player, headers []string, year int) {
	if hasHeader(headers, FieldBirthDate) {
		if match := yearPattern.FindString(p.BirthDate); match != "" {
			if y, err := strconv.Atoi(match); err == nil {
				p.BirthYear = &y
				age := year - y
				p.Age = &age
			}
		}
	}

	if hasHeader(headers, FieldCaps) && hasHeader(headers, FieldGoals) {
		if p.Caps != nil && p.Goals != nil && *p.Caps > 0 {
			p.GoalRatio = float64(*p.Goals) / float64(*p.Caps)
		}
	}
}

// columnsFor returns the export column order: source columns in document
// order, then the derived columns their inputs make computable.
func columnsFor(headers []string) []string {
	columns := make([]string, len(headers))
	copy(columns, headers)

	if hasHeader(headers, FieldBirthDate) {
		columns = append(columns, FieldBirthYear, FieldAge)
	}
	if hasHeader(headers, FieldCaps) && hasHeader(headers, FieldGoals) {
		columns = append(columns, FieldGoalRatio)
	}
	return columns
}

func hasHeader(headers []string, label string) bool {
	for _, h := range headers {
		if h == label {
			return true
		}
	}
	return false
}

// parseInt returns nil for anything that is not a plain integer.
func parseInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// Value returns the player's value for a canonical or passthrough column.
// Missing numeric values return nil so that encoders can emit null.
func (p *Player) Value(column string) interface{} {
	switch column {
	case FieldNumber:
		return intValue(p.Number)
	case FieldPosition:
		return p.Position
	case FieldPlayer:
		return p.Name
	case FieldBirthDate:
		return p.BirthDate
	case FieldBirthYear:
		return intValue(p.BirthYear)
	case FieldAge:
		return intValue(p.Age)
	case FieldCaps:
		return intValue(p.Caps)
	case FieldGoals:
		return intValue(p.Goals)
	case FieldGoalRatio:
		return p.GoalRatio
	case FieldClub:
		return p.Club
	default:
		if v, ok := p.Extra[column]; ok {
			return v
		}
		return nil
	}
}

func intValue(n *int) interface{} {
	if n == nil {
		return nil
	}
	return *n
}
