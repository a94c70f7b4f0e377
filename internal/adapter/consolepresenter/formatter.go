// Package consolepresenter renders session snapshots, move results and
// errors into terminal text, with every user-facing string coming from the
// message catalog.
package consolepresenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/okarvik/chesskit/internal/domain"
	"github.com/okarvik/chesskit/internal/engine"
	"github.com/okarvik/chesskit/internal/msgcat"
	"github.com/okarvik/chesskit/pkg/gamedto"
)

// Formatter turns game DTOs into terminal-friendly text blocks.
type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

// render looks a key up in the catalog; a missing or broken template falls
// back to the key itself so the CLI never goes silent.
func (f *Formatter) render(key string, data any) string {
	out, err := f.cat.Render(key, data)
	if err != nil {
		return key
	}
	return out
}

func (f *Formatter) Banner() string  { return f.render("cli.banner", nil) }
func (f *Formatter) Help() string    { return f.render("cli.help", nil) }
func (f *Formatter) Goodbye() string { return f.render("cli.goodbye", nil) }

// Turn shows the board followed by whose turn it is and the move prompt.
func (f *Formatter) Turn(state *gamedto.SessionState) string {
	var sb strings.Builder
	sb.WriteString(state.Board)
	sb.WriteString("\n")
	sb.WriteString(f.render("cli.turn", map[string]string{"Colour": state.Turn}))
	sb.WriteString("\n")
	sb.WriteString(f.render("cli.prompt_move", nil))
	return sb.String()
}

// StateLine describes a game state value in prose.
func (f *Formatter) StateLine(state string) string {
	return f.render("state."+strings.ToLower(state), nil)
}

// MoveResult acknowledges an accepted move and, when the game just ended,
// names the outcome.
func (f *Formatter) MoveResult(summary *gamedto.MoveSummary) string {
	var sb strings.Builder
	sb.WriteString(f.render("cli.move_ok", nil))
	if summary.State != nil && summary.State.State == string(engine.StateCheck) {
		sb.WriteString("\n")
		sb.WriteString(f.StateLine(summary.State.State))
	}
	if summary.Finished {
		sb.WriteString("\n")
		sb.WriteString(f.Outcome(summary))
	}
	return sb.String()
}

// Outcome renders the terminal result line for a finished game.
func (f *Formatter) Outcome(summary *gamedto.MoveSummary) string {
	if summary.Method == "stalemate" {
		return f.render("result.stalemate", nil)
	}
	winner := ""
	if summary.State != nil {
		// The side to move is the one left without a reply; the other
		// side won. Resignation does not flip the turn, so the same
		// derivation holds there.
		winner = string(engine.Colour(summary.State.Turn).Opposite())
	}
	return f.render("result."+summary.Method, map[string]string{"Winner": winner})
}

func (f *Formatter) PromotionPrompt() string {
	return f.render("cli.prompt_promotion", nil)
}

func (f *Formatter) PromotionDone() string {
	return f.render("cli.promotion_ok", nil)
}

func (f *Formatter) InvalidInput() string {
	return f.render("cli.invalid_input", nil)
}

func (f *Formatter) Error(err error) string {
	return f.render("cli.error", map[string]string{"Message": err.Error()})
}

// Moves lists the legal destinations of a square.
func (f *Formatter) Moves(square string, moves []string) string {
	if len(moves) == 0 {
		return f.render("cli.no_moves", map[string]string{"Square": square})
	}
	return f.render("cli.moves_from", map[string]string{
		"Square": square,
		"Moves":  strings.Join(moves, " "),
	})
}

// Piece describes the occupant of a square.
func (f *Formatter) Piece(square string, piece engine.Piece) string {
	if piece.IsEmpty() {
		return f.render("cli.empty_square", map[string]string{"Square": square})
	}
	return f.render("cli.piece_on_square", map[string]string{
		"Square": square,
		"Colour": string(piece.Colour),
		"Piece":  string(piece.Type),
	})
}

// History lists archived games, most recent first.
func (f *Formatter) History(records []*domain.GameRecord) string {
	if len(records) == 0 {
		return f.render("cli.no_history", nil)
	}
	var sb strings.Builder
	for i, r := range records {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s (%s), %d moves in %s",
			i+1, r.Method, r.Outcome, r.MoveCount, r.Duration.Round(time.Second)))
	}
	return sb.String()
}
