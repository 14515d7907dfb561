package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mpsalisbury/bridge/pkg/cards"
	"github.com/mpsalisbury/bridge/pkg/game/bridge"
)

// TerminalPlayer has the user enter calls and plays via terminal. It also
// narrates the deal as a bridge.Reporter.

var (
	highlight = color.New(color.FgHiRed).SprintFunc()
	faint     = color.New(color.FgHiBlack).SprintfFunc()
	redSuit   = color.New(color.FgRed).SprintFunc()
)

const callHelp = `Calls:
  P       pass
  X       double the opponents' bid
  XX      redouble a double of your side's bid
  1C..7NT bid a level (1-7) and strain (C, D, H, S, N or NT)
Press enter to take the suggested call.`

const cardHelp = `Cards: <rank><suit>, e.g. AS, TD, 10h, 2c.
  rank 2-9, T or 10, J, Q, K, A   suit C, D, H, S
You must follow the suit led if you can.
Press enter to play the suggested card.`

func NewTerminalPlayer(seat bridge.Seat, in io.Reader, out io.Writer, hints bool) *TerminalPlayer {
	return &TerminalPlayer{seat: seat, in: bufio.NewReader(in), out: out, hints: hints}
}

type TerminalPlayer struct {
	seat  bridge.Seat
	in    *bufio.Reader
	out   io.Writer
	hints bool
}

var _ bridge.Player = (*TerminalPlayer)(nil)
var _ bridge.Reporter = (*TerminalPlayer)(nil)

func (p *TerminalPlayer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// readLine returns the next trimmed line, io.EOF once input is exhausted.
func (p *TerminalPlayer) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isHelp(s string) bool {
	return s == "?" || s == "h" || s == "H"
}

func (p *TerminalPlayer) Call(ctx context.Context, v bridge.View) (bridge.Call, error) {
	p.printf("%s\n", showAuction(v))
	p.printf("Your hand: %s\n", showHand(v.Hand))
	for {
		suggested := bridge.PassCall
		if p.hints {
			suggested = ChooseBasicStrategyCall(v)
		}
		p.printf("%s, enter call [%s]: ", highlight(v.Seat), suggested)
		s, err := p.readLine(ctx)
		if err != nil {
			return bridge.Call{}, err
		}
		switch {
		case s == "":
			return suggested, nil
		case isHelp(s):
			p.printf("%s\n", callHelp)
			continue
		}
		call, err := bridge.ParseCall(s)
		if err == nil {
			return call, nil
		}
		p.printf("Invalid call %s, try again\n", s)
	}
}

func (p *TerminalPlayer) Play(ctx context.Context, v bridge.View) (cards.Card, error) {
	p.printf("%s\n", showTable(v))
	for {
		suggested := v.LegalPlays[0]
		if p.hints {
			suggested = ChooseBasicStrategyCard(v)
		}
		p.printf("%s, enter card to play [%s]: ", highlight(v.Seat), suggested)
		s, err := p.readLine(ctx)
		if err != nil {
			return cards.Card{}, err
		}
		switch {
		case s == "":
			return suggested, nil
		case isHelp(s):
			p.printf("%s\n", cardHelp)
			continue
		}
		card, err := cards.ParseCard(s)
		if err == nil {
			return card, nil
		}
		p.printf("Invalid card %s, try again\n", s)
	}
}

func (p *TerminalPlayer) DealStarted(g *bridge.Game) {
	p.printf("\nNew deal, %s deals. You are %s.\n", g.Dealer(), highlight(p.seat))
}

func (p *TerminalPlayer) CallMade(g *bridge.Game, seat bridge.Seat, call bridge.Call) {
	if seat != p.seat {
		p.printf("%s calls %s\n", seat, call)
	}
}

func (p *TerminalPlayer) CallRejected(g *bridge.Game, seat bridge.Seat, call bridge.Call, err error) {
	p.printf("Can't call %s: %v. Try again\n", call, err)
}

func (p *TerminalPlayer) AuctionFinished(g *bridge.Game) {
	c, ok := g.Contract()
	if !ok {
		p.printf("All pass, no contract.\n")
		return
	}
	p.printf("Contract: %s. %s leads, %s is dummy.\n", c, c.OpeningLeader(), c.Dummy())
}

func (p *TerminalPlayer) CardPlayed(g *bridge.Game, seat bridge.Seat, card cards.Card) {
	if seat != p.seat {
		p.printf("%s plays %s\n", seat, showCard(card))
	}
}

func (p *TerminalPlayer) PlayRejected(g *bridge.Game, seat bridge.Seat, card cards.Card, err error) {
	p.printf("Can't play card %s: %v. Try again\n", card, err)
}

func (p *TerminalPlayer) TrickCompleted(g *bridge.Game, trick *bridge.Trick, winner bridge.Seat, winningCard cards.Card) {
	p.printf("Trick: %s won by %s with %s (%s)\n\n", showCards(trick.Cards()), winner, showCard(winningCard), g.Results())
}

func (p *TerminalPlayer) DealFinished(g *bridge.Game) {
	c, ok := g.Contract()
	if !ok {
		return
	}
	made := g.Results().TricksWon(c.Side())
	p.printf("%s took %d tricks, needed %d. Score N/S %d, E/W %d\n",
		c.Declarer, made, c.TricksNeeded(), g.SideScore(bridge.NorthSouth), g.SideScore(bridge.EastWest))
}

func showCard(c cards.Card) string {
	s := c.Value.String() + c.Suit.Symbol()
	if c.Suit == cards.Hearts || c.Suit == cards.Diamonds {
		return redSuit(s)
	}
	return s
}

func showCards(cs cards.Cards) string {
	ss := []string{}
	for _, c := range cs {
		ss = append(ss, showCard(c))
	}
	return strings.Join(ss, " ")
}

func showHand(cs cards.Cards) string {
	return cs.HandString()
}

// showAuction lays the calls out in N E S W columns.
func showAuction(v bridge.View) string {
	var sb strings.Builder
	for _, s := range bridge.Seats {
		name := fmt.Sprintf("%-6s", s)
		if s == v.Seat {
			name = highlight(name)
		}
		sb.WriteString(name)
	}
	sb.WriteString("\n")
	col := int(v.Dealer)
	sb.WriteString(strings.Repeat(fmt.Sprintf("%-6s", ""), col))
	for _, c := range v.Calls {
		sb.WriteString(fmt.Sprintf("%-6s", c))
		col++
		if col%4 == 0 {
			sb.WriteString("\n")
		}
	}
	if len(v.Calls) == 0 {
		sb.WriteString(faint("(no calls yet)"))
	}
	return sb.String()
}

func showTable(v bridge.View) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Contract: %s   Tricks N/S %d, E/W %d\n", v.Contract, v.TricksWon[0], v.TricksWon[1]))
	if v.DummyHand != nil && v.Seat != v.Contract.Dummy() {
		sb.WriteString(fmt.Sprintf("Dummy (%s): %s\n", v.Contract.Dummy(), showHand(v.DummyHand)))
	}
	label := "Your hand"
	if v.HasContract && v.Seat == v.Contract.Dummy() {
		label = "Dummy's hand"
	}
	sb.WriteString(fmt.Sprintf("%s: %s\n", label, showHand(v.Hand)))
	sb.WriteString("Trick so far:")
	for i, c := range v.Trick {
		sb.WriteString(fmt.Sprintf(" %s:%s", v.SeatOf(i), showCard(c)))
	}
	return sb.String()
}
