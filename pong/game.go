package pong

import "fmt"

// Game owns one session and the three entities played in it.
type Game struct {
	Player *PlayerPaddle
	AI     *AIPaddle
	Ball   *Ball

	session *Session
}

// NewGame lays out the paddles on field, draws them on surf and serves from
// the player. rnd may be nil.
func NewGame(field Playfield, surf Surface, rnd func() float64) (*Game, error) {
	g := &Game{
		Player:  NewPlayerPaddle(surf),
		AI:      NewAIPaddle(surf),
		Ball:    NewBall(surf),
		session: NewSession(field, rnd),
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Restart zeroes the score, recenters the paddles and serves from the player.
func (g *Game) Restart() error {
	field := g.session.Field
	g.session.Score = Score{}

	g.Player.X = g.Player.W
	g.Player.Y = (field.Height - g.Player.H) / 2
	g.AI.X = field.Width - (g.Player.W + g.AI.W)
	g.AI.Y = (field.Height - g.AI.H) / 2

	if err := g.Ball.Serve(g.session, FromPlayer, g.Player, g.AI); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Step runs one frame of simulation: player, then AI, then ball.
func (g *Game) Step(in Input) error {
	f := Frame{Field: g.session.Field, Input: in, Ball: g.Ball}
	for _, p := range g.paddles() {
		p.Update(f)
	}
	if err := g.Ball.Update(g.session, g.Player, g.AI); err != nil {
		return fmt.Errorf("ball update: %w", err)
	}
	return nil
}

// Draw paints all entities on their surface. It does not change any state.
func (g *Game) Draw() {
	for _, e := range g.Entities() {
		e.Draw()
	}
}

func (g *Game) paddles() []Paddle {
	return []Paddle{g.Player, g.AI}
}

// Entities returns the player, the AI and the ball, in draw order.
func (g *Game) Entities() []Entity {
	return []Entity{g.Player, g.AI, g.Ball}
}

func (g *Game) Session() *Session { return g.session }

func (g *Game) Score() Score { return g.session.Score }

func (g *Game) Field() Playfield { return g.session.Field }

// OnScore registers fn to be called after every point.
func (g *Game) OnScore(fn func(Score)) {
	g.session.OnScore = fn
}
