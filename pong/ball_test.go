package pong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBall(t *testing.T) {
	b := NewBall(nil)

	assert.Equal(t, 20.0, b.Size, "Ball side should be 20")
	assert.Equal(t, 12.0, b.Speed, "Ball speed should be 12")
	assert.False(t, b.Served(), "A new ball should not be served")
}

func TestBallServeFromPlayer(t *testing.T) {
	s, player, ai := court()
	s.Rand = fixed(0.25)
	b := NewBall(nil)

	require.NoError(t, b.Serve(s, FromPlayer, player, ai))

	assert.Equal(t, 20.0, b.X, "Ball should sit flush against the player paddle")
	assert.Equal(t, 145.0, b.Y, "Ball height should be (600-20)*0.25")
	assert.Greater(t, b.VX, 0.0, "Ball should move toward the AI")
	assert.InDelta(t, 12.0, math.Hypot(b.VX, b.VY), 1e-9, "Serve speed should be exactly Speed")
	assert.InDelta(t, 0.05*math.Pi, math.Atan2(b.VY, b.VX), 1e-9)
	assert.True(t, b.Served())
}

func TestBallServeFromAI(t *testing.T) {
	s, player, ai := court()
	s.Rand = fixed(0.9)
	b := NewBall(nil)

	require.NoError(t, b.Serve(s, FromAI, player, ai))

	assert.Equal(t, 760.0, b.X, "Ball should sit flush against the AI paddle")
	assert.InDelta(t, 522.0, b.Y, 1e-9)
	assert.Less(t, b.VX, 0.0, "Ball should move toward the player")
	assert.InDelta(t, 12.0, math.Hypot(b.VX, b.VY), 1e-9)
}

func TestBallServeInvalidSide(t *testing.T) {
	s, player, ai := court()
	b := NewBall(nil)

	for _, side := range []Side{0, 2, -2} {
		err := b.Serve(s, side, player, ai)
		assert.ErrorIs(t, err, ErrInvalidSide, "side %d", side)
	}
	assert.False(t, b.Served(), "A rejected serve should leave the ball unserved")
	assert.Equal(t, 0.0, b.VX)
}

func TestBallUpdateBeforeServe(t *testing.T) {
	s, player, ai := court()
	b := NewBall(nil)

	err := b.Update(s, player, ai)
	assert.ErrorIs(t, err, ErrNotServed)
	assert.Equal(t, 0.0, b.X, "A failed update should not move the ball")
}

func TestServeAngleBound(t *testing.T) {
	s, player, ai := court()

	for i := 0; i < 1000; i++ {
		r := float64(i) / 1000
		phi := serveAngle(r)
		require.LessOrEqual(t, math.Abs(phi), 0.1*math.Pi+1e-12, "r=%v", r)

		for _, side := range []Side{FromPlayer, FromAI} {
			s.Rand = fixed(r)
			b := NewBall(nil)
			require.NoError(t, b.Serve(s, side, player, ai))
			require.Equal(t, float64(side) > 0, b.VX > 0, "vx sign should follow side %v at r=%v", side, r)
			require.GreaterOrEqual(t, b.Y, 0.0)
			require.LessOrEqual(t, b.Y, s.Field.Height-b.Size)
		}
	}
}

func TestBounceAngleBound(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		n := float64(i) / 1000
		phi := bounceAngle(n)
		require.GreaterOrEqual(t, phi, -0.25*math.Pi-1e-12, "n=%v", n)
		require.LessOrEqual(t, phi, 0.25*math.Pi+1e-12, "n=%v", n)

		if math.Abs(phi) > 0.2*math.Pi {
			require.Equal(t, 1.5, smash(phi), "n=%v should smash", n)
		} else {
			require.Equal(t, 1.0, smash(phi), "n=%v should not smash", n)
		}
	}
}

func TestBallBounceOffTopWall(t *testing.T) {
	s, player, ai := court()
	b := launched(s, player, ai, 400, 2, 5, -5)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 3.0, b.Y, "Ball should be reflected back inside the field")
	assert.Equal(t, 5.0, b.VY, "Vertical velocity should be inverted")
	assert.Equal(t, 5.0, b.VX, "Horizontal velocity should be unchanged")
}

func TestBallBounceOffBottomWall(t *testing.T) {
	s, player, ai := court()
	b := launched(s, player, ai, 400, 576, -5, 8)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 576.0, b.Y, "Ball should be reflected back inside the field")
	assert.Equal(t, -8.0, b.VY, "Vertical velocity should be inverted")
	assert.Equal(t, -5.0, b.VX, "Horizontal velocity should be unchanged")
}

func TestBallWallBounceKeepsEnergy(t *testing.T) {
	s, player, ai := court()

	for y := 0.0; y <= 580; y += 10 {
		for _, vy := range []float64{-11, -6, 6, 11} {
			b := launched(s, player, ai, 400, y, 3, vy)
			require.NoError(t, b.Update(s, player, ai))
			require.Equal(t, 3.0, b.VX)
			require.Equal(t, math.Abs(vy), math.Abs(b.VY))
			require.GreaterOrEqual(t, b.Y, 0.0, "y=%v vy=%v", y, vy)
			require.LessOrEqual(t, b.Y, 580.0, "y=%v vy=%v", y, vy)
		}
	}
}

func TestBallHitsPlayerCenter(t *testing.T) {
	s, player, ai := court()
	player.X = 20
	b := launched(s, player, ai, 45, 290, -12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 40.0, b.X, "Ball should snap to the paddle face")
	assert.InDelta(t, 12.0, b.VX, 1e-9, "A center hit should send the ball straight back")
	assert.InDelta(t, 0.0, b.VY, 1e-9)
}

func TestBallSmashOffPlayerEdge(t *testing.T) {
	s, player, ai := court()
	player.X = 20
	b := launched(s, player, ai, 45, 231, -12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 40.0, b.X)
	assert.Greater(t, b.VX, 0.0, "Ball should head back toward the AI")
	assert.Less(t, b.VY, 0.0, "A top-edge hit should deflect upward")
	assert.InDelta(t, 18.0, math.Hypot(b.VX, b.VY), 1e-9, "An edge hit should smash at 1.5x speed")
}

func TestBallHitsAIPaddle(t *testing.T) {
	s, player, ai := court()
	b := launched(s, player, ai, 755, 330, 12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 760.0, b.X, "Ball should snap to the AI paddle face")
	assert.Less(t, b.VX, 0.0, "Ball should head back toward the player")
	assert.Greater(t, b.VY, 0.0, "A low hit should deflect downward")
}

func TestBallSmashOffAIThenCenterHit(t *testing.T) {
	s, player, ai := court()
	player.X = 20
	b := launched(s, player, ai, 755, 231, 12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 760.0, b.X)
	assert.Less(t, b.VX, 0.0, "Ball should head back toward the player")
	assert.Less(t, b.VY, 0.0, "A top-edge hit should deflect upward")
	assert.InDelta(t, 18.0, math.Hypot(b.VX, b.VY), 1e-9, "An AI edge hit should smash at 1.5x speed")

	// Line the ball up so its next move lands on the player's center.
	b.X, b.Y = 50, 290-b.VY

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 40.0, b.X)
	assert.Greater(t, b.VX, 0.0)
	assert.InDelta(t, 0.0, b.VY, 1e-9)
	assert.InDelta(t, 12.0, math.Hypot(b.VX, b.VY), 1e-9, "A center hit after a smash should return to base speed")
}

func TestBallIgnoresPaddleBehindIt(t *testing.T) {
	s, player, ai := court()
	player.X = 20
	// Overlaps the player paddle but is moving away from it.
	b := launched(s, player, ai, 30, 290, 12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, 42.0, b.X)
	assert.Equal(t, 12.0, b.VX)
}

func TestBallScoresRightExit(t *testing.T) {
	s, player, ai := court()
	s.Rand = fixed(0.5)
	var got []Score
	s.OnScore = func(sc Score) { got = append(got, sc) }
	b := launched(s, player, ai, 805, 300, 12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, Score{Player: 1, AI: 0}, s.Score, "Leaving on the right should score for the player")
	assert.Equal(t, []Score{{Player: 1}}, got, "Score change should be reported once")
	// The ball was heading toward the AI, so it is served again from the AI.
	assert.Equal(t, 760.0, b.X, "Ball should be re-served flush against the AI paddle")
	assert.Less(t, b.VX, 0.0, "Re-serve should launch toward the player")
	assert.InDelta(t, 12.0, math.Hypot(b.VX, b.VY), 1e-9)
}

func TestBallScoresLeftExit(t *testing.T) {
	s, player, ai := court()
	b := launched(s, player, ai, -15, 300, -12, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.Equal(t, Score{Player: 0, AI: 1}, s.Score, "Leaving on the left should score for the AI")
	assert.Equal(t, 20.0, b.X, "Ball should be re-served flush against the player paddle")
	assert.Greater(t, b.VX, 0.0, "Re-serve should launch toward the AI")
}

func TestBallSmashResetsOnServe(t *testing.T) {
	s, player, ai := court()
	b := launched(s, player, ai, 805, 300, 18, 0)

	require.NoError(t, b.Update(s, player, ai))

	assert.InDelta(t, 12.0, math.Hypot(b.VX, b.VY), 1e-9, "A serve should restore the base speed")
}

func TestBallDrawIsIdempotent(t *testing.T) {
	rec := &recorder{}
	b := NewBall(rec)
	b.X, b.Y = 100, 200

	b.Draw()
	b.Draw()

	assert.Equal(t, []Rect{{X: 100, Y: 200, W: 20, H: 20}, {X: 100, Y: 200, W: 20, H: 20}}, rec.rects)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "player", FromPlayer.String())
	assert.Equal(t, "ai", FromAI.String())
	assert.Equal(t, "invalid", Side(0).String())
}
