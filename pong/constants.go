package pong

import "math"

// Paddle geometry and motion.
const (
	PaddleWidth  = 20
	PaddleHeight = 100

	// PlayerStep is how far a held key moves the player paddle per frame.
	PlayerStep = 7
	// AIGain is the fraction of the remaining distance the AI covers per frame.
	AIGain = 0.1
)

// Ball geometry and launch parameters.
const (
	BallSize  = 20
	BallSpeed = 12

	// ServeCone bounds the serve angle to ±ServeCone around horizontal.
	ServeCone = 0.1 * math.Pi
	// BounceCone bounds the angle off a paddle to ±BounceCone.
	BounceCone = 0.25 * math.Pi
	// SmashAngle is the bounce angle beyond which a hit is a smash.
	SmashAngle  = 0.2 * math.Pi
	SmashFactor = 1.5
)
