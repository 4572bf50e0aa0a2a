package game

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"dodge/internal/device"
	"dodge/internal/link"
	"dodge/internal/scores"
)

// Deps are the injected peripherals and services. Nothing in the core
// reaches for a global; everything it touches comes in here.
type Deps struct {
	Display device.Display
	Pixels  device.Pixels
	Sounder device.Sounder
	Inputs  device.Inputs
	Tilt    device.Tilt
	Store   scores.Store
	Rand    *rand.Rand
	// OpenLink builds the multiplayer transport. It may block (listening
	// for a peer), so the game calls it from a goroutine and cancels the
	// context when the session no longer wants the link.
	OpenLink func(ctx context.Context) (link.Port, error)
}

type Options struct {
	Splash    bool
	Calibrate bool
	// MPScores lets a multiplayer round enter the leaderboard.
	MPScores    bool
	MPRoundSecs float64
}

// How long the game-over / win message stays up before the leaderboard
// check runs. Stands in for the original's blocking end-of-round tune.
const roundEndHold = 1500 * time.Millisecond

type linkResult struct {
	port link.Port
	err  error
}

// Game owns every piece of mutable game state. One Tick call does all
// work for one frame; the loop driver supplies pacing and wall time.
type Game struct {
	disp     device.Display
	pix      device.Pixels
	snd      device.Sounder
	in       *Sampler
	rng      *rand.Rand
	store    scores.Store
	openLink func(ctx context.Context) (link.Port, error)
	opts     Options

	board *scores.Board

	st      state
	menuIdx Difficulty

	diff        Difficulty
	levelIdx    int
	levelTarget float64
	levelStart  time.Time
	lives       int
	score       int

	player    Player
	claw      Claw
	lastHit   time.Time
	drop      dropAnim
	fireGuard time.Time

	ch         *link.Channel
	linkCh     chan linkResult
	linkCancel context.CancelFunc

	tiltMin, tiltMax float64

	splash splashAnim
	calib  calibration

	endHold time.Time

	initials   [3]byte
	initialIdx int
}

func New(d Deps, opts Options) *Game {
	if opts.MPRoundSecs <= 0 {
		opts.MPRoundSecs = 60
	}
	g := &Game{
		disp:     d.Display,
		pix:      d.Pixels,
		snd:      d.Sounder,
		in:       NewSampler(d.Inputs, d.Tilt),
		rng:      d.Rand,
		store:    d.Store,
		openLink: d.OpenLink,
		opts:     opts,
		board:    scores.NewBoard(d.Store.Load()),
		tiltMin:  AccelMin,
		tiltMax:  AccelMax,
	}

	g.disp.SetText(device.FieldClawTop, ClawTopText)
	g.disp.SetText(device.FieldClawMid, ClawMidText)
	g.disp.SetText(device.FieldClawBottom, ClawBottomText)
	g.disp.SetText(device.FieldPlayer, PlayerText)
	g.hideClaw()

	g.player.X = ScreenWidth / 2
	g.disp.Move(device.FieldPlayer, g.player.X, PlayerY)

	switch {
	case opts.Splash:
		g.st = stateSplash
	case opts.Calibrate:
		g.st = stateCalibrate
	default:
		g.showMenu()
	}
	return g
}

// Tick runs one iteration of the cooperative loop: sample inputs, advance
// whatever state the session is in, refresh the derived display text.
func (g *Game) Tick(now time.Time) {
	in := g.in.Tick()

	switch g.st {
	case stateSplash:
		g.tickSplash(now)
	case stateCalibrate:
		g.tickCalibrate(now, in)
	case stateMenu:
		g.tickMenu(now, in)
	case statePlaying:
		g.tickPlaying(now, in)
	case stateGameOver, stateWin:
		g.tickRoundEnd(now)
	case stateEnterInitials:
		g.tickInitials(in)
	case stateShowScores:
		if in.Confirm {
			g.showMenu()
		}
	}
}

// --- menu ---

func (g *Game) showMenu() {
	g.teardownLink()
	g.st = stateMenu

	g.disp.SetText(device.FieldTitle, "MENU")
	g.disp.SetText(device.FieldLevel, "")
	g.disp.SetText(device.FieldTimer, "")
	g.disp.SetText(device.FieldLives, "")
	g.disp.SetText(device.FieldScore, "")
	g.disp.SetText(device.FieldMessage, fmt.Sprintf("< %s >", g.menuIdx.MenuLabel()))
	g.clearBoardFields()
	g.hideClaw()
	g.clearHealthBar()
}

func (g *Game) tickMenu(now time.Time, in Sample) {
	switch in.Rotate {
	case RotatePos:
		g.menuIdx = (g.menuIdx + 1) % numDifficulties
	case RotateNeg:
		g.menuIdx = (g.menuIdx + numDifficulties - 1) % numDifficulties
	}
	if in.Rotate != RotateNone {
		g.disp.SetText(device.FieldMessage, fmt.Sprintf("< %s >", g.menuIdx.MenuLabel()))
	}

	if in.Confirm {
		g.startSession(g.menuIdx, now)
	}
}

// startSession resets every session field and enters Playing. All four
// difficulties share this path; the table supplies what differs.
func (g *Game) startSession(d Difficulty, now time.Time) {
	spec := difficulties[d]

	g.diff = d
	g.levelIdx = 0
	g.levelStart = now
	g.lives = 3
	g.score = 0
	g.lastHit = time.Time{}
	g.fireGuard = time.Time{}
	g.drop = dropAnim{}

	g.disp.SetText(device.FieldTitle, spec.label)
	g.disp.SetText(device.FieldMessage, "")

	if spec.multiplayer {
		g.levelTarget = g.opts.MPRoundSecs
		g.claw.Park()
		g.claw.Speed = 0
		g.dialLink()
	} else {
		g.teardownLink()
		g.levelTarget = LevelTargets[0]
		g.claw.Respawn(g.rng)
		g.claw.Speed = d.speedFor(0)
	}
	g.drawClaw()

	g.updateHealthBar()
	g.snd.Play(device.CueGameStart)
	g.st = statePlaying
}

// --- playing ---

func (g *Game) tickPlaying(now time.Time, in Sample) {
	mp := difficulties[g.diff].multiplayer
	if mp {
		g.pollLink()
		if g.ch != nil {
			g.ch.Drain()
		}
	}

	elapsed := now.Sub(g.levelStart).Seconds()
	remaining := g.levelTarget - elapsed
	if remaining < 0 {
		remaining = 0
	}
	g.updateHUD(remaining)

	g.player.Move(in.Tilt, g.tiltMin, g.tiltMax)
	g.disp.Move(device.FieldPlayer, g.player.X, PlayerY)
	if mp && g.ch != nil {
		g.ch.SendPos(g.player.X)
	}

	if mp {
		g.tickClawMultiplayer(now)
	} else {
		g.tickClawSingle(now)
	}
	if g.st != statePlaying {
		return
	}

	if remaining <= 0 {
		g.roundComplete(now)
	}
}

func (g *Game) tickClawSingle(now time.Time) {
	g.claw.Fall()
	if g.claw.PassDone() {
		// A clean pass is a dodge; a hit pass just respawns.
		if !g.claw.HasHit {
			g.score++
		}
		g.claw.Respawn(g.rng)
	}
	g.drawClaw()

	if !g.claw.HasHit &&
		Collides(g.claw.X, g.claw.Bottom(), g.player.Center()) &&
		now.Sub(g.lastHit) > hitCooldown {
		g.claw.HasHit = true
		g.loseLife(now)
	}
}

func (g *Game) tickClawMultiplayer(now time.Time) {
	// The claw tracks the opponent's aim continuously, drops included.
	if g.ch != nil {
		g.claw.AimAt(g.ch.Aim())
	}

	if g.drop.active {
		offset, done := g.drop.advance(now)
		g.claw.Offset = offset
		if done {
			g.fireGuard = now.Add(dropGuard)
		}
		if g.drop.descending() && !g.drop.hit &&
			Collides(g.claw.X, g.claw.Bottom(), g.player.Center()) &&
			now.Sub(g.lastHit) > hitCooldown {
			g.drop.hit = true
			g.loseLife(now)
		}
	} else if g.ch != nil && now.After(g.fireGuard) && g.ch.TakeFire() {
		g.drop.start()
	}
	g.drawClaw()
}

func (g *Game) loseLife(now time.Time) {
	g.lives--
	g.lastHit = now
	g.updateHealthBar()
	if g.lives <= 0 {
		g.st = stateGameOver
		g.endHold = now.Add(roundEndHold)
		g.disp.SetText(device.FieldMessage, fmt.Sprintf("GAME OVER\nScore: %d", g.score))
		g.snd.Play(device.CueGameOver)
	}
}

func (g *Game) roundComplete(now time.Time) {
	if difficulties[g.diff].multiplayer {
		g.finishRound(now, fmt.Sprintf("YOU SURVIVED!\nScore: %d", g.score))
		return
	}
	if g.levelIdx < len(LevelTargets)-1 {
		g.levelIdx++
		g.levelTarget = LevelTargets[g.levelIdx]
		g.levelStart = now
		g.claw.Respawn(g.rng)
		g.claw.Speed = g.diff.speedFor(g.levelIdx)
		return
	}
	g.finishRound(now, fmt.Sprintf("YOU WIN!\nScore: %d", g.score))
}

func (g *Game) finishRound(now time.Time, message string) {
	g.st = stateWin
	g.endHold = now.Add(roundEndHold)
	g.disp.SetText(device.FieldMessage, message)
	g.snd.Play(device.CueWin)
}

// --- round end / leaderboard ---

func (g *Game) tickRoundEnd(now time.Time) {
	if now.Before(g.endHold) {
		return
	}
	eligible := g.diff != Multiplayer || g.opts.MPScores
	if eligible && g.board.IsHighScore(g.score) {
		g.enterInitials()
	} else {
		g.showScores()
	}
}

func (g *Game) enterInitials() {
	g.st = stateEnterInitials
	g.initials = [3]byte{'A', 'A', 'A'}
	g.initialIdx = 0

	g.clearGameFields()
	g.hideClaw()
	g.disp.SetText(device.FieldBoardTitle, "NEW HIGH SCORE!")
	g.disp.SetText(device.FieldPrompt, "Rotate:Change Press:Next")
	g.updateInitialDisplay()
}

func (g *Game) tickInitials(in Sample) {
	switch in.Rotate {
	case RotatePos:
		c := g.initials[g.initialIdx] + 1
		if c > 'Z' {
			c = 'A'
		}
		g.initials[g.initialIdx] = c
		g.updateInitialDisplay()
	case RotateNeg:
		c := g.initials[g.initialIdx] - 1
		if c < 'A' {
			c = 'Z'
		}
		g.initials[g.initialIdx] = c
		g.updateInitialDisplay()
	}

	if in.Confirm {
		g.initialIdx++
		if g.initialIdx >= 3 {
			g.board.Add(scores.Record{Initials: string(g.initials[:]), Score: g.score})
			if err := g.store.Save(g.board.Records()); err != nil {
				log.Printf("SCORES: save failed: %v", err)
			}
			g.showScores()
		} else {
			g.updateInitialDisplay()
		}
	}
}

func (g *Game) showScores() {
	g.st = stateShowScores

	g.clearGameFields()
	g.hideClaw()

	g.disp.SetText(device.FieldBoardTitle, "HIGH SCORES")
	lines := [3]device.Field{device.FieldBoardLine1, device.FieldBoardLine2, device.FieldBoardLine3}
	recs := g.board.Records()
	for i, f := range lines {
		if i < len(recs) {
			g.disp.SetText(f, fmt.Sprintf("%d. %s - %d", i+1, recs[i].Initials, recs[i].Score))
		} else {
			g.disp.SetText(f, "")
		}
	}
	g.disp.SetText(device.FieldPrompt, "Press to continue")
}

// --- link lifecycle ---

// dialLink opens the transport off-loop, the way the loop must never block.
func (g *Game) dialLink() {
	if g.openLink == nil {
		log.Println("LINK: not configured, playing degraded")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan linkResult, 1)
	g.linkCh = ch
	g.linkCancel = cancel
	go func() {
		port, err := g.openLink(ctx)
		ch <- linkResult{port: port, err: err}
	}()
}

// pollLink picks up a finished open attempt without waiting for one.
func (g *Game) pollLink() {
	if g.ch != nil || g.linkCh == nil {
		return
	}
	select {
	case r := <-g.linkCh:
		g.linkCh = nil
		if g.linkCancel != nil {
			g.linkCancel()
			g.linkCancel = nil
		}
		if r.err != nil {
			log.Printf("LINK: open failed: %v", r.err)
			return
		}
		g.ch = link.Attach(r.port)
	default:
	}
}

func (g *Game) teardownLink() {
	if g.linkCh != nil {
		// Unblock a pending listen/dial so it releases its address,
		// and close the port if the open won the race anyway.
		if g.linkCancel != nil {
			g.linkCancel()
			g.linkCancel = nil
		}
		go func(ch chan linkResult) {
			if r := <-ch; r.port != nil {
				_ = r.port.Close()
			}
		}(g.linkCh)
		g.linkCh = nil
	}
	if g.ch != nil {
		g.ch.Close()
		g.ch = nil
		log.Println("LINK: closed")
	}
}
