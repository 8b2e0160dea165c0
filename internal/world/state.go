package world

import (
	"fmt"

	"gridcast/internal/core"
	"gridcast/pkg/geom"
	"gridcast/pkg/raycast"
)

// State is everything one frame of the view needs: the world, the player and
// the fan of rays cast from the player's position.
type State struct {
	cfg    ViewConfig
	world  *World
	caster *raycast.Caster
	player Player
	input  Input
	fan    []raycast.Sample
}

// NewState places the player at the level spawn and casts the first fan.
func NewState(lvl *core.Level, cfg ViewConfig) *State {
	w := New(lvl, cfg.CellSize)
	cfg.CellSize = w.CellSize
	s := &State{
		cfg:    cfg,
		world:  w,
		caster: raycast.New(cfg.Cast),
		player: Player{Pos: w.Spawn(), Facing: w.SpawnFacing()},
	}
	s.cfg.Cast = s.caster.Config()
	s.Cast()
	return s
}

// Update advances the player by dt seconds of in and recasts the fan.
func (s *State) Update(dt float64, in Input) {
	s.input = in
	s.player = s.player.Step(dt, in, s.cfg.MoveSpeed, s.cfg.TurnRate, s.world.Walls)
	s.Cast()
}

// Cast recomputes the fan for the current player pose.
func (s *State) Cast() {
	s.fan = s.caster.FanParallel(s.player.Pos, s.player.Facing, geom.Radians(s.cfg.FOV),
		s.cfg.Samples, s.world.Walls, s.world.CellSize, s.cfg.Workers)
}

// Fan returns the rays of the last cast ordered left to right.
func (s *State) Fan() []raycast.Sample { return s.fan }

// Player returns the current player pose.
func (s *State) Player() Player { return s.player }

// SetPlayer replaces the player pose and recasts.
func (s *State) SetPlayer(p Player) {
	s.player = p
	s.Cast()
}

// World returns the world being viewed.
func (s *State) World() *World { return s.world }

// Input returns the input applied by the last Update.
func (s *State) Input() Input { return s.input }

// Config returns the effective configuration.
func (s *State) Config() ViewConfig { return s.cfg }

// Parameters reports the tunables shown on the HUD.
func (s *State) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "View",
			Params: []core.Parameter{
				core.FloatParam("fov", "FOV (deg)", s.cfg.FOV),
				core.IntParam("samples", "Samples", s.cfg.Samples),
				core.IntParam("workers", "Workers", s.cfg.Workers),
			},
			Summary: fmt.Sprintf("%d rays over %.0f deg", s.cfg.Samples, s.cfg.FOV),
		},
		{
			Name: "Caster",
			Params: []core.Parameter{
				core.FloatParam("cap", "Cap distance", s.cfg.Cast.CapDistance),
				core.FloatParam("epsilon", "Epsilon", s.cfg.Cast.Epsilon),
			},
		},
		{
			Name: "Player",
			Params: []core.Parameter{
				core.FloatParam("speed", "Move speed", s.cfg.MoveSpeed),
				core.FloatParam("turn", "Turn (deg)", s.cfg.TurnRate),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *State) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fov", Label: "FOV", Type: core.ParamTypeFloat, Step: 5, Min: 10, Max: 170, HasMin: true, HasMax: true},
		{Key: "samples", Label: "Samples", Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 1280, HasMin: true, HasMax: true},
		{Key: "cap", Label: "Cap", Type: core.ParamTypeFloat, Step: 20, Min: 20, Max: 2000, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer parameter and recasts.
func (s *State) SetIntParameter(key string, value int) bool {
	switch key {
	case "samples":
		if value <= 0 {
			return false
		}
		s.cfg.Samples = value
	case "workers":
		if value <= 0 {
			return false
		}
		s.cfg.Workers = value
	default:
		return false
	}
	s.Cast()
	return true
}

// SetFloatParameter updates a floating point parameter and recasts.
func (s *State) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "fov":
		if value <= 0 || value >= 360 {
			return false
		}
		s.cfg.FOV = value
	case "cap", "epsilon":
		if value <= 0 {
			return false
		}
		cast := s.cfg.Cast
		if key == "cap" {
			cast.CapDistance = value
		} else {
			cast.Epsilon = value
		}
		s.caster = raycast.New(cast)
		s.cfg.Cast = s.caster.Config()
	case "speed":
		if value < 0 {
			return false
		}
		s.cfg.MoveSpeed = value
	case "turn":
		if value < 0 {
			return false
		}
		s.cfg.TurnRate = value
	default:
		return false
	}
	s.Cast()
	return true
}
